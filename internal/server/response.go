package server

import (
	"net/http"

	"github.com/go-chi/render"

	"divscan/internal/scan"
)

// scanResponse is the success envelope shared by all scan routes. The
// mode-specific total is present for event scans and omitted in prices
// mode; results is always present, possibly empty.
type scanResponse struct {
	FilesScanned     int     `json:"files_scanned"`
	FilesWithData    int     `json:"files_with_data"`
	FilesWithErrors  int     `json:"files_with_errors"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
	TotalDividends   *int    `json:"total_dividends,omitempty"`
	TotalStockSplits *int    `json:"total_stock_splits,omitempty"`
	Message          string  `json:"message,omitempty"`
	Results          any     `json:"results"`
}

func newScanResponse(res *scan.Result) scanResponse {
	resp := scanResponse{
		FilesScanned:    res.FilesScanned,
		FilesWithData:   res.FilesWithData,
		FilesWithErrors: res.FilesWithErrors,
		ElapsedSeconds:  res.Elapsed.Seconds(),
		Message:         res.Note,
	}
	total := res.TotalEvents
	switch res.Mode {
	case scan.ModeDividends:
		resp.TotalDividends = &total
		resp.Results = res.Events
	case scan.ModeSplits:
		resp.TotalStockSplits = &total
		resp.Results = res.Events
	case scan.ModePrices:
		resp.Results = res.Prices
	}
	return resp
}

type errResponse struct {
	Error string `json:"error"`
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.log.Warn("request failed", "path", r.URL.Path, "status", status, "error", err)
	render.Status(r, status)
	render.JSON(w, r, errResponse{Error: err.Error()})
}
