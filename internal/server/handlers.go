package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"divscan/internal/scan"
	"divscan/internal/source"
)

// maxUploadBytes caps one multipart scan request held in memory.
const maxUploadBytes = 64 << 20

// ScanRequest carries the filter parameters shared by all scan routes.
type ScanRequest struct {
	// Ticker filters rows to a case-insensitive exact symbol match.
	Ticker string `form:"ticker" validate:"omitempty,alphanum,max=12"`
	// Name narrows the directory listing by file-name substring.
	Name string `form:"name" validate:"omitempty,max=64"`
}

func (s *Server) decodeRequest(r *http.Request) (ScanRequest, error) {
	var req ScanRequest
	if err := s.decoder.Decode(&req, r.URL.Query()); err != nil {
		return req, fmt.Errorf("decode query: %w", err)
	}
	if err := s.validate.Struct(req); err != nil {
		return req, fmt.Errorf("invalid parameters: %w", err)
	}
	return req, nil
}

// handleScan scans the configured data directory in the given mode.
func (s *Server) handleScan(mode scan.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := s.decodeRequest(r)
		if err != nil {
			s.renderError(w, r, http.StatusBadRequest, err)
			return
		}

		sources, err := source.FromDir(s.cfg.DataDir, req.Name)
		if err != nil {
			if errors.Is(err, source.ErrDirNotFound) {
				s.renderError(w, r, http.StatusNotFound, err)
				return
			}
			s.renderError(w, r, http.StatusInternalServerError, err)
			return
		}

		s.runScan(w, r, sources, scan.Options{Mode: mode, Symbol: req.Ticker, NameContains: req.Name})
	}
}

// handleScanUploads scans a multipart upload set (form field "files")
// instead of the data directory. The ticker filter may arrive as a query or
// form value.
func (s *Server) handleScanUploads(mode scan.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			s.renderError(w, r, http.StatusBadRequest, fmt.Errorf("parse multipart form: %w", err))
			return
		}

		req := ScanRequest{Ticker: r.FormValue("ticker")}
		if err := s.validate.Struct(req); err != nil {
			s.renderError(w, r, http.StatusBadRequest, fmt.Errorf("invalid parameters: %w", err))
			return
		}

		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			s.renderError(w, r, http.StatusBadRequest, errors.New(`no files uploaded (use form field "files")`))
			return
		}

		uploads := make([]source.Upload, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				s.renderError(w, r, http.StatusBadRequest, fmt.Errorf("open upload %s: %w", fh.Filename, err))
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				s.renderError(w, r, http.StatusBadRequest, fmt.Errorf("read upload %s: %w", fh.Filename, err))
				return
			}
			uploads = append(uploads, source.Upload{Name: fh.Filename, Data: data})
		}

		s.runScan(w, r, source.FromUploads(uploads), scan.Options{Mode: mode, Symbol: req.Ticker})
	}
}

func (s *Server) runScan(w http.ResponseWriter, r *http.Request, sources []source.Source, opts scan.Options) {
	res, err := s.scanner.Scan(r.Context(), sources, opts)
	if err != nil {
		s.renderError(w, r, http.StatusInternalServerError, err)
		return
	}
	render.JSON(w, r, newScanResponse(res))
}
