// Package server exposes the scan pipeline over HTTP. Each scan mode has a
// GET route scanning the configured data directory and a POST route scanning
// an uploaded file set; both share the same filter parameters and response
// envelope.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	"divscan/internal/app"
	"divscan/internal/scan"
)

// Server holds the HTTP surface and its collaborators.
type Server struct {
	cfg      *app.Config
	scanner  *scan.Scanner
	log      *slog.Logger
	decoder  *form.Decoder
	validate *validator.Validate
}

// New creates a Server around the given scanner.
func New(cfg *app.Config, scanner *scan.Scanner, log *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		scanner:  scanner,
		log:      log.With(slog.String("component", "server")),
		decoder:  form.NewDecoder(),
		validate: validator.New(),
	}
}

// Router builds the chi router with all scan routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.handleHealth)

	r.Get("/scan-dividends", s.handleScan(scan.ModeDividends))
	r.Get("/scan-splits", s.handleScan(scan.ModeSplits))
	r.Get("/scan-prices", s.handleScan(scan.ModePrices))

	r.Post("/scan-dividends", s.handleScanUploads(scan.ModeDividends))
	r.Post("/scan-splits", s.handleScanUploads(scan.ModeSplits))
	r.Post("/scan-prices", s.handleScanUploads(scan.ModePrices))

	return r
}

// HTTPServer wraps the router in an http.Server bound to the configured
// address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
