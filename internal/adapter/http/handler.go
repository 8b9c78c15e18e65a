package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ads-dashboard/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the dashboard use case and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.DashboardUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The page at "/"
// is served from embedded templates; everything it draws comes from the
// JSON endpoints under /api/v1.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", h.handlePage)
	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", h.handleOptions)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/export", h.handleExport)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
