package systemhandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"agentdesk/internal/platform/metrics"
	"agentdesk/internal/transport/http/api"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	DB      Pinger
	Metrics *metrics.Collector
}

func NewHandler(db Pinger, collector *metrics.Collector) *Handler {
	return &Handler{DB: db, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyz)
	if h.Metrics != nil {
		r.Get("/metrics", h.handleMetrics)
	}
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"message": "Multi-Agent AI Backend is running"})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if h.DB == nil {
		http.Error(w, "db not ready", http.StatusServiceUnavailable)
		return
	}
	if err := h.DB.Ping(ctx); err != nil {
		http.Error(w, "db not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Metrics.Snapshot())
}
