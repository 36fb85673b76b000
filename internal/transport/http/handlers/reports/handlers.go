package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ipcr/internal/domain/ipcr"
	"ipcr/internal/domain/reports"
	"ipcr/internal/transport/http/api"
	"ipcr/internal/transport/http/middleware"
)

type Handler struct {
	Service *ipcr.Service
}

func NewHandler(service *ipcr.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/summary", h.handleSummary)
	r.Get("/calendar", h.handleCalendar)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	forms, err := h.Service.ListForms(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "summary_failed", "failed to build summary", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, reports.Summarize(forms), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.Calendar(), middleware.GetRequestID(r.Context()))
}
