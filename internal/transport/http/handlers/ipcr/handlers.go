package ipcrhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ipcr/internal/domain/ipcr"
	"ipcr/internal/domain/reports"
	"ipcr/internal/domain/templates"
	"ipcr/internal/platform/metrics"
	"ipcr/internal/transport/http/api"
	"ipcr/internal/transport/http/middleware"
	"ipcr/internal/transport/http/shared"
)

type Handler struct {
	Service *ipcr.Service
	Catalog *templates.Catalog
	Metrics *metrics.Collector
}

func NewHandler(service *ipcr.Service, catalog *templates.Catalog, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Catalog: catalog, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/ipcr", func(r chi.Router) {
		r.Get("/", h.handleListForms)
		r.Post("/", h.handleCreateForm)
		r.Get("/{formID}", h.handleGetForm)
		r.Put("/{formID}", h.handleApplyEdits)
		r.Patch("/{formID}/status", h.handleSetStatus)
		r.Put("/{formID}/approvals", h.handleSetApprovals)
		r.Post("/{formID}/submit", h.handleSubmit)
		r.Post("/{formID}/save", h.handleSaveDraft)
		r.Post("/{formID}/rows/{rowID}/movs", h.handleAttachMOVs)
		r.Delete("/{formID}/rows/{rowID}/movs/{fileID}", h.handleDetachMOV)
		r.Get("/{formID}/export/pdf", h.handleExportPDF)
		r.Get("/{formID}/export/xlsx", h.handleExportXLSX)
	})
	r.Post("/mov/path", h.handleDerivePath)
	r.Get("/templates", h.handleListTemplates)
	r.Get("/templates/select", h.handleSelectTemplate)
}

func (h *Handler) handleListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.Service.ListForms(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		h.fail(w, r, err, "form_list_failed", "failed to list forms")
		return
	}
	api.Success(w, forms, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Profile     ipcr.Profile `json:"profile"`
		PeriodStart string       `json:"periodStart"`
		PeriodEnd   string       `json:"periodEnd"`
		Year        int          `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("profile.id", payload.Profile.ID, "employee id is required")
	v.Required("profile.name", payload.Profile.Name, "employee name is required")
	v.Required("profile.office", payload.Profile.Office, "office is required")
	v.Required("profile.category", payload.Profile.Category, "category is required")
	v.Required("periodStart", payload.PeriodStart, "review period start is required")
	v.Required("periodEnd", payload.PeriodEnd, "review period end is required")
	if !v.OK() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", v.Message(), middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Year == 0 {
		payload.Year = time.Now().Year()
	}

	form, err := h.Service.CreateForm(r.Context(), payload.Profile, payload.PeriodStart, payload.PeriodEnd, payload.Year)
	if err != nil {
		h.fail(w, r, err, "form_create_failed", "failed to create form")
		return
	}
	h.Metrics.FormCreated()
	api.Created(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.GetForm(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		h.fail(w, r, err, "form_get_failed", "failed to load form")
		return
	}
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApplyEdits(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Edits []ipcr.RowEdit `json:"edits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	for i, edit := range payload.Edits {
		switch edit.Op {
		case ipcr.OpSetRatingQ, ipcr.OpSetRatingE, ipcr.OpSetRatingT:
			v.Rating(fmt.Sprintf("edits[%d].rating", i), edit.Rating)
		case ipcr.OpSetAccomplishment, ipcr.OpSetRemarks:
		default:
			v.Add(fmt.Sprintf("edits[%d].op", i), "unknown edit operation")
		}
	}
	if !v.OK() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", v.Message(), middleware.GetRequestID(r.Context()))
		return
	}

	form, err := h.Service.ApplyEdits(r.Context(), chi.URLParam(r, "formID"), payload.Edits)
	if err != nil {
		h.fail(w, r, err, "form_update_failed", "failed to update form")
		return
	}
	h.Metrics.Recomputed()
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status ipcr.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "status is required", middleware.GetRequestID(r.Context()))
		return
	}

	form, err := h.Service.SetStatus(r.Context(), chi.URLParam(r, "formID"), payload.Status)
	if err != nil {
		h.fail(w, r, err, "status_update_failed", "failed to update status")
		return
	}
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSetApprovals(w http.ResponseWriter, r *http.Request) {
	var payload ipcr.Approvals
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	form, err := h.Service.SetApprovals(r.Context(), chi.URLParam(r, "formID"), payload)
	if err != nil {
		h.fail(w, r, err, "approvals_update_failed", "failed to update approvals")
		return
	}
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.Submit(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		h.fail(w, r, err, "form_submit_failed", "failed to submit form")
		return
	}
	h.Metrics.FormSubmitted()
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.SaveDraft(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		h.fail(w, r, err, "form_save_failed", "failed to save draft")
		return
	}
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttachMOVs(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Files []ipcr.FileDescriptor `json:"files"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || len(payload.Files) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "at least one file descriptor is required", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	for i, file := range payload.Files {
		v.Required(fmt.Sprintf("files[%d].name", i), file.Name, "filename is required")
	}
	if !v.OK() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", v.Message(), middleware.GetRequestID(r.Context()))
		return
	}

	form, err := h.Service.AttachMOVs(r.Context(), chi.URLParam(r, "formID"), chi.URLParam(r, "rowID"), payload.Files, middleware.GetActor(r.Context()))
	if err != nil {
		h.fail(w, r, err, "mov_attach_failed", "failed to attach files")
		return
	}
	h.Metrics.MOVsAttached(len(payload.Files))
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDetachMOV(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.DetachMOV(r.Context(), chi.URLParam(r, "formID"), chi.URLParam(r, "rowID"), chi.URLParam(r, "fileID"), middleware.GetActor(r.Context()))
	if err != nil {
		h.fail(w, r, err, "mov_detach_failed", "failed to detach file")
		return
	}
	api.Success(w, form, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDerivePath(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FormID   string `json:"formId"`
		RowID    string `json:"rowId"`
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Required("formId", payload.FormID, "form id is required")
	v.Required("rowId", payload.RowID, "row id is required")
	v.Required("filename", payload.Filename, "filename is required")
	if !v.OK() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", v.Message(), middleware.GetRequestID(r.Context()))
		return
	}

	path, err := h.Service.DeriveUploadPath(r.Context(), payload.FormID, payload.RowID, payload.Filename)
	if err != nil {
		h.fail(w, r, err, "path_derive_failed", "failed to derive path")
		return
	}
	api.Success(w, map[string]string{"path": path}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	out := make([]templates.Template, 0, 4)
	for _, kind := range h.Catalog.Kinds() {
		tpl, err := h.Catalog.Get(kind)
		if err != nil {
			h.fail(w, r, err, "template_list_failed", "failed to list templates")
			return
		}
		out = append(out, tpl)
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSelectTemplate(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	position := r.URL.Query().Get("position")
	if category == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "category is required", middleware.GetRequestID(r.Context()))
		return
	}
	kind := templates.Select(category, position)
	api.Success(w, map[string]templates.Kind{"templateType": kind}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.GetForm(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		h.fail(w, r, err, "form_export_failed", "failed to load form")
		return
	}
	data, err := reports.RenderPDF(form)
	if err != nil {
		h.fail(w, r, err, "form_export_failed", "failed to render pdf")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ipcr-%s.pdf", form.ID))
	_, _ = w.Write(data)
}

func (h *Handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	form, err := h.Service.GetForm(r.Context(), chi.URLParam(r, "formID"))
	if err != nil {
		h.fail(w, r, err, "form_export_failed", "failed to load form")
		return
	}
	data, err := reports.RenderXLSX(form)
	if err != nil {
		h.fail(w, r, err, "form_export_failed", "failed to render workbook")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=ipcr-%s.xlsx", form.ID))
	_, _ = w.Write(data)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, ipcr.ErrFormNotFound),
		errors.Is(err, ipcr.ErrSectionNotFound),
		errors.Is(err, ipcr.ErrRowNotFound),
		errors.Is(err, ipcr.ErrFileNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), reqID)
	case errors.Is(err, ipcr.ErrUnknownEditOp):
		api.Fail(w, http.StatusBadRequest, "invalid_payload", err.Error(), reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, reqID)
	}
}
