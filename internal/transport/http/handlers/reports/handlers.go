package reportshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/identity"
	"ems/internal/domain/reports"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/settings", func(r chi.Router) {
		r.Use(admin)
		r.Get("/org", h.handleGetOrgInfo)
		r.Put("/org", h.handleSaveOrgInfo)
		r.Get("/backup", h.handleExportBackup)
		r.Post("/restore", h.handleImportBackup)
	})
	r.With(admin).Get("/reports/roster.xlsx", h.handleRosterXLSX)
}

func (h *Handler) handleGetOrgInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.OrgInfo()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "org_info_failed", "failed to load organization info", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, info, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveOrgInfo(w http.ResponseWriter, r *http.Request) {
	var payload reports.OrgInfo
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.SaveOrgInfo(payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "org_info_save_failed", "failed to save organization info", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payload, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExportBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := h.Service.ExportBackup()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "backup_failed", "failed to export backup", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, backup, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleImportBackup(w http.ResponseWriter, r *http.Request) {
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.ImportBackup(payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "restore_failed", "failed to restore backup", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "restored"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRosterXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.RosterXLSX()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to build roster export", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="roster.xlsx"`)
	_, _ = w.Write(data)
}
