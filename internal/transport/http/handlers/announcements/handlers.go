package announcementshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/announcements"
	"ems/internal/domain/identity"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *announcements.Service
}

func NewHandler(service *announcements.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/announcements", func(r chi.Router) {
		r.With(admin).Get("/", h.handleList)
		r.Get("/active", h.handleListActive)
		r.With(admin).Post("/", h.handleCreate)
		r.With(admin).Put("/{announcementID}", h.handleUpdate)
		r.With(admin).Delete("/{announcementID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcements_failed", "failed to list announcements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListActive(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListActive()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcements_failed", "failed to list announcements", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, items, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload announcements.Announcement
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.CreatedBy = user.ID

	if !h.validate(w, r, payload) {
		return
	}

	item, err := h.Service.Create(payload)
	if errors.Is(err, announcements.ErrInvalidWindow) {
		api.Fail(w, http.StatusBadRequest, "invalid_window", "validFrom must be on or before validTo", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcement_create_failed", "failed to create announcement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, item, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload announcements.Announcement
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if !h.validate(w, r, payload) {
		return
	}

	item, err := h.Service.Update(chi.URLParam(r, "announcementID"), payload)
	if errors.Is(err, announcements.ErrAnnouncementNotFound) {
		api.Fail(w, http.StatusNotFound, "announcement_not_found", "announcement not found", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, announcements.ErrInvalidWindow) {
		api.Fail(w, http.StatusBadRequest, "invalid_window", "validFrom must be on or before validTo", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcement_update_failed", "failed to update announcement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, item, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(chi.URLParam(r, "announcementID"))
	if errors.Is(err, announcements.ErrAnnouncementNotFound) {
		api.Fail(w, http.StatusNotFound, "announcement_not_found", "announcement not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "announcement_delete_failed", "failed to delete announcement", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request, payload announcements.Announcement) bool {
	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	v.Required("content", payload.Content, "content is required")
	from, fromOK := v.Date("validFrom", payload.ValidFrom)
	to, toOK := v.Date("validTo", payload.ValidTo)
	if fromOK && toOK {
		v.DateOrder("validFrom", from, "validTo", to)
	}
	return !v.Reject(w, middleware.GetRequestID(r.Context()))
}
