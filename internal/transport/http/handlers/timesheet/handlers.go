package timesheethandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/identity"
	"ems/internal/domain/timesheet"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *timesheet.Service
}

func NewHandler(service *timesheet.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/timesheets", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSubmit)
		r.With(admin).Post("/{timesheetID}/approve", h.handleApprove)
		r.With(admin).Post("/{timesheetID}/reject", h.handleReject)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	filter := timesheet.Filter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
	}
	// Employees are pinned to their own entries whatever they ask for.
	if !identity.Authorize(user, identity.RoleAdmin) {
		filter.EmployeeID = user.ID
	}

	timesheets, err := h.Service.List(filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheets_failed", "failed to list timesheets", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, timesheets, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload timesheet.Timesheet
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == "" {
		payload.EmployeeID = user.ID
	}

	v := shared.NewValidator()
	v.Required("date", payload.Date, "date is required")
	if payload.Date != "" {
		v.Date("date", payload.Date)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	entry, err := h.Service.Submit(payload)
	if errors.Is(err, timesheet.ErrInvalidHours) {
		api.Fail(w, http.StatusBadRequest, "invalid_hours", "hours must be between 0 and 24", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheet_submit_failed", "failed to submit timesheet", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, update func(string) (timesheet.Timesheet, error)) {
	entry, err := update(chi.URLParam(r, "timesheetID"))
	if errors.Is(err, timesheet.ErrTimesheetNotFound) {
		api.Fail(w, http.StatusNotFound, "timesheet_not_found", "timesheet not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "timesheet_review_failed", "failed to update timesheet", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entry, middleware.GetRequestID(r.Context()))
}
