package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/attendance"
	"ems/internal/domain/identity"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/clock-in", h.handleClockIn)
		r.Post("/{recordID}/clock-out", h.handleClockOut)
		r.With(admin).Post("/manual", h.handleManualEntry)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	// Admins see everything; employees only their own records.
	if identity.Authorize(user, identity.RoleAdmin) {
		records, err := h.Service.List()
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
			return
		}
		api.Success(w, records, middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Service.ListForEmployee(user.ID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to list attendance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

type clockInRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
}

func (h *Handler) handleClockIn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload clockInRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == "" {
		payload.EmployeeID = user.ID
	}
	if !identity.Authorize(user, identity.RoleAdmin) && payload.EmployeeID != user.ID {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot clock in for another employee", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("date", payload.Date, "date is required")
	if payload.Date != "" {
		v.Date("date", payload.Date)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	record, err := h.Service.ClockIn(payload.EmployeeID, payload.Date)
	if errors.Is(err, attendance.ErrAlreadyClockedIn) {
		api.Fail(w, http.StatusConflict, "already_clocked_in", "employee already clocked in for this date", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clock_in_failed", "failed to record clock-in", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClockOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.Service.ClockOut(chi.URLParam(r, "recordID"))
	if errors.Is(err, attendance.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "attendance_not_found", "attendance record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "clock_out_failed", "failed to record clock-out", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleManualEntry(w http.ResponseWriter, r *http.Request) {
	var payload attendance.Record
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("date", payload.Date, "date is required")
	if payload.Date != "" {
		v.Date("date", payload.Date)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	record, err := h.Service.ManualEntry(payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "manual_entry_failed", "failed to save attendance entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}
