package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/identity"
	"ems/internal/domain/leave"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/leave", func(r chi.Router) {
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleApply)
		r.With(admin).Post("/requests/{requestID}/approve", h.handleApprove)
		r.With(admin).Post("/requests/{requestID}/reject", h.handleReject)
		r.Get("/holidays", h.handleListHolidays)
		r.With(admin).Post("/holidays", h.handleAddHoliday)
	})
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var (
		leaves []leave.Leave
		err    error
	)
	if identity.Authorize(user, identity.RoleAdmin) {
		leaves, err = h.Service.List()
	} else {
		leaves, err = h.Service.ListForEmployee(user.ID)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leaves_failed", "failed to list leave requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, leaves, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload leave.Leave
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == "" {
		payload.EmployeeID = user.ID
	}

	v := shared.NewValidator()
	v.Required("type", payload.Type, "leave type is required")
	from, fromOK := v.Date("fromDate", payload.FromDate)
	to, toOK := v.Date("toDate", payload.ToDate)
	if fromOK && toOK {
		v.DateOrder("fromDate", from, "toDate", to)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	request, err := h.Service.Apply(payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_apply_failed", "failed to file leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, update func(string) (leave.Leave, error)) {
	request, err := update(chi.URLParam(r, "requestID"))
	if errors.Is(err, leave.ErrLeaveNotFound) {
		api.Fail(w, http.StatusNotFound, "leave_not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_review_failed", "failed to update leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Service.ListHolidays()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holidays_failed", "failed to list holidays", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, holidays, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddHoliday(w http.ResponseWriter, r *http.Request) {
	var payload leave.Holiday
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("date", payload.Date, "date is required")
	if payload.Date != "" {
		v.Date("date", payload.Date)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	holiday, err := h.Service.AddHoliday(payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_create_failed", "failed to add holiday", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, holiday, middleware.GetRequestID(r.Context()))
}
