package performancehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/identity"
	"ems/internal/domain/performance"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
}

func NewHandler(service *performance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/performance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.With(admin).Post("/", h.handleSave)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var (
		evaluations []performance.Evaluation
		err         error
	)
	if identity.Authorize(user, identity.RoleAdmin) {
		evaluations, err = h.Service.List()
	} else {
		evaluations, err = h.Service.ListForEmployee(user.ID)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "performance_failed", "failed to list evaluations", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluations, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var payload performance.Evaluation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("quarter", payload.Quarter, "quarter is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	evaluation, err := h.Service.Save(payload)
	if errors.Is(err, performance.ErrInvalidRating) {
		api.Fail(w, http.StatusBadRequest, "invalid_rating", "rating must be between 1 and 5", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "performance_save_failed", "failed to save evaluation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, evaluation, middleware.GetRequestID(r.Context()))
}
