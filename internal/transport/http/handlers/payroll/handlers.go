package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/core"
	"ems/internal/domain/identity"
	"ems/internal/domain/payroll"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(identity.RoleAdmin)

	r.Route("/payroll", func(r chi.Router) {
		r.Get("/payslips", h.handleListPayslips)
		r.With(admin).Post("/payslips", h.handleGenerate)
	})
}

func (h *Handler) handleListPayslips(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var (
		payslips []payroll.Payslip
		err      error
	)
	if identity.Authorize(user, identity.RoleAdmin) {
		payslips, err = h.Service.ListPayslips()
	} else {
		payslips, err = h.Service.ListForEmployee(user.ID)
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslips_failed", "failed to list payslips", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, payslips, middleware.GetRequestID(r.Context()))
}

type generateRequest struct {
	EmployeeID string `json:"employeeId"`
	Month      string `json:"month"`
}

// handleGenerate appends the payslip record and streams the rendered PDF.
// The record id rides along in a response header.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload generateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employeeId is required")
	v.Required("month", payload.Month, "month is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	payslip, pdfBytes, err := h.Service.Generate(payload.EmployeeID, payload.Month)
	if errors.Is(err, core.ErrEmployeeNotFound) {
		api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to generate payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payslip.ID+".pdf"))
	w.Header().Set("X-Payslip-ID", payslip.ID)
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(pdfBytes)
}
