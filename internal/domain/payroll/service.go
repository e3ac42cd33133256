// Package payroll generates payslips from employee salary components.
// Payslips are append-only: every generation call adds a record, even for
// a month that already has one.
package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"ems/internal/domain/core"
	"ems/internal/storage"
)

type Service struct {
	repo *storage.Repository
	core *core.Service
	now  func() time.Time
}

func NewService(repo *storage.Repository, coreSvc *core.Service) *Service {
	return &Service{repo: repo, core: coreSvc, now: time.Now}
}

func (s *Service) ListPayslips() ([]Payslip, error) {
	var payslips []Payslip
	if err := s.repo.ReadCollection(storage.CollectionPayslips, &payslips); err != nil {
		return nil, err
	}
	return payslips, nil
}

func (s *Service) ListForEmployee(employeeID string) ([]Payslip, error) {
	payslips, err := s.ListPayslips()
	if err != nil {
		return nil, err
	}
	filtered := make([]Payslip, 0, len(payslips))
	for _, payslip := range payslips {
		if payslip.EmployeeID == employeeID {
			filtered = append(filtered, payslip)
		}
	}
	return filtered, nil
}

// Generate computes the breakdown for the employee's salary, appends the
// payslip record, and renders the PDF. The record's amount is the net.
func (s *Service) Generate(employeeID, month string) (Payslip, []byte, error) {
	employee, err := s.core.GetEmployee(employeeID)
	if err != nil {
		return Payslip{}, nil, err
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return Payslip{}, nil, fmt.Errorf("month must be YYYY-MM: %w", err)
	}

	breakdown := Calculate(employee.Salary)

	payslips, err := s.ListPayslips()
	if err != nil {
		return Payslip{}, nil, err
	}
	payslip := Payslip{
		ID:          storage.NewID("payslip"),
		EmployeeID:  employee.ID,
		Month:       month,
		Amount:      breakdown.Net,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := s.repo.WriteCollection(storage.CollectionPayslips, append(payslips, payslip)); err != nil {
		return Payslip{}, nil, err
	}

	pdfBytes, err := renderPDF(employee, month, breakdown)
	if err != nil {
		return Payslip{}, nil, err
	}
	return payslip, pdfBytes, nil
}

func renderPDF(employee core.Employee, month string, breakdown Breakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employee.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee ID: %s", employee.EmployeeNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", employee.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", month))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Basic: %.2f", breakdown.Basic))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("HRA: %.2f", breakdown.HRA))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %.2f", breakdown.Allowances))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", breakdown.Gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax (10%%): %.2f", breakdown.Tax))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", breakdown.Net))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
