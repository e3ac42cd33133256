package payroll

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"ems/internal/domain/core"
	"ems/internal/platform/session"
	"ems/internal/storage"
)

func newService(t *testing.T) (*Service, *storage.Repository) {
	t.Helper()
	repo := storage.NewRepository(session.NewMemoryStore())
	coreSvc := core.NewService(repo, "demo_emp")
	if err := repo.WriteCollection(storage.CollectionEmployees, []core.Employee{
		{
			ID: "emp1", EmployeeNumber: "EMP001", Name: "Priya Sharma", Department: "Engineering",
			Salary: core.Salary{CTC: 95000, Basic: 47500, HRA: 23750, Allowances: 23750},
		},
	}); err != nil {
		t.Fatalf("seed employees: %v", err)
	}
	return NewService(repo, coreSvc), repo
}

func TestGenerate(t *testing.T) {
	svc, _ := newService(t)
	svc.now = func() time.Time {
		return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	}

	payslip, pdfBytes, err := svc.Generate("emp1", "2024-03")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if payslip.Amount != 85500 {
		t.Fatalf("amount should be the net pay, got %v", payslip.Amount)
	}
	if payslip.Month != "2024-03" || payslip.EmployeeID != "emp1" {
		t.Fatalf("unexpected payslip: %+v", payslip)
	}
	if payslip.GeneratedAt != "2024-04-01T00:00:00Z" {
		t.Fatalf("unexpected GeneratedAt: %s", payslip.GeneratedAt)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("expected PDF bytes")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdfBytes[:4])
	}
}

func TestGenerateIsAppendOnly(t *testing.T) {
	svc, _ := newService(t)

	if _, _, err := svc.Generate("emp1", "2024-03"); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if _, _, err := svc.Generate("emp1", "2024-03"); err != nil {
		t.Fatalf("second generate: %v", err)
	}

	payslips, err := svc.ListPayslips()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(payslips) != 2 {
		t.Fatalf("repeat generation must append, got %d payslips", len(payslips))
	}
}

func TestGenerateRejections(t *testing.T) {
	svc, _ := newService(t)

	if _, _, err := svc.Generate("ghost", "2024-03"); !errors.Is(err, core.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, _, err := svc.Generate("emp1", "March 2024"); err == nil {
		t.Fatal("expected an error for a bad month")
	}

	payslips, _ := svc.ListPayslips()
	if len(payslips) != 0 {
		t.Fatalf("rejected generations must not be stored, got %d", len(payslips))
	}
}

func TestListForEmployee(t *testing.T) {
	svc, repo := newService(t)
	if err := repo.WriteCollection(storage.CollectionPayslips, []Payslip{
		{ID: "payslip1", EmployeeID: "emp1", Month: "2024-02", Amount: 85500},
		{ID: "payslip2", EmployeeID: "emp2", Month: "2024-02", Amount: 70000},
	}); err != nil {
		t.Fatalf("seed payslips: %v", err)
	}

	payslips, err := svc.ListForEmployee("emp1")
	if err != nil {
		t.Fatalf("list for employee: %v", err)
	}
	if len(payslips) != 1 || payslips[0].ID != "payslip1" {
		t.Fatalf("unexpected payslips: %v", payslips)
	}
}
