package timesheet

import (
	"errors"
	"testing"

	"ems/internal/platform/session"
	"ems/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(storage.NewRepository(session.NewMemoryStore()))
}

func TestSubmit(t *testing.T) {
	svc := newService(t)

	entry, err := svc.Submit(Timesheet{
		EmployeeID: "emp1",
		Date:       "2024-03-04",
		Project:    "Website Redesign",
		Notes:      "API integration",
		Hours:      7.5,
		Billable:   true,
		Status:     StatusApproved,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.Status != StatusSubmitted {
		t.Fatalf("new entries start Submitted, got %s", entry.Status)
	}
	if entry.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestSubmitHoursBounds(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		hours   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"full day", 24, false},
		{"negative", -1, true},
		{"over a day", 24.5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(Timesheet{EmployeeID: "emp1", Hours: tc.hours})
			if tc.wantErr && !errors.Is(err, ErrInvalidHours) {
				t.Fatalf("expected ErrInvalidHours, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("submit: %v", err)
			}
		})
	}
}

func TestListFilters(t *testing.T) {
	svc := newService(t)
	first, err := svc.Submit(Timesheet{EmployeeID: "emp1", Hours: 8})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Submit(Timesheet{EmployeeID: "emp2", Hours: 6}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Approve(first.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	all, err := svc.List(Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}

	byEmployee, _ := svc.List(Filter{EmployeeID: "emp1"})
	if len(byEmployee) != 1 || byEmployee[0].EmployeeID != "emp1" {
		t.Fatalf("unexpected employee filter result: %v", byEmployee)
	}

	byStatus, _ := svc.List(Filter{Status: StatusSubmitted})
	if len(byStatus) != 1 || byStatus[0].EmployeeID != "emp2" {
		t.Fatalf("unexpected status filter result: %v", byStatus)
	}

	both, _ := svc.List(Filter{EmployeeID: "emp1", Status: StatusSubmitted})
	if len(both) != 0 {
		t.Fatalf("combined filter should match nothing, got %v", both)
	}
}

func TestApproveAndReject(t *testing.T) {
	svc := newService(t)
	entry, err := svc.Submit(Timesheet{EmployeeID: "emp1", Hours: 8})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	approved, err := svc.Approve(entry.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected Approved, got %s", approved.Status)
	}

	rejected, err := svc.Reject(entry.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Fatalf("expected Rejected, got %s", rejected.Status)
	}

	if _, err := svc.Approve("ghost"); !errors.Is(err, ErrTimesheetNotFound) {
		t.Fatalf("expected ErrTimesheetNotFound, got %v", err)
	}
}
