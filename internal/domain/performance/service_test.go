package performance

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

func TestSave(t *testing.T) {
	svc := newService(t)

	saved, err := svc.Save(Evaluation{
		EmployeeID: "emp1",
		Quarter:    "Q1 2024",
		Rating:     4,
		Comments:   "Strong delivery on the platform migration.",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestSaveUpsertsByQuarter(t *testing.T) {
	svc := newService(t)

	first, err := svc.Save(Evaluation{EmployeeID: "emp1", Quarter: "Q1 2024", Rating: 3})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	second, err := svc.Save(Evaluation{EmployeeID: "emp1", Quarter: "Q1 2024", Rating: 5, Comments: "Revised"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert must keep the id, got %s want %s", second.ID, first.ID)
	}

	evaluations, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(evaluations) != 1 {
		t.Fatalf("upsert must not grow the collection, got %d", len(evaluations))
	}
	if evaluations[0].Rating != 5 || evaluations[0].Comments != "Revised" {
		t.Fatalf("upsert did not replace fields: %+v", evaluations[0])
	}

	// Another quarter, or another employee, appends.
	if _, err := svc.Save(Evaluation{EmployeeID: "emp1", Quarter: "Q2 2024", Rating: 4}); err != nil {
		t.Fatalf("save new quarter: %v", err)
	}
	if _, err := svc.Save(Evaluation{EmployeeID: "emp2", Quarter: "Q1 2024", Rating: 4}); err != nil {
		t.Fatalf("save other employee: %v", err)
	}
	evaluations, _ = svc.List()
	if len(evaluations) != 3 {
		t.Fatalf("expected 3 evaluations, got %d", len(evaluations))
	}
}

func TestSaveRatingBounds(t *testing.T) {
	svc := newService(t)

	for _, rating := range []int{0, -1, 6} {
		if _, err := svc.Save(Evaluation{EmployeeID: "emp1", Quarter: "Q1 2024", Rating: rating}); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	for _, rating := range []int{1, 5} {
		if _, err := svc.Save(Evaluation{EmployeeID: "emp1", Quarter: "Q1 2024", Rating: rating}); err != nil {
			t.Fatalf("rating %d: %v", rating, err)
		}
	}
}

func TestListForEmployee(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Save(Evaluation{EmployeeID: "emp1", Quarter: "Q1 2024", Rating: 4}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.Save(Evaluation{EmployeeID: "emp2", Quarter: "Q1 2024", Rating: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}

	evaluations, err := svc.ListForEmployee("emp2")
	if err != nil {
		t.Fatalf("list for employee: %v", err)
	}
	if len(evaluations) != 1 || evaluations[0].EmployeeID != "emp2" {
		t.Fatalf("unexpected evaluations: %v", evaluations)
	}
}
