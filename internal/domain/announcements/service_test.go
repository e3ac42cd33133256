package announcements

import (
	"errors"
	"testing"
	"time"

	"ems/internal/platform/session"
	"ems/internal/storage"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(storage.NewRepository(session.NewMemoryStore()))
}

func TestCreate(t *testing.T) {
	svc := newService(t)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	}

	created, err := svc.Create(Announcement{
		Title:     "Office Maintenance",
		Content:   "Power shutdown on Saturday.",
		Type:      PriorityMedium,
		ValidFrom: "2024-03-01",
		ValidTo:   "2024-03-02",
		CreatedBy: "admin1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if created.CreatedAt != "2024-03-01T09:00:00Z" {
		t.Fatalf("unexpected CreatedAt: %s", created.CreatedAt)
	}
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(Announcement{ValidFrom: "2024-03-05", ValidTo: "2024-03-01"})
	if !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestListActive(t *testing.T) {
	svc := newService(t)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	}

	seed := []Announcement{
		{ID: "ann1", Title: "Expired", ValidFrom: "2024-02-01", ValidTo: "2024-02-28", CreatedAt: "2024-02-01T00:00:00Z"},
		{ID: "ann2", Title: "Current older", ValidFrom: "2024-03-01", ValidTo: "2024-03-31", CreatedAt: "2024-03-01T00:00:00Z"},
		{ID: "ann3", Title: "Current newer", ValidFrom: "2024-03-04", ValidTo: "2024-03-04", CreatedAt: "2024-03-03T00:00:00Z"},
		{ID: "ann4", Title: "Future", ValidFrom: "2024-04-01", ValidTo: "2024-04-30", CreatedAt: "2024-03-02T00:00:00Z"},
	}
	if err := svc.repo.WriteCollection(storage.CollectionAnnouncements, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active announcements, got %d", len(active))
	}
	if active[0].ID != "ann3" || active[1].ID != "ann2" {
		t.Fatalf("expected newest first, got %s then %s", active[0].ID, active[1].ID)
	}
}

func TestUpdate(t *testing.T) {
	svc := newService(t)
	created, err := svc.Create(Announcement{Title: "Draft", ValidFrom: "2024-03-01", ValidTo: "2024-03-02"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(created.ID, Announcement{
		Title:     "Final",
		ValidFrom: "2024-03-01",
		ValidTo:   "2024-03-05",
		CreatedAt: "2030-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("id and CreatedAt must be preserved: %+v", updated)
	}
	if updated.Title != "Final" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.Update("ghost", Announcement{ValidFrom: "2024-03-01", ValidTo: "2024-03-02"}); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	created, err := svc.Create(Announcement{Title: "Gone soon", ValidFrom: "2024-03-01", ValidTo: "2024-03-02"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, _ := svc.List()
	if len(items) != 0 {
		t.Fatalf("expected no announcements, got %v", items)
	}

	if err := svc.Delete(created.ID); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound, got %v", err)
	}
}
