// Package announcements manages company-wide notices with a validity
// window.
package announcements

import (
	"errors"
	"sort"
	"time"

	"ems/internal/storage"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidWindow        = errors.New("validFrom must be on or before validTo")
)

type Service struct {
	repo *storage.Repository
	now  func() time.Time
}

func NewService(repo *storage.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List() ([]Announcement, error) {
	var items []Announcement
	if err := s.repo.ReadCollection(storage.CollectionAnnouncements, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns announcements whose validity window covers today,
// newest first.
func (s *Service) ListActive() ([]Announcement, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	today := s.now().UTC().Format("2006-01-02")
	active := make([]Announcement, 0, len(items))
	for _, item := range items {
		if item.ValidFrom <= today && today <= item.ValidTo {
			active = append(active, item)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt > active[j].CreatedAt
	})
	return active, nil
}

func (s *Service) Create(item Announcement) (Announcement, error) {
	if err := validateWindow(item); err != nil {
		return Announcement{}, err
	}
	items, err := s.List()
	if err != nil {
		return Announcement{}, err
	}
	item.ID = storage.NewID("ann")
	item.CreatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.repo.WriteCollection(storage.CollectionAnnouncements, append(items, item)); err != nil {
		return Announcement{}, err
	}
	return item, nil
}

func (s *Service) Update(id string, updated Announcement) (Announcement, error) {
	if err := validateWindow(updated); err != nil {
		return Announcement{}, err
	}
	items, err := s.List()
	if err != nil {
		return Announcement{}, err
	}
	for i, item := range items {
		if item.ID != id {
			continue
		}
		updated.ID = item.ID
		updated.CreatedAt = item.CreatedAt
		items[i] = updated
		if err := s.repo.WriteCollection(storage.CollectionAnnouncements, items); err != nil {
			return Announcement{}, err
		}
		return updated, nil
	}
	return Announcement{}, ErrAnnouncementNotFound
}

func (s *Service) Delete(id string) error {
	items, err := s.List()
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrAnnouncementNotFound
	}
	return s.repo.WriteCollection(storage.CollectionAnnouncements, kept)
}

func validateWindow(item Announcement) error {
	if item.ValidFrom > item.ValidTo {
		return ErrInvalidWindow
	}
	return nil
}
