// Package timesheet manages submitted work-hour entries and their review.
package timesheet

import (
	"errors"

	"ems/internal/storage"
)

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrInvalidHours      = errors.New("hours must be between 0 and 24")
)

type Service struct {
	repo *storage.Repository
}

func NewService(repo *storage.Repository) *Service {
	return &Service{repo: repo}
}

// Filter narrows List; empty fields match everything.
type Filter struct {
	EmployeeID string
	Status     string
}

func (s *Service) List(filter Filter) ([]Timesheet, error) {
	var timesheets []Timesheet
	if err := s.repo.ReadCollection(storage.CollectionTimesheets, &timesheets); err != nil {
		return nil, err
	}
	if filter.EmployeeID == "" && filter.Status == "" {
		return timesheets, nil
	}
	filtered := make([]Timesheet, 0, len(timesheets))
	for _, entry := range timesheets {
		if filter.EmployeeID != "" && entry.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && entry.Status != filter.Status {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered, nil
}

// Submit appends a Submitted entry. Hours outside [0,24] are rejected.
func (s *Service) Submit(entry Timesheet) (Timesheet, error) {
	if entry.Hours < 0 || entry.Hours > 24 {
		return Timesheet{}, ErrInvalidHours
	}

	timesheets, err := s.List(Filter{})
	if err != nil {
		return Timesheet{}, err
	}
	entry.ID = storage.NewID("ts")
	entry.Status = StatusSubmitted
	if err := s.repo.WriteCollection(storage.CollectionTimesheets, append(timesheets, entry)); err != nil {
		return Timesheet{}, err
	}
	return entry, nil
}

func (s *Service) Approve(id string) (Timesheet, error) {
	return s.setStatus(id, StatusApproved)
}

func (s *Service) Reject(id string) (Timesheet, error) {
	return s.setStatus(id, StatusRejected)
}

func (s *Service) setStatus(id, status string) (Timesheet, error) {
	timesheets, err := s.List(Filter{})
	if err != nil {
		return Timesheet{}, err
	}
	for i, entry := range timesheets {
		if entry.ID != id {
			continue
		}
		timesheets[i].Status = status
		if err := s.repo.WriteCollection(storage.CollectionTimesheets, timesheets); err != nil {
			return Timesheet{}, err
		}
		return timesheets[i], nil
	}
	return Timesheet{}, ErrTimesheetNotFound
}
