// Package leave manages leave requests and the holiday calendar. Leave
// balances are demo values; there is no accrual engine here.
package leave

import (
	"errors"
	"time"

	"ems/internal/storage"
)

var ErrLeaveNotFound = errors.New("leave request not found")

type Service struct {
	repo *storage.Repository
	now  func() time.Time
}

func NewService(repo *storage.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List() ([]Leave, error) {
	var leaves []Leave
	if err := s.repo.ReadCollection(storage.CollectionLeaves, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (s *Service) ListForEmployee(employeeID string) ([]Leave, error) {
	leaves, err := s.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]Leave, 0, len(leaves))
	for _, leave := range leaves {
		if leave.EmployeeID == employeeID {
			filtered = append(filtered, leave)
		}
	}
	return filtered, nil
}

// Apply files a Pending request. Days is always recomputed from the span,
// never trusted from the caller.
func (s *Service) Apply(request Leave) (Leave, error) {
	from, err := time.Parse("2006-01-02", request.FromDate)
	if err != nil {
		return Leave{}, errors.New("fromDate must be a YYYY-MM-DD date")
	}
	to, err := time.Parse("2006-01-02", request.ToDate)
	if err != nil {
		return Leave{}, errors.New("toDate must be a YYYY-MM-DD date")
	}
	days, err := CalculateDays(from, to)
	if err != nil {
		return Leave{}, err
	}

	leaves, err := s.List()
	if err != nil {
		return Leave{}, err
	}

	request.ID = storage.NewID("leave")
	request.Days = days
	request.Status = StatusPending
	request.AppliedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.repo.WriteCollection(storage.CollectionLeaves, append(leaves, request)); err != nil {
		return Leave{}, err
	}
	return request, nil
}

func (s *Service) Approve(id string) (Leave, error) {
	return s.setStatus(id, StatusApproved)
}

func (s *Service) Reject(id string) (Leave, error) {
	return s.setStatus(id, StatusRejected)
}

func (s *Service) setStatus(id, status string) (Leave, error) {
	leaves, err := s.List()
	if err != nil {
		return Leave{}, err
	}
	for i, leave := range leaves {
		if leave.ID != id {
			continue
		}
		leaves[i].Status = status
		if err := s.repo.WriteCollection(storage.CollectionLeaves, leaves); err != nil {
			return Leave{}, err
		}
		return leaves[i], nil
	}
	return Leave{}, ErrLeaveNotFound
}

func (s *Service) ListHolidays() ([]Holiday, error) {
	var holidays []Holiday
	if err := s.repo.ReadCollection(storage.CollectionHolidays, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (s *Service) AddHoliday(holiday Holiday) (Holiday, error) {
	holidays, err := s.ListHolidays()
	if err != nil {
		return Holiday{}, err
	}
	holiday.ID = storage.NewID("hol")
	if err := s.repo.WriteCollection(storage.CollectionHolidays, append(holidays, holiday)); err != nil {
		return Holiday{}, err
	}
	return holiday, nil
}
