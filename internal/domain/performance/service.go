// Package performance stores quarterly evaluations, one per employee per
// quarter. Ratings are entered, never computed.
package performance

import (
	"errors"

	"ems/internal/storage"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Service struct {
	repo *storage.Repository
}

func NewService(repo *storage.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Evaluation, error) {
	var evaluations []Evaluation
	if err := s.repo.ReadCollection(storage.CollectionPerformance, &evaluations); err != nil {
		return nil, err
	}
	return evaluations, nil
}

func (s *Service) ListForEmployee(employeeID string) ([]Evaluation, error) {
	evaluations, err := s.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]Evaluation, 0, len(evaluations))
	for _, evaluation := range evaluations {
		if evaluation.EmployeeID == employeeID {
			filtered = append(filtered, evaluation)
		}
	}
	return filtered, nil
}

// Save upserts by (employee, quarter): an existing evaluation keeps its id
// and is replaced in place, otherwise a new record is appended.
func (s *Service) Save(evaluation Evaluation) (Evaluation, error) {
	if evaluation.Rating < 1 || evaluation.Rating > 5 {
		return Evaluation{}, ErrInvalidRating
	}

	evaluations, err := s.List()
	if err != nil {
		return Evaluation{}, err
	}
	for i, existing := range evaluations {
		if existing.EmployeeID == evaluation.EmployeeID && existing.Quarter == evaluation.Quarter {
			evaluation.ID = existing.ID
			evaluations[i] = evaluation
			if err := s.repo.WriteCollection(storage.CollectionPerformance, evaluations); err != nil {
				return Evaluation{}, err
			}
			return evaluation, nil
		}
	}

	evaluation.ID = storage.NewID("perf")
	if err := s.repo.WriteCollection(storage.CollectionPerformance, append(evaluations, evaluation)); err != nil {
		return Evaluation{}, err
	}
	return evaluation, nil
}
