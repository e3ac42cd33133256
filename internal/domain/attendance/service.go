// Package attendance tracks clock-in/out records, one per employee per day.
package attendance

import (
	"errors"
	"math"
	"time"

	"ems/internal/storage"
)

var (
	ErrAlreadyClockedIn = errors.New("employee already has an attendance record for this date")
	ErrRecordNotFound   = errors.New("attendance record not found")
)

type Service struct {
	repo *storage.Repository
	// now is swapped in tests.
	now func() time.Time
}

func NewService(repo *storage.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List() ([]Record, error) {
	var records []Record
	if err := s.repo.ReadCollection(storage.CollectionAttendance, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) ListForEmployee(employeeID string) ([]Record, error) {
	records, err := s.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if record.EmployeeID == employeeID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// ClockIn opens a Present record for the employee on the given day.
// A second clock-in for the same employee and day is rejected.
func (s *Service) ClockIn(employeeID, date string) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	for _, record := range records {
		if record.EmployeeID == employeeID && record.Date == date {
			return Record{}, ErrAlreadyClockedIn
		}
	}

	record := Record{
		ID:         storage.NewID("att"),
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    s.now().UTC().Format(time.RFC3339),
		Status:     StatusPresent,
		Hours:      0,
	}
	if err := s.repo.WriteCollection(storage.CollectionAttendance, append(records, record)); err != nil {
		return Record{}, err
	}
	return record, nil
}

// ClockOut stamps the close time and the elapsed hours, rounded to two
// decimals.
func (s *Service) ClockOut(recordID string) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	for i, record := range records {
		if record.ID != recordID {
			continue
		}
		clockIn, err := time.Parse(time.RFC3339, record.ClockIn)
		if err != nil {
			return Record{}, errors.New("attendance record has no usable clock-in time")
		}
		out := s.now().UTC()
		records[i].ClockOut = out.Format(time.RFC3339)
		records[i].Hours = math.Round(out.Sub(clockIn).Hours()*100) / 100
		if err := s.repo.WriteCollection(storage.CollectionAttendance, records); err != nil {
			return Record{}, err
		}
		return records[i], nil
	}
	return Record{}, ErrRecordNotFound
}

// ManualEntry upserts by (employee, date): an existing record for that day
// is replaced field-for-field, otherwise a new one is appended. Status is
// inferred from whether a clock-in time is present.
func (s *Service) ManualEntry(entry Record) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}

	if entry.ClockIn != "" {
		entry.Status = StatusPresent
	} else {
		entry.Status = StatusAbsent
	}

	for i, record := range records {
		if record.EmployeeID == entry.EmployeeID && record.Date == entry.Date {
			entry.ID = record.ID
			records[i] = entry
			if err := s.repo.WriteCollection(storage.CollectionAttendance, records); err != nil {
				return Record{}, err
			}
			return entry, nil
		}
	}

	entry.ID = storage.NewID("att")
	if err := s.repo.WriteCollection(storage.CollectionAttendance, append(records, entry)); err != nil {
		return Record{}, err
	}
	return entry, nil
}
