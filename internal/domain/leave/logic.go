package leave

import (
	"errors"
	"time"
)

// CalculateDays returns the inclusive day count of a leave span: a leave
// from a date to the same date is one day.
func CalculateDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}
