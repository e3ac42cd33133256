package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NewID returns a time-based record identifier: prefix plus millisecond
// timestamp, e.g. "emp1735689600000". Two creates inside the same
// millisecond collide; with a single actor per session that risk is
// accepted and deliberately not papered over with uniqueness checks.
func NewID(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NextEmployeeNumber computes the next "EMP###" number from the numeric
// suffixes already in use: max+1, not count+1, so deletions never cause
// reuse. Numbers that do not parse are ignored.
func NextEmployeeNumber(existing []string) string {
	highest := 0
	for _, number := range existing {
		n, err := strconv.Atoi(strings.TrimPrefix(number, "EMP"))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("EMP%03d", highest+1)
}
