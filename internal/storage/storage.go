// Package storage implements the collection repository: typed access to
// named, ordered record collections serialized as JSON arrays in the
// session store, one key per collection.
//
// Every mutation in this system is a whole-collection read-modify-write:
// a caller reads the full array, edits it in memory, and writes the full
// array back. With two callers sharing one session the last writer wins
// and the earlier update is lost. That window is an accepted limitation
// of the single-actor session model; the repository provides no merge or
// locking to paper over it.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"ems/internal/platform/session"
)

// KeyPrefix namespaces every EMS key in the session store.
const KeyPrefix = "ems_"

// Collection names. One store key per collection: KeyPrefix + name.
const (
	CollectionUsers         = "users"
	CollectionEmployees     = "employees"
	CollectionDepartments   = "departments"
	CollectionTeams         = "teams"
	CollectionAttendance    = "attendance"
	CollectionLeaves        = "leaves"
	CollectionTimesheets    = "timesheets"
	CollectionPayslips      = "payslips"
	CollectionPerformance   = "performance"
	CollectionAnnouncements = "announcements"
	CollectionHolidays      = "holidays"
)

// ErrCorrupt reports stored bytes that no longer decode. It surfaces to
// the caller, who decides whether to reset or abort; the repository never
// silently discards data.
var ErrCorrupt = errors.New("stored collection is not valid JSON")

type Repository struct {
	store session.Store
}

func NewRepository(store session.Store) *Repository {
	return &Repository{store: store}
}

// Store exposes the underlying session store for state that lives outside
// any collection, such as the current-user pointer and the seed sentinel.
func (r *Repository) Store() session.Store {
	return r.store
}

// ReadCollection decodes the named collection into out, which must be a
// pointer to a slice. An absent key decodes as the empty collection,
// never an error.
func (r *Repository) ReadCollection(name string, out any) error {
	raw, ok, err := r.store.Get(KeyPrefix + name)
	if err != nil {
		return fmt.Errorf("read collection %s: %w", name, err)
	}
	if !ok {
		raw = []byte("[]")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("collection %s: %w: %v", name, ErrCorrupt, err)
	}
	return nil
}

// WriteCollection serializes records and overwrites the named collection.
// The store makes the whole write visible at once; partial writes are
// never observable within the session.
func (r *Repository) WriteCollection(name string, records any) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	if err := r.store.Set(KeyPrefix+name, raw); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}
