// ABOUTME: Error taxonomy for the storage layer.
// ABOUTME: Validation failures are typed; engine errors pass through wrapped.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidID is returned when an update or delete receives a
// non-positive id.
var ErrInvalidID = errors.New("id must be a positive integer")

// ErrNoFields is returned when nothing remains of an update payload
// after unknown keys are filtered out.
var ErrNoFields = errors.New("no valid fields to update")

// MissingFieldsError names every required field absent from a create.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required parameters: " + strings.Join(e.Fields, ", ")
}

// requireFields returns a MissingFieldsError for the given op, or nil
// when the missing list is empty. The failure is logged before any
// statement would have run.
func (s *Store) requireFields(op string, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	err := &MissingFieldsError{Fields: missing}
	s.log.Error("validation failed", "op", op, "missing", missing)
	return fmt.Errorf("%s: %w", op, err)
}

// checkID validates that id can address a row.
func (s *Store) checkID(op string, id int64) error {
	if id <= 0 {
		s.log.Error("validation failed", "op", op, "id", id, "err", ErrInvalidID)
		return fmt.Errorf("%s: %w", op, ErrInvalidID)
	}
	return nil
}
