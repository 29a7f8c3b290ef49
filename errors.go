package transact

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntry is returned when an entry would collide with a
	// stored entry that is the same entry.
	ErrDuplicateEntry = errors.New("duplicate entry")
	// ErrEntryNotFound is returned when the target of an edit or a removal is
	// not stored.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrNotFound is returned by a Storage that has nothing to load yet.
	ErrNotFound = errors.New("data not found")
)

// ValidationError reports a field value that does not satisfy its format rule.
type ValidationError struct {
	Field      string // Field is the name of the invalid field (e.g. "email").
	Value      string // Value is the rejected input.
	Constraint string // Constraint describes the rule the value must follow.
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

// DataLoadingError reports a failure to hydrate a Store from persisted data.
// Loading is all or nothing: when a DataLoadingError is returned, no store is.
type DataLoadingError struct {
	Path string // Path is the data file, if any.
	Err  error
}

func (e *DataLoadingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot load data: %v", e.Err)
	}
	return fmt.Sprintf("cannot load data from %q: %v", e.Path, e.Err)
}

func (e *DataLoadingError) Unwrap() error { return e.Err }
