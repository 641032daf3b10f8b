package store

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when no record exists for an id or index value.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a write would duplicate a primary
	// key or a unique index value.
	ErrAlreadyExists = errors.New("already exists")
)

// IndexConflictError reports which unique index rejected a write.
// It matches ErrAlreadyExists under errors.Is.
type IndexConflictError struct {
	Index string
	Value string
}

func (e *IndexConflictError) Error() string {
	return fmt.Sprintf("index %s conflict on key %s: %v", e.Index, e.Value, ErrAlreadyExists)
}

// Is reports whether target is ErrAlreadyExists.
func (e *IndexConflictError) Is(target error) bool {
	return target == ErrAlreadyExists
}
