package dashboard

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired means no user identity is resolved for the session.
	// Callers should treat this as a redirect-to-login signal.
	ErrAuthRequired = errors.New("authentication required")

	// ErrHotelRequired means a mutation needs a persisted hotel and none
	// exists yet. No durable call is attempted.
	ErrHotelRequired = errors.New("create a hotel before managing links")

	ErrLinkNotFound     = errors.New("link not found")
	ErrActivityNotFound = errors.New("activity not found")

	// ErrInvalidSequence means a reorder payload is malformed (a duplicate
	// link id). A client error, not a store fault.
	ErrInvalidSequence = errors.New("invalid reorder sequence")
)

// PersistenceError wraps a durable-store failure. By the time the caller sees
// it, the in-memory rollback for create/delete/hotel mutations has already
// been applied; update-in-place and partial reorder leave memory as-is.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
