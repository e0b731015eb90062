package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrAlreadyPaid        = errors.New("already paid")
	ErrLocked             = errors.New("lock is held by another owner")
)

// NotFoundError reports a referenced id that does not exist in its collection.
type NotFoundError struct {
	Entity EntityType
	ID     int64
}

func NewNotFoundError(e EntityType, id int64) *NotFoundError {
	return &NotFoundError{Entity: e, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError reports malformed input. Rule is the failed validation tag.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q failed %q", ErrInvalidArgument, e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

type InvariantViolationError struct {
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Reason)
}

func (e *InvariantViolationError) Unwrap() error { return ErrInvariantViolation }
