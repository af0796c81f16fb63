package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a record is absent from a fetched
	// collection. This is an expected outcome, not a transport failure.
	ErrNotFound = errors.New("resource not found")
)
