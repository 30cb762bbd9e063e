package xrpointer

import "errors"

var (
	// ErrIDConflict is returned when a pointer's id block overlaps a
	// registered pointer.
	ErrIDConflict = errors.New("xrpointer: pointer id block already registered")
	// ErrNilPointer is returned when registering a nil pointer.
	ErrNilPointer = errors.New("xrpointer: nil pointer")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("xrpointer: invalid config")
)
