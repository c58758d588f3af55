package models

import "errors"

// Store level errors. Repositories wrap these so callers can match with errors.Is.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrVersionConflict = errors.New("record was modified concurrently")
)
