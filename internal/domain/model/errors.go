package model

import "errors"

var (
	// ErrNotFound is returned when a blacklist entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidEntry is returned for blacklist entries missing a target or reason.
	ErrInvalidEntry = errors.New("invalid blacklist entry")
)
