package entities

import "errors"

// Domain errors shared by use cases and storage adapters.
var (
	ErrAllocationExceeded     = errors.New("cap table allocation would exceed 100%")
	ErrInvalidStateTransition = errors.New("invalid offer state transition")
	ErrConcurrentModification = errors.New("concurrent modification, retry the operation")
	// ErrStartupGone is returned by storage when a write references a startup
	// deleted in the meantime.
	ErrStartupGone = errors.New("referenced startup no longer exists")
)
