package journal

import "errors"

var (
	// ErrNotFound is returned when no trade carries the requested id.
	ErrNotFound = errors.New("trade not found")

	// ErrDuplicateID is returned when adding a trade whose id already exists.
	ErrDuplicateID = errors.New("duplicate trade id")

	// ErrStorageFull wraps save failures so callers can tell the user the
	// store is out of space while keeping the in-memory session intact.
	ErrStorageFull = errors.New("storage full")

	// ErrInvalidImportFormat is returned when an imported document does not
	// contain a trades array.
	ErrInvalidImportFormat = errors.New("invalid import format: no trades array")
)
