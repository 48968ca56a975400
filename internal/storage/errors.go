package storage

import "errors"

// Sentinel errors returned by Store implementations. The service and
// handler layers match on these with errors.Is to pick status codes and
// messages; anything else is treated as the storage backend being
// unavailable.
var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a uniqueness or referential-integrity
	// constraint would be violated (duplicate email, delete with
	// dependent records).
	ErrConflict = errors.New("constraint violation")
)
