// Package service implements the record services: per-entity validation
// and CRUD on top of a storage.Store.
package service

// ValidationError reports a missing or malformed request field. The HTTP
// layer surfaces the message verbatim with a 400 status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
