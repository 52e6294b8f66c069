// Package apperr holds the error taxonomy shared by the job, auth and cv use cases.
// Domain packages wrap these sentinels so the HTTP layer can map them with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrPersistence        = errors.New("write not acknowledged")
	ErrExtraction         = errors.New("text extraction failed")
	ErrExternalService    = errors.New("external service failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Persistence wraps a store failure as ErrPersistence. A nil cause means the
// store returned no error but also no generated identifier.
func Persistence(cause error) error {
	if cause == nil {
		return ErrPersistence
	}
	return fmt.Errorf("%w: %v", ErrPersistence, cause)
}

// InvalidID reports a malformed store identifier.
func InvalidID(id string) error {
	return fmt.Errorf("%w: malformed identifier %q", ErrInvalidInput, id)
}
