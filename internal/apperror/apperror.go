// Package apperror defines the error kinds surfaced by the core.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that an id did not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports input that fails a domain invariant.
	ErrValidation = errors.New("validation failed")
	// ErrAuthentication reports an unknown user or a wrong password.
	ErrAuthentication = errors.New("authentication failed")
)

// DatabaseError carries a human-readable context message and the original
// cause of a failure in the persistence layer.
type DatabaseError struct {
	Context string
	Err     error
}

func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return e.Context
	}
	return e.Context + ": " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Database wraps err as a DatabaseError with the given context message.
func Database(context string, err error) *DatabaseError {
	return &DatabaseError{Context: context, Err: err}
}

// Databasef wraps err as a DatabaseError with a formatted context message.
func Databasef(err error, format string, args ...any) *DatabaseError {
	return &DatabaseError{Context: fmt.Sprintf(format, args...), Err: err}
}

// WrapDatabase returns err unchanged when it already is a DatabaseError,
// otherwise it wraps it with the given context. This keeps the innermost
// message (the one closest to the failing statement) on surfaced errors.
func WrapDatabase(context string, err error) error {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return Database(context, err)
}

// BinaryLogError reports an I/O or decoding failure against the audit file.
// Op is either "read" or "write".
type BinaryLogError struct {
	Op  string
	Err error
}

func (e *BinaryLogError) Error() string {
	return "binary log " + e.Op + ": " + e.Err.Error()
}

func (e *BinaryLogError) Unwrap() error { return e.Err }

// BinaryLogRead wraps err as a binary-log-read failure.
func BinaryLogRead(err error) *BinaryLogError {
	return &BinaryLogError{Op: "read", Err: err}
}

// BinaryLogWrite wraps err as a binary-log-write failure.
func BinaryLogWrite(err error) *BinaryLogError {
	return &BinaryLogError{Op: "write", Err: err}
}

// Validation wraps a formatted message with ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
