// Package apperr defines the error kinds shared by all modules.
//
// Every error returned by a repository or service wraps exactly one kind, so
// callers can branch with errors.Is without knowing module-specific sentinels.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus indicates a status value or transition that is not permitted.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrConstraintViolation indicates a uniqueness or capacity conflict.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrStorageFailure indicates that persistence is unavailable or the transaction aborted.
	// It is the only retryable kind.
	ErrStorageFailure = errors.New("storage failure")
	// ErrInvalidArgument indicates malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")
)

var kinds = []error{
	ErrNotFound,
	ErrInvalidStatus,
	ErrConstraintViolation,
	ErrStorageFailure,
	ErrInvalidArgument,
}

type sentinel struct {
	msg  string
	kind error
}

func (s *sentinel) Error() string { return s.msg }

func (s *sentinel) Unwrap() error { return s.kind }

// New creates a module sentinel error that reports msg and matches kind.
func New(kind error, msg string) error {
	return &sentinel{msg: msg, kind: kind}
}

// Kind returns the kind wrapped by err, or nil if err carries none.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Storage wraps a raw persistence error as a storage failure.
// Errors that already carry a kind are returned unchanged, and unique key
// violations are reported as constraint violations.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != nil {
		return err
	}
	if IsDuplicate(err) {
		return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFailure, err)
}

// IsDuplicate reports whether err is a unique constraint violation.
// Drivers without error translation are matched on message text.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// Message returns the text of the first module sentinel in err's chain,
// falling back to the kind's text. Driver messages are never returned.
func Message(err error) string {
	var s *sentinel
	if errors.As(err, &s) {
		return s.msg
	}
	if k := Kind(err); k != nil {
		return k.Error()
	}
	return "internal error"
}

// IsRetryable reports whether the caller may retry the failed operation.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}
