package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrConflict      = errors.New("conflicting options")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNotFound      = errors.New("not found")
	ErrIO            = errors.New("i/o error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindConflict      ErrorKind = "conflict"
	KindOutOfRange    ErrorKind = "out_of_range"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindNotFound      ErrorKind = "not_found"
	KindIO            ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func conflictError(a, b string) error {
	return &OpError{
		Op:   "options.validate",
		Kind: KindConflict,
		Err:  fmt.Errorf("can't use %s and %s at the same time: %w", a, b, ErrConflict),
	}
}

func rangeError(field string, lo, hi int) error {
	return &OpError{
		Op:   "options.validate",
		Kind: KindOutOfRange,
		Err:  fmt.Errorf("%s has to be between %d and %d: %w", field, lo, hi, ErrOutOfRange),
	}
}
