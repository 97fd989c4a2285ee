/*
Package shared holds domain-wide error definitions.

Design:
 1. Sentinel errors let callers branch with errors.Is without parsing messages.
 2. DomainError captures the stack when created and formats it lazily.
 3. No transport concepts (HTTP status codes) live in the domain layer.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrNotFound resource does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict uniqueness constraint violated
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput business rule validation failed
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotUpdated a change could not be applied to the resource representation
	ErrNotUpdated = errors.New("not updated")
)

// DomainError structured error carrying business context and the stack of the
// point where it was raised. Supports errors.Is and errors.As through Unwrap.
type DomainError struct {
	// Err sentinel used for errors.Is
	Err error

	// Entity the entity name, e.g. "user"
	Entity string

	// Message human readable, surfaced verbatim to clients
	Message string

	// Field optional, set for single-field validation errors
	Field string

	// Cause optional underlying failure
	Cause error

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// Stack formats the captured frames on demand.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack skip is usually 3: Callers, CaptureStack, NewXxxError.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders at most 10 non-runtime frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewDomainError builds a DomainError whose stack starts at the caller of the
// constructor that invokes it.
func NewDomainError(sentinel error, entity, message string, cause error) *DomainError {
	return &DomainError{
		Err:     sentinel,
		Entity:  entity,
		Message: message,
		Cause:   cause,
		stack:   CaptureStack(4),
	}
}

// Stacker errors that can report where they were raised
type Stacker interface {
	Stack() []string
}
