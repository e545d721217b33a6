// Package apperr defines the error taxonomy shared by every slice.
//
// Validation, NotFound and Conflict are expected outcomes a caller can act on.
// DependencyUnavailable and Internal are unexpected and must be logged before they
// reach the ultimate caller. Configuration errors only happen at startup.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindDependencyUnavailable
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindDependencyUnavailable:
		return "dependency_unavailable"
	case KindConfiguration:
		return "configuration"
	default:
		return "internal"
	}
}

var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("not found")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrConfiguration         = errors.New("configuration error")
	ErrInternal              = errors.New("internal error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	case KindDependencyUnavailable:
		return ErrDependencyUnavailable
	case KindConfiguration:
		return ErrConfiguration
	default:
		return ErrInternal
	}
}

// Violation is a single failed rule on a request or aggregate field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind       Kind
	Entity     string
	Message    string
	Violations []Violation
	// Module and Op identify the remote call for DependencyUnavailable errors.
	Module string
	Op     string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindValidation && len(e.Violations) > 0:
		parts := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			if v.Field == "" {
				parts[i] = v.Message
				continue
			}
			parts[i] = v.Field + ": " + v.Message
		}
		return "validation failed: " + strings.Join(parts, "; ")
	case e.Kind == KindDependencyUnavailable:
		return fmt.Sprintf("%s.%s unavailable: %s", e.Module, e.Op, e.Message)
	case e.Message != "":
		return e.Message
	default:
		return e.Kind.sentinel().Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels, e.g. errors.Is(err, apperr.ErrNotFound).
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func Validation(violations ...Violation) *Error {
	return &Error{Kind: KindValidation, Violations: violations}
}

// Invalid is a one-violation shortcut used by aggregate mutators and value object factories.
func Invalid(field, message string) *Error {
	return Validation(Violation{Field: field, Message: message})
}

func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s %s not found", entity, id),
	}
}

func Conflict(entity, message string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: message}
}

func Unavailable(module, op string, err error) *Error {
	msg := "call failed"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindDependencyUnavailable, Module: module, Op: op, Message: msg, Err: err}
}

func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsExpected reports whether err is an outcome the caller is expected to handle
// rather than a system failure.
func IsExpected(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindNotFound, KindConflict:
		return true
	default:
		return false
	}
}

// ViolationsOf returns the violations carried by a validation error, nil otherwise.
func ViolationsOf(err error) []Violation {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindValidation {
		return e.Violations
	}
	return nil
}
