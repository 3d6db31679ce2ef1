// Package apperrors is the error taxonomy shared by the services and the
// transport layer. Services return *Error values; handlers map Kind to an
// HTTP status and only ever show Msg to the client.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindCascadeFailure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindCascadeFailure:
		return "cascade_failure"
	default:
		return "internal"
	}
}

// Client-facing messages. They are the same for every entity so callers
// cannot learn anything from the wording.
const (
	MsgUnauthorized = "Unauthorized access"
	MsgInternal     = "Internal Server Error"
)

type Error struct {
	Kind  Kind
	Msg   string
	Field string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

// NotFound builds the "<Entity> not found" error, e.g. NotFound("Project").
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " not found"}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Msg: MsgUnauthorized}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: MsgInternal, Err: err}
}

func CascadeFailure(err error) *Error {
	return &Error{Kind: KindCascadeFailure, Msg: MsgInternal, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal for anything else.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ValidationErrors collects field errors from a single input check.
type ValidationErrors []*Error

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation: no errors"
	}
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

// As lets errors.As find the first field error, so KindOf reports
// KindValidation for the whole set.
func (v ValidationErrors) As(target interface{}) bool {
	if len(v) == 0 {
		return false
	}
	if t, ok := target.(**Error); ok {
		*t = v[0]
		return true
	}
	return false
}

// InvalidCredentials is the sign-in failure. It never says which half of the
// pair was wrong.
func InvalidCredentials() *Error {
	return &Error{Kind: KindUnauthorized, Msg: "Invalid email or password"}
}
