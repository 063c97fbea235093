package core

import (
	"errors"
	"fmt"

	"github.com/gigtrack-dev/gigtrack/internal/validation"
)

// Kind tags a core error so the transport layer can map it to a status
// without inspecting messages.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindConflict         Kind = "conflict"
	KindMissingReference Kind = "missing_reference"
	KindStorage          Kind = "storage"
)

type Error struct {
	Kind    Kind
	Message string
	Fields  validation.Errors // populated for KindValidation
	Err     error             // populated for KindStorage
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError unpacks a core error from an error chain.
func AsError(err error) (*Error, bool) {
	var coreErr *Error
	if errors.As(err, &coreErr) {
		return coreErr, true
	}
	return nil, false
}

func invalid(fields validation.Errors) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func missingReference(format string, args ...any) *Error {
	return &Error{Kind: KindMissingReference, Message: fmt.Sprintf(format, args...)}
}

func storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Unexpected storage error", Err: err}
}
