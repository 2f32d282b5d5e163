package services

import (
	"errors"
	"fmt"

	"locker-booking/utils"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindNoOp
	KindStore
)

// Error is the error every service operation fails with, apart from the
// store package's ErrNoFields and ErrMissingField which pass through as-is.
type Error struct {
	Kind ErrorKind
	Msg  string
	// Fields holds per-field validation failures.
	Fields []utils.FieldError
	// Details lists the reasons behind a conflict.
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string, details ...string) *Error {
	return &Error{Kind: KindConflict, Msg: msg, Details: details}
}

func Invalid(msg string, fields ...utils.FieldError) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

func NoOp(msg string) *Error {
	return &Error{Kind: KindNoOp, Msg: msg}
}

func storeErr(op string, err error) *Error {
	return &Error{Kind: KindStore, Msg: "Internal server error", Err: fmt.Errorf("%s: %w", op, err)}
}

// IsKind reports whether err is a service Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
