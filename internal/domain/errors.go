package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeUnauthenticated    ErrorCode = "unauthenticated"
	CodeInvalidInput       ErrorCode = "invalid_input"
	CodeConflict           ErrorCode = "conflict"
	CodeForbidden          ErrorCode = "forbidden"
	CodeNotFound           ErrorCode = "not_found"
	CodeStorageUnavailable ErrorCode = "storage_unavailable"
)

// Error is a typed failure returned by services and repositories.
type Error struct {
	Code    ErrorCode
	Message string
	Field   string // set for invalid_input errors that name an input
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func NewValidationError(field, message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message, Field: field}
}

// CodeOf returns the code of the first *Error in err's chain, or "" when there is none.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

var (
	ErrUnauthenticated    = NewError(CodeUnauthenticated, "authentication required", nil)
	ErrAlreadyApplied     = NewError(CodeConflict, "already applied", nil)
	ErrApplicationMissing = NewError(CodeNotFound, "application not found", nil)
	ErrJobMissing         = NewError(CodeNotFound, "job not found", nil)
	ErrProfileMissing     = NewError(CodeNotFound, "applicant profile not found", nil)
	ErrNoOrganization     = NewError(CodeNotFound, "organization required", nil)
	ErrNotJobOwner        = NewError(CodeForbidden, "application belongs to another organization", nil)
)
