package errors

import (
	"errors"
	"fmt"
)

// Re-exported so callers only need one errors import.
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error is an error that carries a transport-neutral code.
type Error interface {
	error
	Code() string
}

// FieldError is implemented by errors that carry per-field messages.
type FieldError interface {
	Error
	FieldErrors() map[string]string
}

// AppError is the default Error implementation.
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError creates a new application error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap wraps err with a message, keeping the code of any coded error in the chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	if code, ok := CodeOf(err); ok {
		return NewAppError(code, message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of the first coded error in err's chain.
func CodeOf(err error) (string, bool) {
	var coded Error
	if As(err, &coded) {
		return coded.Code(), true
	}
	return "", false
}
