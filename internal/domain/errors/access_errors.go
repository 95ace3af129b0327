package errors

import (
	"errors"
	"fmt"

	apperrors "github.com/JivitSolutions/JivIT-Solutions/pkg/errors"
)

// AccessError represents errors raised by the access gate and identity provider
type AccessError struct {
	Type    string
	Message string
	UserID  string
	Cause   error
}

func (e *AccessError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.UserID != "" {
		msg += fmt.Sprintf(" (user: %s)", e.UserID)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" - %v", e.Cause)
	}
	return msg
}

func (e *AccessError) Unwrap() error {
	return e.Cause
}

// Code maps the error onto the shared transport codes.
func (e *AccessError) Code() string {
	switch e.Type {
	case ErrTypeUnauthenticated, ErrTypeInvalidCredentials:
		return apperrors.ErrUnauthenticated
	case ErrTypeForbidden, ErrTypeProfileNotFound:
		return apperrors.ErrUnauthorized
	case ErrTypeIdentityProviderFailed:
		return apperrors.ErrUnavailable
	case ErrTypeSignUpRejected:
		return apperrors.ErrInvalidArgument
	default:
		return apperrors.ErrInternal
	}
}

// Access error types
const (
	ErrTypeUnauthenticated        = "UNAUTHENTICATED"
	ErrTypeProfileNotFound        = "PROFILE_NOT_FOUND"
	ErrTypeForbidden              = "FORBIDDEN"
	ErrTypeInvalidCredentials     = "INVALID_CREDENTIALS"
	ErrTypeSignUpRejected         = "SIGN_UP_REJECTED"
	ErrTypeIdentityProviderFailed = "IDENTITY_PROVIDER_FAILED"
)

// NewUnauthenticatedError is returned when no valid session exists
func NewUnauthenticatedError(reason string) *AccessError {
	return &AccessError{
		Type:    ErrTypeUnauthenticated,
		Message: reason,
	}
}

// NewProfileNotFoundError is returned when a session has no matching profile
func NewProfileNotFoundError(userID string) *AccessError {
	return &AccessError{
		Type:    ErrTypeProfileNotFound,
		Message: "no profile for authenticated user",
		UserID:  userID,
	}
}

// NewForbiddenError is returned when the caller lacks the admin role
func NewForbiddenError(userID, operation string, cause error) *AccessError {
	return &AccessError{
		Type:    ErrTypeForbidden,
		Message: fmt.Sprintf("admin role required for %s", operation),
		UserID:  userID,
		Cause:   cause,
	}
}

// NewInvalidCredentialsError is returned for a rejected sign-in
func NewInvalidCredentialsError(cause error) *AccessError {
	return &AccessError{
		Type:    ErrTypeInvalidCredentials,
		Message: "invalid email or password",
		Cause:   cause,
	}
}

// NewSignUpRejectedError is returned when the identity provider refuses a sign-up
func NewSignUpRejectedError(message string) *AccessError {
	return &AccessError{
		Type:    ErrTypeSignUpRejected,
		Message: message,
	}
}

// NewIdentityProviderError wraps a transport failure talking to the identity provider
func NewIdentityProviderError(cause error) *AccessError {
	return &AccessError{
		Type:    ErrTypeIdentityProviderFailed,
		Message: "identity provider unavailable",
		Cause:   cause,
	}
}

func accessErrorType(err error) string {
	var accessErr *AccessError
	if errors.As(err, &accessErr) {
		return accessErr.Type
	}
	return ""
}

// IsForbidden reports whether err is an authorization failure.
func IsForbidden(err error) bool {
	return accessErrorType(err) == ErrTypeForbidden
}

// IsUnauthenticated reports whether err means there is no valid session.
func IsUnauthenticated(err error) bool {
	return accessErrorType(err) == ErrTypeUnauthenticated
}

// IsProfileNotFound reports whether err is a missing-profile error.
func IsProfileNotFound(err error) bool {
	return accessErrorType(err) == ErrTypeProfileNotFound
}
