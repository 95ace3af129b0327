package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/JivitSolutions/JivIT-Solutions/pkg/errors"
)

// ContentError represents errors raised while reading or writing content
type ContentError struct {
	Type       string
	Message    string
	EntityType string
	EntityID   string
	Fields     map[string]string
	Cause      error
}

func (e *ContentError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Type, e.Message)
	if e.EntityType != "" {
		fmt.Fprintf(&b, " (%s", e.EntityType)
		if e.EntityID != "" {
			fmt.Fprintf(&b, " %s", e.EntityID)
		}
		b.WriteString(")")
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + e.Fields[k]
		}
		fmt.Fprintf(&b, " [%s]", strings.Join(parts, "; "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " - %v", e.Cause)
	}
	return b.String()
}

func (e *ContentError) Unwrap() error {
	return e.Cause
}

// Code maps the error onto the shared transport codes.
func (e *ContentError) Code() string {
	switch e.Type {
	case ErrTypeNotFound:
		return apperrors.ErrNotFound
	case ErrTypeValidation:
		return apperrors.ErrInvalidArgument
	case ErrTypeStoreUnavailable:
		return apperrors.ErrUnavailable
	case ErrTypeConflict:
		return apperrors.ErrConflict
	case ErrTypeApplicationsClosed:
		return apperrors.ErrUnauthorized
	default:
		return apperrors.ErrInternal
	}
}

// FieldErrors returns per-field validation messages.
func (e *ContentError) FieldErrors() map[string]string {
	return e.Fields
}

// Content error types
const (
	ErrTypeNotFound           = "NOT_FOUND"
	ErrTypeValidation         = "VALIDATION_FAILED"
	ErrTypeStoreUnavailable   = "STORE_UNAVAILABLE"
	ErrTypeConflict           = "CONFLICT"
	ErrTypeApplicationsClosed = "APPLICATIONS_CLOSED"
)

// NewNotFoundError creates an error for an id that does not resolve to a live record
func NewNotFoundError(entityType, id string) *ContentError {
	return &ContentError{
		Type:       ErrTypeNotFound,
		Message:    "record not found",
		EntityType: entityType,
		EntityID:   id,
	}
}

// NewValidationError creates an error carrying field-level messages
func NewValidationError(entityType string, fields map[string]string) *ContentError {
	return &ContentError{
		Type:       ErrTypeValidation,
		Message:    "validation failed",
		EntityType: entityType,
		Fields:     fields,
	}
}

// NewStoreUnavailableError wraps a storage or network failure
func NewStoreUnavailableError(entityType string, cause error) *ContentError {
	return &ContentError{
		Type:       ErrTypeStoreUnavailable,
		Message:    "content store unavailable",
		EntityType: entityType,
		Cause:      cause,
	}
}

// NewConflictError reports a uniqueness violation
func NewConflictError(entityType, message string) *ContentError {
	return &ContentError{
		Type:       ErrTypeConflict,
		Message:    message,
		EntityType: entityType,
	}
}

// NewApplicationsClosedError is returned when submissions are disabled in settings
func NewApplicationsClosedError() *ContentError {
	return &ContentError{
		Type:       ErrTypeApplicationsClosed,
		Message:    "applications are currently closed",
		EntityType: "application",
	}
}

func contentErrorType(err error) string {
	var contentErr *ContentError
	if errors.As(err, &contentErr) {
		return contentErr.Type
	}
	return ""
}

// IsNotFound reports whether err is a not-found content error.
func IsNotFound(err error) bool {
	return contentErrorType(err) == ErrTypeNotFound
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return contentErrorType(err) == ErrTypeValidation
}

// IsStoreUnavailable reports whether err is a storage failure.
func IsStoreUnavailable(err error) bool {
	return contentErrorType(err) == ErrTypeStoreUnavailable
}
