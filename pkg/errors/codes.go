package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Shared error codes understood by every transport.
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"
	ErrNotImplemented  = "NOT_IMPLEMENTED"
	ErrUnavailable     = "UNAVAILABLE"
)

type transportStatus struct {
	http int
	grpc codes.Code
}

var transportStatuses = map[string]transportStatus{
	ErrInternal:        {http.StatusInternalServerError, codes.Internal},
	ErrNotFound:        {http.StatusNotFound, codes.NotFound},
	ErrInvalidArgument: {http.StatusBadRequest, codes.InvalidArgument},
	ErrUnauthenticated: {http.StatusUnauthorized, codes.Unauthenticated},
	ErrUnauthorized:    {http.StatusForbidden, codes.PermissionDenied},
	ErrConflict:        {http.StatusConflict, codes.AlreadyExists},
	ErrTimeout:         {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	ErrNotImplemented:  {http.StatusNotImplemented, codes.Unimplemented},
	ErrUnavailable:     {http.StatusServiceUnavailable, codes.Unavailable},
}

// HTTPStatus is the response status for code. Unknown codes are 500.
func HTTPStatus(code string) int {
	if s, ok := transportStatuses[code]; ok {
		return s.http
	}
	return http.StatusInternalServerError
}

// GRPCCode is the gRPC status code for code. Unknown codes are Internal.
func GRPCCode(code string) codes.Code {
	if s, ok := transportStatuses[code]; ok {
		return s.grpc
	}
	return codes.Internal
}
