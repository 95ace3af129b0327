package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ToHTTPError converts err into an echo HTTP error.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	status, body := ToErrorResponse(err)
	return echo.NewHTTPError(status, body)
}

// ToErrorResponse builds the status and JSON body for err.
func ToErrorResponse(err error) (int, ErrorResponse) {
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		if body, ok := echoErr.Message.(ErrorResponse); ok {
			return echoErr.Code, body
		}
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, ErrorResponse{Error: msg, Code: httpStatusToCode(echoErr.Code)}
	}

	var coded Error
	if As(err, &coded) {
		body := ErrorResponse{Error: coded.Error(), Code: coded.Code()}
		var fieldErr FieldError
		if As(err, &fieldErr) {
			body.Fields = fieldErr.FieldErrors()
		}
		return HTTPStatus(coded.Code()), body
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
		Code:  ErrInternal,
	}
}

// FromHTTPError converts an echo HTTP error into an AppError.
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := CodeOf(err); ok {
		return err
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		code := httpStatusToCode(echoErr.Code)
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = "HTTP error"
		}
		return NewAppError(code, msg, nil)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusNotImplemented:
		return ErrNotImplemented
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	default:
		return ErrInternal
	}
}
