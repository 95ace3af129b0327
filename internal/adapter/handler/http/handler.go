package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainErrors "github.com/JivitSolutions/JivIT-Solutions/internal/domain/errors"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
	apperrors "github.com/JivitSolutions/JivIT-Solutions/pkg/errors"
)

// CustomValidator plugs the shared validator into echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates an echo validator backed by v
func NewCustomValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainErrors.NewValidationError("request", usecase.ValidationFields(err))
	}
	return nil
}

// bind decodes the request into v. Malformed input is an invalid argument.
func bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid request", err)
	}
	return nil
}

// queryInt parses an optional integer query parameter. Missing means 0.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domainErrors.NewValidationError("request", map[string]string{
			name: "must be a non-negative integer",
		})
	}
	return n, nil
}
