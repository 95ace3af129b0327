package errors

import (
	"go.uber.org/zap"
)

// LogError writes err as a structured error log, adding its code when present.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil {
		return
	}

	allFields := make([]zap.Field, 0, len(fields)+2)
	allFields = append(allFields, zap.Error(err))

	if code, ok := CodeOf(err); ok {
		allFields = append(allFields, zap.String("error_code", code))
	}

	allFields = append(allFields, fields...)

	logger.Error(msg, allFields...)
}
