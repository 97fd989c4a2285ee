package response

import (
	stdErrors "errors"
	"runtime"

	"userdir/domain/shared"
	"userdir/pkg/errors"
	"userdir/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func captureStack(skip int) []string {
	var pcs [16]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, frame.Function)
		}
		if !more {
			break
		}
	}
	return stack
}

// HandleError rejects a request that never reached the service: unreadable
// bodies, malformed JSON, dates not in dd.MM.yyyy.
func HandleError(c *gin.Context, err error, message string, code int) {
	logger.Warn(message,
		zap.String("request_id", GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", code),
		zap.Error(err))

	write(c, code, Response{
		Error:   string(errors.CodeBadRequest),
		Message: message,
	})
}

// HandleAppError maps a service error onto its code and status. Rejections
// (invalid data, unknown or duplicate email, failed patch) log at warn;
// anything unmapped is an internal error, logged with its stack.
func HandleAppError(c *gin.Context, err error) {
	appErr := errors.FromDomainError(err)
	status := appErr.HTTPStatusCode()

	fields := []zap.Field{
		zap.String("request_id", GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("error_code", string(appErr.Code)),
		zap.Int("http_status", status),
	}
	if email := c.Param("email"); email != "" {
		fields = append(fields, zap.String("email", email))
	}

	if appErr.Code == errors.CodeInternal {
		fields = append(fields, zap.Strings("stack", extractStack(err)), zap.Error(err))
		logger.Error("request failed", fields...)
	} else {
		logger.Warn(appErr.Message, fields...)
	}

	write(c, status, Response{
		Error:   string(appErr.Code),
		Message: appErr.Message,
	})
}

func extractStack(err error) []string {
	var stacker shared.Stacker
	if stdErrors.As(err, &stacker) {
		if stack := stacker.Stack(); len(stack) > 0 {
			return stack
		}
	}
	return captureStack(4)
}
