package errors

import (
	"errors"
	"fmt"
	"net/http"

	"userdir/domain/shared"
)

// ErrorCode 错误码
type ErrorCode string

const (
	// 通用错误码
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"

	// 业务错误码
	CodeInvalidData       ErrorCode = "INVALID_DATA"
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeUserAlreadyExists ErrorCode = "USER_ALREADY_EXISTS"
	CodeUserNotUpdated    ErrorCode = "USER_NOT_UPDATED"
)

// AppError 应用错误. Message is what clients see.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode 返回对应的HTTP状态码
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeInvalidData, CodeUserNotUpdated:
		return http.StatusBadRequest
	case CodeNotFound, CodeUserNotFound:
		return http.StatusNotFound
	case CodeUserAlreadyExists:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// String code and message with the wrapped cause, for logs.
func (e *AppError) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromDomainError maps domain sentinels to application codes. The domain
// message is kept verbatim; anything unrecognised becomes an internal error
// whose message is not exposed.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeInvalidData, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeUserNotFound, err.Error())
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeUserAlreadyExists, err.Error())
	case errors.Is(err, shared.ErrNotUpdated):
		return Wrap(err, CodeUserNotUpdated, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
