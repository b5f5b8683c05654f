package common

import "errors"

// ErrorCode 服务层错误分类
type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation"
	ErrorCodeConflict   ErrorCode = "conflict"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeExhausted  ErrorCode = "exhausted"
	ErrorCodeInternal   ErrorCode = "internal"
)

// ServiceError 服务层统一错误：携带分类码与可直接返回给调用方的消息
type ServiceError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewValidationError 构造参数校验错误
func NewValidationError(message string) *ServiceError {
	return &ServiceError{Code: ErrorCodeValidation, Message: message}
}

// NewConflictError 构造唯一性冲突错误
func NewConflictError(message string) *ServiceError {
	return &ServiceError{Code: ErrorCodeConflict, Message: message}
}

// NewNotFoundError 构造记录不存在错误
func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Code: ErrorCodeNotFound, Message: message}
}

// NewExhaustedError 构造重试耗尽错误
func NewExhaustedError(message string) *ServiceError {
	return &ServiceError{Code: ErrorCodeExhausted, Message: message}
}

// NewInternalError 包装底层错误为内部错误
func NewInternalError(message string, err error) *ServiceError {
	return &ServiceError{Code: ErrorCodeInternal, Message: message, Err: err}
}

// AsServiceError 判断并提取 ServiceError
func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
