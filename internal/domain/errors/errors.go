package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
)

// Machine-readable error codes carried in the response envelope
const (
	CodeNotFound         = "not_found"
	CodeInvalidInput     = "invalid_input"
	CodeUnauthorized     = "unauthorized"
	CodeEmailNotVerified = "email_not_verified"
	CodeAlreadyVerified  = "already_verified"
	CodeServerError      = "server_error"
)

// AppError represents an application error with an HTTP status and a
// machine-readable code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func UnprocessableEntity(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, CodeInvalidInput, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func EmailNotVerified(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeEmailNotVerified, message, ErrEmailNotVerified)
}

func AlreadyVerified(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, CodeAlreadyVerified, message, ErrAlreadyVerified)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeServerError, "internal server error", err)
}
