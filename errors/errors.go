package errors

import "fmt"

// Application error types organized by category for consistent handling

type ErrorType string

// Domain/Business Logic Errors - errors related to farmer input and session state
const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	AuthError       ErrorType = "AUTH_ERROR"
)

// Infrastructure Errors - errors related to the remote advisory services
const (
	NetworkError ErrorType = "NETWORK_ERROR"
	ServerError  ErrorType = "SERVER_ERROR"
)

// System/Configuration Errors - errors related to system setup and configuration
const (
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewAuthError(message string) *AppError {
	return New(AuthError, message)
}

// Infrastructure Error Constructors
func NewNetworkError(message string, cause error) *AppError {
	return Wrap(NetworkError, message, cause)
}

func NewServerError(message string, cause error) *AppError {
	return Wrap(ServerError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}
