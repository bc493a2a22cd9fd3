package domain

import (
	"fmt"
	"time"
)

// ServiceError is returned by services when a request cannot be served
type ServiceError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	QueryID   string    `json:"query_id,omitempty"`
	Err       error     `json:"-"`
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Error codes carried by ServiceError
const (
	ErrInvalidInput = "INVALID_INPUT"
	ErrValidation   = "VALIDATION_ERROR"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewServiceError creates a new ServiceError with timestamp
func NewServiceError(code, message, queryID string, cause error) *ServiceError {
	return &ServiceError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
		QueryID:   queryID,
		Err:       cause,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
