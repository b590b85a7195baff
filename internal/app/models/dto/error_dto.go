package dto

import (
	"time"
)

// ErrorCode is the stable machine-readable kind of a rejection
type ErrorCode string

// Generic error codes. Domain errors carry their own code (e.g. DUPLICATE_WEEK).
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrorCodeExpiredToken       ErrorCode = "TOKEN_EXPIRED"
	ErrorCodeTokenNotFound      ErrorCode = "TOKEN_NOT_FOUND"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "NOT_FOUND"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrorCodePrecondition     ErrorCode = "PRECONDITION_FAILED"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"DUPLICATE_WEEK"`
	Message string      `json:"message" example:"a logbook entry already exists for this week"`
	Field   string      `json:"field,omitempty" example:"weekNumber"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// APIResponse is the envelope of every JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse wraps an error detail in a failed envelope
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a plain acknowledgement
type SuccessResponse struct {
	Message string `json:"message" example:"notification marked as read"`
}
