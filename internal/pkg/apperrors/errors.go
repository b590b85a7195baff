package apperrors

import "errors"

// Error kinds. Every error returned by the workflow layer unwraps to exactly one of these.
var (
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrValidationFailed   = errors.New("validation failed")
	ErrBadRequest         = errors.New("bad request")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// Reference errors
var (
	ErrUserNotFound          = newKindError(ErrResourceNotFound, "USER_NOT_FOUND", "user not found")
	ErrStudentNotFound       = newKindError(ErrResourceNotFound, "STUDENT_NOT_FOUND", "student not found")
	ErrSupervisorNotFound    = newKindError(ErrResourceNotFound, "SUPERVISOR_NOT_FOUND", "institution supervisor not found")
	ErrLogbookNotFound       = newKindError(ErrResourceNotFound, "LOGBOOK_NOT_FOUND", "logbook entry not found")
	ErrGradingRecordNotFound = newKindError(ErrResourceNotFound, "GRADING_RECORD_NOT_FOUND", "no defense has been scheduled for this student")
	ErrNotificationNotFound  = newKindError(ErrResourceNotFound, "NOTIFICATION_NOT_FOUND", "notification not found")
	ErrCodeNotFound          = newKindError(ErrResourceNotFound, "CODE_NOT_FOUND", "no verification code matches this email")
)

// Authorization errors
var (
	ErrForbidden             = newKindError(ErrPermissionDenied, "FORBIDDEN", "you are not allowed to perform this action")
	ErrCrossDepartmentDenied = newKindError(ErrPermissionDenied, "CROSS_DEPARTMENT_DENIED", "student belongs to another department")
)

// Validation errors
var (
	ErrInvalidWeek     = newKindError(ErrValidationFailed, "INVALID_WEEK", "week number must be between 1 and 13")
	ErrInvalidStatus   = newKindError(ErrValidationFailed, "INVALID_STATUS", "status must be APPROVED or NEEDS_REVIEW")
	ErrScoreOutOfRange = newKindError(ErrValidationFailed, "OUT_OF_RANGE", "score must be between 0 and 100")
	ErrInvalidVerdict  = newKindError(ErrValidationFailed, "INVALID_VERDICT", "verdict must be PASS or FAIL")
	ErrInvalidRole     = newKindError(ErrValidationFailed, "INVALID_ROLE", "unknown role")
)

// Conflict errors
var (
	ErrDuplicateWeek         = newKindError(ErrConflict, "DUPLICATE_WEEK", "a logbook entry already exists for this week")
	ErrDuplicateRegistration = newKindError(ErrConflict, "DUPLICATE_REGISTRATION", "a student is already registered with this email")
	ErrEmailAlreadyExists    = newKindError(ErrConflict, "EMAIL_EXISTS", "email already exists")
	ErrCodeAlreadyUsed       = newKindError(ErrConflict, "CODE_ALREADY_USED", "verification code has already been used")
	ErrCodeExpired           = newKindError(ErrConflict, "CODE_EXPIRED", "verification code has expired")
	ErrResubmitNotAllowed    = newKindError(ErrConflict, "RESUBMIT_NOT_ALLOWED", "only entries marked NEEDS_REVIEW can be resubmitted")
	ErrLogbookChanged        = newKindError(ErrConflict, "LOGBOOK_CHANGED", "the logbook entry was changed by someone else, reload it and try again")
)

// Precondition errors
var (
	ErrIncompleteLogbook = newKindError(ErrPreconditionFailed, "INCOMPLETE_LOGBOOK", "all 13 logbook weeks must be approved before a defense can be scheduled")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error naming the offending field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Details: map[string]interface{}{"field": field},
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Kind returns the base kind an error unwraps to, or nil for infrastructure errors.
func Kind(err error) error {
	for _, kind := range []error{
		ErrResourceNotFound,
		ErrConflict,
		ErrPreconditionFailed,
		ErrPermissionDenied,
		ErrValidationFailed,
		ErrBadRequest,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
}

func newKindError(kind error, code, message string) *CustomError {
	return &CustomError{Err: kind, Code: code, Message: message}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
