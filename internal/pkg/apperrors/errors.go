package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Workflow errors: a transition attempted from a terminal or
	// wrong-stage state. Kept distinct from validation errors so the UI
	// can say "this application was already decided" instead of a
	// generic message.
	ErrWorkflowViolation = errors.New("workflow violation")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrSINAlreadyExists   = errors.New("SIN already exists")
	ErrInvalidSIN         = errors.New("invalid SIN format")
)

// Room errors
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is at capacity")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Leave application errors
var (
	ErrLeaveNotFound = errors.New("leave application not found")
)

// Staff errors
var (
	ErrStaffNotFound = errors.New("staff member not found")
)

// NewValidationError creates a validation failure with a caller-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewWorkflowError creates a workflow violation with a caller-facing message
func NewWorkflowError(message string) error {
	return &CustomError{
		Err:     ErrWorkflowViolation,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
