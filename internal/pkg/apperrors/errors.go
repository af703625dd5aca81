package apperrors

import (
	"errors"
	"fmt"
)

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
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied     = errors.New("permission denied")
	ErrOnboardingIncomplete = errors.New("onboarding not completed")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = fmt.Errorf("user not found: %w", ErrResourceNotFound)
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Catalog errors. Not-found errors wrap ErrResourceNotFound so the error
// handler maps them all to 404.
var (
	ErrInstitutionNotFound      = fmt.Errorf("institution not found: %w", ErrResourceNotFound)
	ErrInstitutionAlreadyExists = errors.New("institution with this name already exists")
	ErrProgrammeNotFound        = fmt.Errorf("programme not found: %w", ErrResourceNotFound)
	ErrCourseNotFound           = fmt.Errorf("course not found: %w", ErrResourceNotFound)
)

// Material errors
var (
	ErrMaterialNotFound   = fmt.Errorf("material not found: %w", ErrResourceNotFound)
	ErrMaterialNotVisible = errors.New("material is not approved for viewing")
)

// Quiz errors
var (
	ErrQuizNotFound        = fmt.Errorf("quiz not found: %w", ErrResourceNotFound)
	ErrQuizHasNoQuestions  = errors.New("quiz has no questions")
	ErrAttemptNotFound     = fmt.Errorf("quiz attempt not found: %w", ErrResourceNotFound)
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)

// Engagement errors
var (
	ErrBookmarkNotFound = fmt.Errorf("bookmark not found: %w", ErrResourceNotFound)
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrReviewNotFound   = fmt.Errorf("review not found: %w", ErrResourceNotFound)
	ErrReportNotFound   = fmt.Errorf("report not found: %w", ErrResourceNotFound)
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

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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
