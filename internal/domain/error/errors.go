package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4000
	CodeConflict           = 4009
	CodeMissingToken       = 4010
	CodeInvalidCredentials = 4011
	CodeInvalidToken       = 4030
	CodeNotFound           = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStore          = 5001
)

// Base error types
var (
	// ErrValidation is returned when a required field is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when a unique key (email, username) is already taken
	ErrConflict = errors.New("user already exists")

	// ErrMissingToken is returned when a protected request carries no bearer token
	ErrMissingToken = errors.New("access token required")

	// ErrInvalidToken is returned when the token signature or expiry check fails
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned for both unknown identities and wrong passwords
	ErrInvalidCredentials = errors.New("invalid username/email or password")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrGoalNotFound is returned when a goal doesn't exist or belongs to another user
	ErrGoalNotFound = errors.New("goal not found")

	// ErrBudgetNotFound is returned when no budget exists for a category
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrStore is returned for any underlying persistence failure
	ErrStore = errors.New("database error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrMissingToken):
		return CodeMissingToken
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrStore):
		return CodeStore
	default:
		return CodeInternalServer
	}
}

// ValidationError describes which request field failed validation and why
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps an underlying persistence failure. The operation and cause
// are kept for logs; clients only ever see ErrStore's message.
type StoreError struct {
	Operation string
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrStore
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodeStore,
	}
}

// NewStoreError creates a new store error for the given operation
func NewStoreError(operation string, err error) error {
	return &StoreError{Operation: operation, Err: err}
}

// GoalError carries the goal id for failures on a specific goal
type GoalError struct {
	GoalID uint64
	UserID uint64
	Err    error
}

// Error implements the error interface for GoalError
func (e *GoalError) Error() string {
	return fmt.Sprintf("goal %d (user %d): %v", e.GoalID, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *GoalError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GoalError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "goal_error",
		"goal_id":    e.GoalID,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewGoalError creates a detailed goal error
func NewGoalError(goalID, userID uint64, err error) error {
	return &GoalError{GoalID: goalID, UserID: userID, Err: err}
}

// IsValidationError checks if the error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConflictError checks if the error is a unique-key conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsAuthError checks if the error is any authentication failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidCredentials)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrGoalNotFound) ||
		errors.Is(err, ErrBudgetNotFound)
}

// IsStoreError checks if the error comes from the persistence layer
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}
