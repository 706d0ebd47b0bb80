package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	NotFoundError     ErrorType = "not_found"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier classifies driver errors from PostgreSQL and SQLite by
// their message text
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or an empty string when unknown
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique index violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return containsAny(err.Error(),
		"duplicate key",
		"UNIQUE constraint",
		"Duplicate entry",
		"SQLSTATE 23505",
	)
}

// IsLockError checks if the error is due to locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(),
		"deadlock",
		"lock wait timeout",
		"could not serialize access",
		"serialization failure",
		"database is locked",
		"SQLITE_BUSY",
	)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(),
		"connection reset",
		"connection refused",
		"dial",
		"broken pipe",
		"server closed",
		"database is closed",
		"sql: database is closed",
	)
}

// IsConstraintError checks if the error is any constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return c.IsDuplicateKeyError(err) || containsAny(err.Error(),
		"violates",
		"foreign key",
		"FOREIGN KEY constraint",
		"NOT NULL constraint",
		"CHECK constraint",
	)
}

// MapError converts a driver error into a domain error. notFound is returned
// for missing rows; unique violations become ErrConflict and everything else
// is wrapped as a store error.
func (c *ErrorClassifier) MapError(operation string, err error, notFound error) error {
	switch c.Classify(err) {
	case NotFoundError:
		return notFound
	case DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrConflict, operation)
	default:
		return errs.NewStoreError(operation, err)
	}
}

func containsAny(s string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
