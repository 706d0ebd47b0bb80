package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6

// User is an account that owns transactions, budgets and goals
type User struct {
	ID           uint64
	FullName     string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a user from already validated fields and a password hash
func NewUser(fullName, email, username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "is required")
	}
	return &User{
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.TrimSpace(email),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// ValidateRegistration checks the raw registration fields
func ValidateRegistration(fullName, email, username, password string) error {
	if strings.TrimSpace(fullName) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(username) == "" ||
		password == "" {
		return &errs.ValidationError{Reason: "All fields are required"}
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &errs.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}

// Claims is the identity embedded in a session token
type Claims struct {
	UserID    uint64
	Username  string
	FullName  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ClaimsFor builds the claim set issued to a user at login
func ClaimsFor(user *User, issuedAt time.Time, ttl time.Duration) Claims {
	return Claims{
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(ttl),
	}
}
