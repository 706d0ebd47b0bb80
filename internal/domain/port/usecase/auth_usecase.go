package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FullName string
	Email    string
	Username string
	Password string
}

// LoginResult is a freshly issued session for a verified user
type LoginResult struct {
	Token  string
	Claims entity.Claims
	User   *entity.User
}

// AuthUseCase registers users and manages their sessions
type AuthUseCase interface {
	// Register creates an account and returns the new user ID
	Register(ctx context.Context, req RegisterRequest) (uint64, error)

	// Verify checks a username or email together with a password
	Verify(ctx context.Context, usernameOrEmail, password string) (*entity.User, error)

	// Login verifies the credentials and issues a session token
	Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error)

	// Authenticate validates a session token and returns its claims
	Authenticate(ctx context.Context, token string) (*entity.Claims, error)
}
