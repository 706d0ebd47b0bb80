package auth

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/security"
)

// AuthUseCase handles registration, credential checks and session tokens
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Authenticate validates a bearer token and returns its claims
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.ErrMissingToken
	}

	claims, err := u.tokens.Validate(token)
	if err != nil {
		u.logger.Debug("Token rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}
