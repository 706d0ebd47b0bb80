package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// Verify checks credentials. Unknown identities and wrong passwords fail
// with the same ErrInvalidCredentials.
func (u *AuthUseCase) Verify(ctx context.Context, usernameOrEmail, password string) (*entity.User, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)
	if usernameOrEmail == "" || password == "" {
		return nil, &errs.ValidationError{Reason: "Username/email and password are required"}
	}

	user, err := u.userRepo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return nil, errs.ErrInvalidCredentials
		}
		u.logger.Error("Failed to compare password hash", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: comparing password", errs.ErrInternalServer)
	}

	return user, nil
}

// Login verifies credentials and issues a session token
func (u *AuthUseCase) Login(ctx context.Context, usernameOrEmail, password string) (*portuse.LoginResult, error) {
	user, err := u.Verify(ctx, usernameOrEmail, password)
	if err != nil {
		return nil, err
	}

	token, claims, err := u.tokens.Issue(user)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: issuing token", errs.ErrInternalServer)
	}

	u.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return &portuse.LoginResult{
		Token:  token,
		Claims: claims,
		User:   user,
	}, nil
}
