package auth

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	portuse "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// Register creates a new account and returns its ID
func (u *AuthUseCase) Register(ctx context.Context, req portuse.RegisterRequest) (uint64, error) {
	if err := entity.ValidateRegistration(req.FullName, req.Email, req.Username, req.Password); err != nil {
		return 0, err
	}

	// Reject taken identities before paying for a hash
	exists, err := u.userRepo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errs.ErrConflict
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		if errs.IsValidationError(err) {
			return 0, err
		}
		u.logger.Error("Failed to hash password", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return 0, fmt.Errorf("%w: hashing password", errs.ErrInternalServer)
	}

	user, err := entity.NewUser(req.FullName, req.Email, req.Username, hash, u.timeProvider)
	if err != nil {
		return 0, err
	}

	// A concurrent registration can still win the race; the unique index
	// turns that into ErrConflict here
	if err := u.userRepo.Create(ctx, user); err != nil {
		if !errs.IsConflictError(err) {
			u.logger.Error("Failed to create user", map[string]any{
				"username": req.Username,
				"error":    err.Error(),
			})
		}
		return 0, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
	})

	return user.ID, nil
}
