package migration

import (
	"context"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
)

// SeedDemoUser registers the demo account through the normal registration
// flow. An existing account is left untouched.
func SeedDemoUser(ctx context.Context, auth usecaseport.AuthUseCase, req usecaseport.RegisterRequest, logger coreport.Logger) error {
	userID, err := auth.Register(ctx, req)
	if errs.IsConflictError(err) {
		logger.Debug("Demo user already exists", map[string]any{
			"username": req.Username,
		})
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("Demo user created", map[string]any{
		"user_id":  userID,
		"username": req.Username,
	})
	return nil
}
