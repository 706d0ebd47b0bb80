package persistence

import (
	"context"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// UserRepository stores user accounts and their credentials
type UserRepository interface {
	// Create saves a new user and sets its ID
	//
	// Possible errors:
	// - ErrConflict: If the email or username is already taken
	// - ErrStore: If the database operation fails
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that ID
	// - ErrStore: If the database operation fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByUsernameOrEmail looks a user up by either identifier, as used at login
	//
	// Possible errors:
	// - ErrUserNotFound: If neither column matches
	// - ErrStore: If the database operation fails
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether either value is already registered
	//
	// Possible errors:
	// - ErrStore: If the database operation fails
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
