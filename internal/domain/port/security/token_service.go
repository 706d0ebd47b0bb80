package security

import (
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// TokenService issues and validates signed session tokens
type TokenService interface {
	// Issue signs a token carrying the user's identity claims
	Issue(user *entity.User) (token string, claims entity.Claims, err error)

	// Validate verifies the signature, algorithm and expiry of a token
	// and returns the embedded claims.
	//
	// Possible errors:
	// - ErrMissingToken: If token is empty
	// - ErrInvalidToken: If any check fails
	Validate(token string) (*entity.Claims, error)
}
