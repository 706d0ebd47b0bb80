package dto

import (
	"fmt"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
)

// RegisterRequest is the body of POST /api/register
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"userId"`
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// NewLoginResponse builds the login body for user
func NewLoginResponse(token string, claims entity.Claims, user *entity.User) LoginResponse {
	return LoginResponse{
		Message:   fmt.Sprintf("Welcome back, %s!", user.FullName),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		User: UserResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Username: user.Username,
		},
	}
}
