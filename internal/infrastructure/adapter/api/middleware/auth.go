package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
)

const (
	userIDKey = "userID"
	claimsKey = "claims"

	bearerPrefix = "Bearer "
)

// Auth rejects requests without a valid bearer token. A missing token is a
// 401; a token that fails verification is a 403.
func Auth(auth usecaseport.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainerr.ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
					Code:    domainerr.CodeMissingToken,
					Message: "Access token required",
				})
				return
			}

			logger.Debug("Rejected session token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": RequestID(c),
				"error":      err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidToken,
				Message: "Invalid token",
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(claimsKey, *claims)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// Anything other than a Bearer credential yields the empty string.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// UserID returns the authenticated user's id set by Auth
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// Claims returns the verified session claims set by Auth
func Claims(c *gin.Context) (entity.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return entity.Claims{}, false
	}
	claims, ok := v.(entity.Claims)
	return claims, ok
}
