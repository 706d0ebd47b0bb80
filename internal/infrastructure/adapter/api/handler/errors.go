package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps a domain error onto its HTTP status
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err), domainerr.IsConflictError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrMissingToken), errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrInvalidToken):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the client facing message for err. Store and internal
// failures never leak their cause.
func messageFor(err error) string {
	var validationErr *domainerr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case domainerr.IsConflictError(err):
		return "User already exists"
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return "Invalid username/email or password"
	case errors.Is(err, domainerr.ErrMissingToken):
		return "Access token required"
	case errors.Is(err, domainerr.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, domainerr.ErrGoalNotFound):
		return "Goal not found"
	case errors.Is(err, domainerr.ErrUserNotFound):
		return "User not found"
	case domainerr.IsNotFoundError(err):
		return "Resource not found"
	case domainerr.IsStoreError(err):
		return "Database error"
	default:
		return "Internal server error"
	}
}

// respondError writes the error body for err and logs server side failures
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"request_id": middleware.RequestID(c),
		}
		var logErr interface{ LogFields() map[string]any }
		if errors.As(err, &logErr) {
			for k, v := range logErr.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: messageFor(err),
	})
}

// respondBadRequest is used when the body cannot be decoded at all
func respondBadRequest(c *gin.Context, logger coreport.Logger, err error) {
	logger.Debug("Invalid request format", map[string]any{
		"path":       c.Request.URL.Path,
		"error":      err.Error(),
		"request_id": middleware.RequestID(c),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.CodeValidation,
		Message: "Invalid request format",
	})
}

// currentUser returns the id placed in the context by the auth middleware.
// Handlers are only mounted behind that middleware, so a miss is a wiring bug.
func currentUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeMissingToken,
			Message: "Access token required",
		})
	}
	return userID, ok
}

// pathID parses a numeric path parameter. Non-numeric ids can never match a
// stored row, so they are reported as not found.
func pathID(c *gin.Context, name string, notFound error) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return id, nil
}
