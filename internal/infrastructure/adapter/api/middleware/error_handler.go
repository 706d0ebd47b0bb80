package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler turns a panic in a later handler into a logged 500 response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			fields := map[string]any{
				"panic":      fmt.Sprint(recovered),
				"method":     c.Request.Method,
				"route":      c.FullPath(),
				"request_id": RequestID(c),
				"stack":      string(debug.Stack()),
			}
			if userID, ok := UserID(c); ok {
				fields["user_id"] = userID
			}
			logger.Error("Recovered from handler panic", fields)

			// Headers already sent; the client sees a truncated body
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}
