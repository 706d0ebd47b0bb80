package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def", "abc.def"},
		{"bearer abc.def", "abc.def"},
		{"  Bearer   abc.def ", "abc.def"},
		{"Basic abc", ""},
		{"Bearer", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bearerToken(tt.header), "header %q", tt.header)
	}
}

func TestRequestIDReachesRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())

	var fromContext string
	router.GET("/", func(c *gin.Context) {
		fromContext = coreport.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", fromContext)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestTimeoutBoundsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(timeadapter.NewRealTimeProvider(), time.Second))

	var hasDeadline bool
	router.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hasDeadline)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(201))
	assert.Equal(t, "Client Error", statusText(404))
	assert.Equal(t, "Server Error", statusText(503))
}

func TestLoggerIncludesAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["user_id"] == uint64(7) && fields["username"] == "jdoe" && fields["status"] == http.StatusOK
	})).Once()

	router := gin.New()
	router.Use(Logger(mockLogger, timeadapter.NewFixedTimeProvider(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))))
	router.GET("/api/goals", func(c *gin.Context) {
		c.Set(userIDKey, uint64(7))
		c.Set(claimsKey, entity.Claims{UserID: 7, Username: "jdoe"})
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/goals", nil))
}
