package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Auth         *handler.AuthHandler
	Transactions *handler.TransactionHandler
	Budgets      *handler.BudgetHandler
	Goals        *handler.GoalHandler
	Dashboard    *handler.DashboardHandler
	Health       *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	auth usecaseport.AuthUseCase,
	logger coreport.Logger,
) {
	router.GET("/health", handlers.Health.Check)

	api := router.Group("/api")
	{
		api.POST("/register", handlers.Auth.Register)
		api.POST("/login", handlers.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(auth, logger))
	{
		protected.GET("/transactions", handlers.Transactions.List)
		protected.POST("/transactions", handlers.Transactions.Create)

		protected.GET("/budgets", handlers.Budgets.List)
		protected.POST("/budgets", handlers.Budgets.Upsert)

		protected.GET("/goals", handlers.Goals.List)
		protected.POST("/goals", handlers.Goals.Create)
		protected.PUT("/goals/:id", handlers.Goals.Update)
		protected.POST("/goals/:id/progress", handlers.Goals.AddProgress)

		protected.GET("/dashboard", handlers.Dashboard.Summary)
		protected.GET("/dashboard/trend", handlers.Dashboard.Trend)
		protected.GET("/dashboard/categories", handlers.Dashboard.Categories)
		protected.GET("/dashboard/summary", handlers.Dashboard.MonthlySummary)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
	requestTimeout time.Duration,
) {
	// Order matters: the request id must exist before anything logs
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Timeout(timeProvider, requestTimeout))
}
