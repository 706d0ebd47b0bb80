package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/event"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	usecaseport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	authUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/auth"
	budgetUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/budget"
	dashboardUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/dashboard"
	goalUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/goal"
	ledgerUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/ledger"

	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/config"
)

// minSecretLength is the shortest JWT secret accepted without a warning
const minSecretLength = 32

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(cfg.Database.ConnectionConfig(), appLogger, tp)
	if _, err := dbManager.Connect(context.Background()); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token issuer", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Budgets follow ledger expenses through the in-process bus
	bus := event.NewBus()

	authUC := authUseCase.NewAuthUseCase(userRepo, hasher, tokens, tp, appLogger)
	ledgerUC := ledgerUseCase.NewLedgerUseCase(uow, bus, tp, appLogger)
	budgetUC := budgetUseCase.NewBudgetUseCase(uow, tp, appLogger)
	budgetUC.Subscribe(bus)
	goalUC := goalUseCase.NewGoalUseCase(uow, tp, appLogger)
	dashboardUC := dashboardUseCase.NewDashboardUseCase(uow, tp, appLogger)

	if cfg.Seed.DemoUser {
		seedCtx, cancel := dbManager.WithTimeout(context.Background())
		err := migration.SeedDemoUser(seedCtx, authUC, usecaseport.RegisterRequest{
			FullName: cfg.Seed.FullName,
			Email:    cfg.Seed.Email,
			Username: cfg.Seed.Username,
			Password: cfg.Seed.Password,
		}, appLogger)
		cancel()
		if err != nil {
			appLogger.Error("Failed to seed demo user", map[string]any{
				"error": err.Error(),
			})
		}
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.CORS.AllowedOrigins, dbManager.QueryTimeout())
	routes.SetupRoutes(router, routes.Handlers{
		Auth:         handler.NewAuthHandler(authUC, appLogger),
		Transactions: handler.NewTransactionHandler(ledgerUC, appLogger),
		Budgets:      handler.NewBudgetHandler(budgetUC, appLogger),
		Goals:        handler.NewGoalHandler(goalUC, tp, appLogger),
		Dashboard:    handler.NewDashboardHandler(dashboardUC, appLogger),
		Health:       handler.NewHealthHandler(dbManager, tp, appLogger),
	}, authUC, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited properly", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or FT_JWT_SECRET environment variable)")
	}
	if cfg.Auth.TokenTTL <= 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTLHours")
	}

	switch cfg.Database.Driver {
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or FT_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or FT_DB_USERNAME environment variable)")
		}
		if cfg.Database.Password == "" {
			missingConfigs = append(missingConfigs, "database.password (or FT_DB_PASSWORD environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or FT_DB_NAME environment variable)")
		}
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be one of: %s, %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Seed.DemoUser && cfg.Seed.Password == "" {
		missingConfigs = append(missingConfigs, "seed.password (or FT_SEED_PASSWORD environment variable)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.IsProduction() {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.JWTSecret) < minSecretLength {
			warnings = append(warnings, fmt.Sprintf("auth.jwtSecret should be at least %d characters", minSecretLength))
		}
		if cfg.Seed.DemoUser {
			warnings = append(warnings, "seed.demoUser is enabled")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
