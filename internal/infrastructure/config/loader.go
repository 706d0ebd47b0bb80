package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env first so FT_ENV itself can come from it
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("FT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "finance-tracker.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThresholdMs", 200)
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenTTLHours", 24)
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.issuer", "finance-tracker")

	v.SetDefault("cors.allowedOrigins", []string{"*"})

	v.SetDefault("seed.demoUser", false)
	v.SetDefault("seed.fullName", "Demo User")
	v.SetDefault("seed.email", "demo@example.com")
	v.SetDefault("seed.username", "demo")
}

// getEnvironment determines the environment to use based on FT_ENV
func getEnvironment() string {
	env := os.Getenv("FT_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over file values.
// Secrets are expected to arrive this way rather than through the yaml files.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"FT_DB_DRIVER":     "database.driver",
		"FT_DB_HOST":       "database.host",
		"FT_DB_USERNAME":   "database.username",
		"FT_DB_PASSWORD":   "database.password",
		"FT_DB_NAME":       "database.database",
		"FT_DB_SSL_MODE":   "database.sslMode",
		"FT_DB_PATH":       "database.path",
		"FT_SERVER_HOST":   "server.host",
		"FT_LOGGER_LEVEL":  "logger.level",
		"FT_JWT_SECRET":    "auth.jwtSecret",
		"FT_JWT_ISSUER":    "auth.issuer",
		"FT_SEED_PASSWORD": "seed.password",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"FT_DB_PORT":                       "database.port",
		"FT_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"FT_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"FT_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"FT_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"FT_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"FT_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"FT_SERVER_PORT":                   "server.port",
		"FT_JWT_TTL_HOURS":                 "auth.tokenTTLHours",
		"FT_BCRYPT_COST":                   "auth.bcryptCost",
	}
	for env, key := range intOverrides {
		if val := getEnvInt(env, 0); val > 0 {
			v.Set(key, val)
		}
	}

	if retries := getEnvInt("FT_DB_RETRY_ATTEMPTS", -1); retries >= 0 {
		v.Set("database.retryAttempts", retries)
	}

	if origins := os.Getenv("FT_CORS_ALLOWED_ORIGINS"); origins != "" {
		v.Set("cors.allowedOrigins", splitList(origins))
	}

	if seed := os.Getenv("FT_SEED_DEMO_USER"); seed != "" {
		if enabled, err := strconv.ParseBool(seed); err == nil {
			v.Set("seed.demoUser", enabled)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

// processDurations converts the unit-less numbers read from yaml into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
}
