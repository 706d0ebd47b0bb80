package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
)

const testYAML = `
server:
  port: 6000
database:
  driver: "sqlite"
  path: ":memory:"
  queryTimeout: 3
auth:
  jwtSecret: "from-file"
  tokenTTLHours: 2
cors:
  allowedOrigins:
    - "http://localhost:3000"
`

func withConfigDir(t *testing.T, env, contents string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(contents), 0o600))

	originalPaths, originalDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = originalPaths, originalDotEnv
	})

	t.Setenv("FT_ENV", env)
}

func TestLoadConfig(t *testing.T) {
	t.Run("File values with defaults and unit conversion", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 6000, cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, database.DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 10, cfg.Auth.BcryptCost)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
		assert.False(t, cfg.Seed.DemoUser)
	})

	t.Run("Environment overrides win", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("FT_JWT_SECRET", "from-env")
		t.Setenv("FT_DB_PORT", "6543")
		t.Setenv("FT_DB_RETRY_ATTEMPTS", "0")
		t.Setenv("FT_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
		t.Setenv("FT_SEED_DEMO_USER", "true")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.Equal(t, 0, cfg.Database.RetryAttempts)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
		assert.True(t, cfg.Seed.DemoUser)
	})

	t.Run("Missing profile is an error", func(t *testing.T) {
		withConfigDir(t, Test, testYAML)
		t.Setenv("FT_ENV", "staging")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestConnectionConfig(t *testing.T) {
	withConfigDir(t, Test, testYAML)
	cfg, err := LoadConfig()
	require.NoError(t, err)

	dbConfig := cfg.Database.ConnectionConfig()

	assert.Equal(t, database.DriverSQLite, dbConfig.Driver)
	assert.True(t, dbConfig.IsInMemory())
	assert.Equal(t, 3*time.Second, dbConfig.QueryTimeout)
	assert.NoError(t, dbConfig.Validate())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Empty(t, splitList(""))
}
