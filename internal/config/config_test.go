package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CONFIG_FILE", "PORT", "DATABASE_DRIVER", "DATABASE_PATH", "DATABASE_URL",
	"JWT_SECRET", "JWT_ISSUER", "JWT_TTL_MINUTES", "BCRYPT_COST",
	"CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every key; t.Setenv restores the old values on cleanup.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTPAddress())
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "banco-de-dados.db", cfg.DatabasePath)
	assert.Equal(t, time.Hour, cfg.JWTTTL())
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "x")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoad_PostgresNeedsURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("DATABASE_DRIVER", "Postgres")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("DATABASE_DRIVER", "mysql")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")

	t.Setenv("JWT_TTL_MINUTES", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_TTL_MINUTES", "30")
	t.Setenv("BCRYPT_COST", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_BcryptCostRange(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")

	for _, cost := range []string{"1", "32"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := Load()
		assert.ErrorContains(t, err, "BCRYPT_COST", cost)
	}

	t.Setenv("BCRYPT_COST", "4")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := []byte(`
port: "8081"
database_path: /var/lib/eletronicos/app.db
jwt_secret: from-file
jwt_ttl_minutes: 15
cors_allowed_origins:
  - https://painel.example.com
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port, "env overrides file")
	assert.Equal(t, "/var/lib/eletronicos/app.db", cfg.DatabasePath)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL())
	assert.Equal(t, []string{"https://painel.example.com"}, cfg.CORSOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseCSV(" a, ,b "))
	assert.Equal(t, []string{"*"}, parseCSV(" , "))
}

func TestString_MasksSecret(t *testing.T) {
	cfg := Default()
	cfg.JWTSecret = "very-secret"
	assert.NotContains(t, cfg.String(), "very-secret")
}
