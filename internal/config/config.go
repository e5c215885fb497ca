package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Supported values for DatabaseDriver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime configuration. Values come from defaults, then an
// optional YAML file named by CONFIG_FILE, then environment variables.
type Config struct {
	Port           string   `yaml:"port"`
	DatabaseDriver string   `yaml:"database_driver"`
	DatabasePath   string   `yaml:"database_path"`
	DatabaseURL    string   `yaml:"database_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	JWTIssuer      string   `yaml:"jwt_issuer"`
	JWTTTLMinutes  int      `yaml:"jwt_ttl_minutes"`
	BcryptCost     int      `yaml:"bcrypt_cost"`
	CORSOrigins    []string `yaml:"cors_allowed_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:           "3000",
		DatabaseDriver: DriverSQLite,
		DatabasePath:   "banco-de-dados.db",
		JWTTTLMinutes:  60,
		BcryptCost:     10,
		CORSOrigins:    []string{"*"},
		LogLevel:       "info",
		LogFormat:      "json",
	}
}

// Load reads configuration and performs minimal validation.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = fallback(os.Getenv("PORT"), cfg.Port)
	cfg.DatabaseDriver = strings.ToLower(fallback(os.Getenv("DATABASE_DRIVER"), cfg.DatabaseDriver))
	cfg.DatabasePath = fallback(os.Getenv("DATABASE_PATH"), cfg.DatabasePath)
	cfg.DatabaseURL = fallback(os.Getenv("DATABASE_URL"), cfg.DatabaseURL)
	cfg.JWTSecret = fallback(os.Getenv("JWT_SECRET"), cfg.JWTSecret)
	cfg.JWTIssuer = fallback(os.Getenv("JWT_ISSUER"), cfg.JWTIssuer)
	cfg.LogLevel = fallback(os.Getenv("LOG_LEVEL"), cfg.LogLevel)
	cfg.LogFormat = fallback(os.Getenv("LOG_FORMAT"), cfg.LogFormat)
	if origins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); origins != "" {
		cfg.CORSOrigins = parseCSV(origins)
	}

	var err error
	if cfg.JWTTTLMinutes, err = positiveInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = positiveInt("BCRYPT_COST", cfg.BcryptCost); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and consistent.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DatabaseDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DatabasePath) == "" {
			return errors.New("DATABASE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.JWTTTLMinutes <= 0 {
		return errors.New("JWT_TTL_MINUTES must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// JWTTTL returns the session token lifetime.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// String masks the secrets so the config can be logged.
func (c Config) String() string {
	return fmt.Sprintf("Config{Port: %s, Driver: %s, Path: %s, JWT: *** (masked) ***, TTL: %s}",
		c.Port, c.DatabaseDriver, c.DatabasePath, c.JWTTTL())
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func positiveInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return v, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
