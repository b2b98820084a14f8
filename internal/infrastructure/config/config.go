package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const devSecret = "dev-secret"

// Shared holds the settings common to both binaries.
type Shared struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	JWTSecret string `env:"JWT_SECRET"`
}

func (s Shared) IsDevelopment() bool {
	return strings.EqualFold(s.Env, "development")
}

// ConsoleConfig configures the front-desk console.
type ConsoleConfig struct {
	Shared

	Port             string        `env:"CONSOLE_PORT,      default=5173"`
	CatalogURL       string        `env:"CATALOG_URL,       default=http://localhost:8081"`
	CatalogTimeout   time.Duration `env:"CATALOG_TIMEOUT,   default=5s"`
	SessionBackend   string        `env:"SESSION_BACKEND,   default=redis"`
	SessionNamespace string        `env:"SESSION_NAMESPACE"`

	Redis RedisConfig
}

// CatalogConfig configures the catalog API.
type CatalogConfig struct {
	Shared

	Port        string   `env:"CATALOG_PORT, default=8081"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hotel_management"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// LoadConsole reads the console configuration from the environment.
func LoadConsole(ctx context.Context) (*ConsoleConfig, error) {
	return LoadConsoleWith(ctx, envconfig.OsLookuper())
}

func LoadConsoleWith(ctx context.Context, lookuper envconfig.Lookuper) (*ConsoleConfig, error) {
	var cfg ConsoleConfig
	if err := process(ctx, &cfg, lookuper); err != nil {
		return nil, err
	}
	switch cfg.SessionBackend {
	case "redis", "memory":
	default:
		return nil, fmt.Errorf("config: SESSION_BACKEND must be redis or memory, got %q", cfg.SessionBackend)
	}
	if err := cfg.Shared.resolveSecret(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCatalog reads the catalog API configuration from the environment.
func LoadCatalog(ctx context.Context) (*CatalogConfig, error) {
	return LoadCatalogWith(ctx, envconfig.OsLookuper())
}

func LoadCatalogWith(ctx context.Context, lookuper envconfig.Lookuper) (*CatalogConfig, error) {
	var cfg CatalogConfig
	if err := process(ctx, &cfg, lookuper); err != nil {
		return nil, err
	}
	if err := cfg.Shared.resolveSecret(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func process(ctx context.Context, target any, lookuper envconfig.Lookuper) error {
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: target, Lookuper: lookuper}); err != nil {
		return fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return nil
}

// resolveSecret applies the development secret; any other environment must
// set JWT_SECRET.
func (s *Shared) resolveSecret() error {
	if s.JWTSecret != "" {
		return nil
	}
	if !s.IsDevelopment() {
		return errors.New("config: JWT_SECRET is required outside development")
	}
	s.JWTSecret = devSecret
	return nil
}
