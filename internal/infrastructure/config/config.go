package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Identity backend selection. The provider is chosen explicitly at startup;
// "local" runs the in-memory fixture provider and needs no external services.
const (
	AuthBackendLocal = "local"
	AuthBackendMongo = "mongo"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string `env:"JWT_SECRET"`
	AuthBackend string `env:"AUTH_BACKEND, default=local"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=justdogs"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.AuthBackend != AuthBackendLocal && cfg.AuthBackend != AuthBackendMongo {
		return nil, fmt.Errorf("config: unknown AUTH_BACKEND %q", cfg.AuthBackend)
	}
	if cfg.AuthBackend == AuthBackendMongo && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required with AUTH_BACKEND=mongo")
	}
	return &cfg, nil
}
