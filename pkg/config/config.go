package config

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads ./configs/.env into the environment on first call. A missing file
// is fine: every key has a default and plain environment variables work too.
func New() *Config {
	once.Do(func() {
		if err := godotenv.Load("./configs/.env"); err != nil {
			slog.Info("no .env file loaded, using environment", slog.String("reason", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default",
			slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return d
}
