package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port              string
	Env               string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

type LogConfig struct {
	Level string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parse %s=%q: duration must be positive", key, v)
	}
	return d, nil
}

// Load reads an optional .env file and then the process environment.
// The returned bool reports whether a .env file was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg, err := FromEnv()
	if err != nil {
		return nil, dotenv, err
	}
	return cfg, dotenv, nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: Get("PORT", "8080"),
			Env:  Get("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level: Get("LOG_LEVEL", "info"),
		},
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"READ_HEADER_TIMEOUT", 5 * time.Second, &cfg.Server.ReadHeaderTimeout},
		{"READ_TIMEOUT", 10 * time.Second, &cfg.Server.ReadTimeout},
		{"WRITE_TIMEOUT", 10 * time.Second, &cfg.Server.WriteTimeout},
		{"IDLE_TIMEOUT", 60 * time.Second, &cfg.Server.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", 10 * time.Second, &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		v, err := getDuration(d.key, d.fallback)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		*d.dst = v
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
