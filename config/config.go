package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	ex "github.com/Johnmustcode/FinancialTools/extensions"
)

const (
	DefaultPort            = 8080
	DefaultAllowedOrigin   = "http://localhost:3000"
	DefaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port            int
	LogLevel        string
	LogPretty       bool
	AllowedOrigins  []string
	RiskFreeRate    float64 // used when a sharpe ratio request has no rate
	ShutdownTimeout time.Duration
}

// LoadEnvFile reads the .env files (default ./.env) into the environment.
// Variables that are already set are left alone.
func LoadEnvFile(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:            DefaultPort,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       ex.AreEqual(getEnv("LOG_PRETTY", "false"), "true"),
		AllowedOrigins:  []string{DefaultAllowedOrigin},
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := ex.Map(strings.Split(v, ","), strings.TrimSpace)
		cfg.AllowedOrigins = ex.FilterMultiple(origins, func(s string) bool { return s != "" })
	}

	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RISK_FREE_RATE %q: %w", v, err)
		}
		cfg.RiskFreeRate = rate
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = timeout
	}

	return cfg, nil
}

// Addr is the listen address for the http server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
