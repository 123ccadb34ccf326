// Package config loads the checklist server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Engine names accepted by CHECKLIST_ENGINE.
const (
	EngineFiber = "fiber"
	EngineHTTP  = "http"
)

// Config holds the server settings.
type Config struct {
	Addr           string        `validate:"required"`
	Engine         string        `validate:"oneof=fiber http"`
	BasePath       string        `validate:"required,startswith=/"`
	SessionTTL     time.Duration `validate:"gt=0"`
	SessionCleanup time.Duration `validate:"gt=0"`
	CatalogPath    string
	LogFile        string
	Environment    string `validate:"oneof=development production"`
	OpenBrowser    bool

	// ChartAssetsHost points the echarts script at a CDN or self-hosted bucket.
	ChartAssetsHost string `validate:"omitempty,url"`
}

// Production reports whether the production environment is selected.
func (c Config) Production() bool {
	return c.Environment == "production"
}

// Load reads envFile when it exists, then the process environment. A missing
// env file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	cfg := Config{
		Addr:        getEnv("CHECKLIST_ADDR", ":8080"),
		Engine:      strings.ToLower(getEnv("CHECKLIST_ENGINE", EngineFiber)),
		BasePath:    getEnv("CHECKLIST_BASE_PATH", "/"),
		CatalogPath: getEnv("CHECKLIST_CATALOG_PATH", ""),
		LogFile:     getEnv("CHECKLIST_LOG_FILE", ""),
		Environment: strings.ToLower(getEnv("CHECKLIST_ENV", "development")),

		ChartAssetsHost: chartAssetsHost(getEnv("CHECKLIST_ECHARTS_CDN", "")),
	}
	var err error
	if cfg.SessionTTL, err = getEnvAsDuration("CHECKLIST_SESSION_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SessionCleanup, err = getEnvAsDuration("CHECKLIST_SESSION_CLEANUP", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.OpenBrowser, err = getEnvAsBool("CHECKLIST_OPEN_BROWSER", false); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings with struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func chartAssetsHost(value string) string {
	if value == "" || strings.HasSuffix(value, "/") {
		return value
	}
	return value + "/"
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}
