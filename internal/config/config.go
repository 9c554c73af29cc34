// ABOUTME: Oura CLI configuration loaded from the environment.
// ABOUTME: Reads an optional .env file, then OURA_TOKEN, OURA_API_URL, and OURA_TIMEOUT.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/harperreed/oura/internal/oura"
)

// Environment variable names.
const (
	EnvToken   = "OURA_TOKEN"
	EnvBaseURL = "OURA_API_URL"
	EnvTimeout = "OURA_TIMEOUT"
)

// TokenURL is where personal access tokens are issued.
const TokenURL = "https://cloud.ouraring.com/personal-access-tokens"

// ErrMissingCredential is returned when no access token is configured.
var ErrMissingCredential = errors.New(EnvToken + " is not set; create a personal access token at " + TokenURL)

// Config holds API access settings.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from the process environment. A .env file in
// the working directory is applied first if present; variables already set
// in the environment win over the file.
func Load() (*Config, error) {
	return LoadFiles()
}

// LoadFiles is Load with explicit .env paths. With no paths it reads ./.env.
func LoadFiles(paths ...string) (*Config, error) {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Token:   strings.TrimSpace(os.Getenv(EnvToken)),
		BaseURL: strings.TrimSpace(os.Getenv(EnvBaseURL)),
		Timeout: oura.DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = oura.DefaultBaseURL
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be positive", EnvTimeout, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Validate reports whether the configuration can be used to call the API.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingCredential
	}
	return nil
}

// ClientOptions converts the configuration into client options.
func (c *Config) ClientOptions() oura.Options {
	return oura.Options{
		BaseURL: c.BaseURL,
		Token:   c.Token,
		Timeout: c.Timeout,
	}
}
