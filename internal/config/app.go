// Package config loads the tool configuration and the card configurations
// it resolves.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats understood by the output encoder.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// AppConfig holds the settings of the prism command.
type AppConfig struct {
	DashboardPath string
	StatesPath    string
	Format        string
	Pretty        bool
	LogLevel      string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		DashboardPath: "dashboard.yaml",
		StatesPath:    "states.json",
		Format:        FormatJSON,
		Pretty:        true,
		LogLevel:      "info",
	}
}

// LoadConfig builds the configuration from defaults, an optional .env file
// and the process environment. baseDir anchors relative paths; an empty
// baseDir leaves them relative to the working directory.
func LoadConfig(envFile, baseDir string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	cfg.applyEnvironmentOverrides()
	cfg.resolvePaths(baseDir)
	return cfg, nil
}

// applyEnvironmentOverrides allows environment variables to override config values
func (c *AppConfig) applyEnvironmentOverrides() {
	if v := os.Getenv("PRISM_DASHBOARD"); v != "" {
		c.DashboardPath = v
	}
	if v := os.Getenv("PRISM_STATES"); v != "" {
		c.StatesPath = v
	}
	if v := os.Getenv("PRISM_FORMAT"); v != "" {
		c.Format = strings.ToLower(v)
	}
	if v := os.Getenv("PRISM_PRETTY"); v != "" {
		c.Pretty = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("PRISM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Check rejects settings the command cannot act on.
func (c *AppConfig) Check() error {
	switch c.Format {
	case FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("unsupported output format %q", c.Format)
	}
	if c.DashboardPath == "" {
		return errors.New("dashboard path is empty")
	}
	if c.StatesPath == "" {
		return errors.New("states path is empty")
	}
	return nil
}

// resolvePaths converts relative paths to absolute based on baseDir
func (c *AppConfig) resolvePaths(baseDir string) {
	if baseDir == "" {
		return
	}
	if !filepath.IsAbs(c.DashboardPath) {
		c.DashboardPath = filepath.Join(baseDir, c.DashboardPath)
	}
	if !filepath.IsAbs(c.StatesPath) {
		c.StatesPath = filepath.Join(baseDir, c.StatesPath)
	}
}
