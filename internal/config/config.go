// Package config loads the plotkit.json configuration used by the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// FileName is the name of the configuration file.
	FileName = "plotkit.json"

	// DefaultAddr is the default document server listen address.
	DefaultAddr = ":8700"

	// DefaultStoreDir is the default directory for the disk store.
	DefaultStoreDir = "documents"
)

// Store backend names accepted in the config file.
const (
	StoreMemory = "memory"
	StoreDisk   = "disk"
	StoreS3     = "s3"
)

// Config represents the complete plotkit.json configuration.
type Config struct {
	// Addr is the document server listen address.
	Addr string `json:"addr,omitempty"`

	// Store selects the persistence backend: "memory", "disk", or "s3".
	Store string `json:"store,omitempty"`

	// StoreDir is the disk store directory (disk backend only).
	StoreDir string `json:"storeDir,omitempty"`

	// S3 configures the s3 backend.
	S3 S3Config `json:"s3,omitempty"`

	// LogLevel is the slog level: "debug", "info", "warn", or "error".
	LogLevel string `json:"logLevel,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// S3Config contains S3 store settings.
type S3Config struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the object key prefix (e.g. "documents/").
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Addr:     DefaultAddr,
		Store:    StoreMemory,
		StoreDir: DefaultStoreDir,
		LogLevel: "info",
	}
}

// Load reads the configuration from the given path, filling unset fields
// with defaults. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := New()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Store == "" {
		cfg.Store = StoreMemory
	}
	if cfg.StoreDir == "" {
		cfg.StoreDir = DefaultStoreDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string { return c.configPath }

// Warnings returns non-fatal problems with the configuration.
func (c *Config) Warnings() []string {
	var warnings []string
	switch c.Store {
	case StoreMemory, StoreDisk, StoreS3:
	default:
		warnings = append(warnings,
			fmt.Sprintf("unknown store %q, falling back to %q", c.Store, StoreMemory))
	}
	if c.Store == StoreS3 && c.S3.Bucket == "" {
		warnings = append(warnings, "s3 store selected but s3.bucket is empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings,
			fmt.Sprintf("unknown logLevel %q, falling back to \"info\"", c.LogLevel))
	}
	return warnings
}
