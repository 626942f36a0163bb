// Package config provides configuration management for the docnav CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields and functionality. The shared NavConfig is
// re-exported here via a type alias for convenience.
package config

import (
	"log/slog"

	sharedcfg "github.com/leapstack-labs/docnav/internal/config"
	"github.com/leapstack-labs/docnav/internal/docs"
)

// NavConfig is an alias for the shared navigation configuration.
// This allows CLI code to use config.NavConfig without importing internal/config.
type NavConfig = sharedcfg.NavConfig

// ServerConfig holds configuration for the HTTP API server.
type ServerConfig struct {
	Host  string `koanf:"host"`
	Port  int    `koanf:"port"`
	Watch bool   `koanf:"watch"`
}

// DefaultServerConfig returns a ServerConfig with default values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:  DefaultHost,
		Port:  DefaultPort,
		Watch: false,
	}
}

// GetServerConfig returns the server config with defaults applied for any unset values.
func (c *Config) GetServerConfig() *ServerConfig {
	if c.Server == nil {
		return DefaultServerConfig()
	}
	srv := *c.Server
	if srv.Host == "" {
		srv.Host = DefaultHost
	}
	if srv.Port == 0 {
		srv.Port = DefaultPort
	}
	return &srv
}

// GetNavConfig returns the nav config with defaults applied for any unset values.
func (c *Config) GetNavConfig() *NavConfig {
	nav := &NavConfig{}
	if c.Nav != nil {
		*nav = *c.Nav
	}
	sharedcfg.ApplyDefaults(nav)
	return nav
}

// DocsConfig returns the build settings for the configured content root.
func (c *Config) DocsConfig(logger *slog.Logger) docs.Config {
	return c.GetNavConfig().DocsConfig(c.BasePath, logger)
}

// Config holds all CLI configuration options.
type Config struct {
	ContentDir   string        `koanf:"content_dir"`
	BasePath     string        `koanf:"base_path"`
	Verbose      bool          `koanf:"verbose"`
	LogLevel     string        `koanf:"log_level"`
	OutputFormat string        `koanf:"output"`
	Nav          *NavConfig    `koanf:"nav"`
	Server       *ServerConfig `koanf:"server"`

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultContentDir = sharedcfg.DefaultContentDir
	DefaultBasePath   = sharedcfg.DefaultBasePath
	DefaultLogLevel   = "warn"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultHost       = "127.0.0.1"
	DefaultPort       = 8765
)
