package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/leapstack-labs/docnav/internal/docs"
)

// validOutputs are the accepted values of the output setting.
var validOutputs = []string{"auto", "text", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}

	if c.OutputFormat != "" && !contains(validOutputs, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of %s)",
			c.OutputFormat, strings.Join(validOutputs, ", "))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Nav != nil {
		for _, t := range c.Nav.ProjectTypes {
			if !docs.IsDirName(strings.Trim(t, "/")) {
				return fmt.Errorf("invalid project type %q (expected a directory name)", t)
			}
		}
	}

	if c.Server != nil && (c.Server.Port < 0 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	// Only validate directory existence if we're running a command that needs it
	// This allows help commands to work without a valid directory
	return nil
}

// ValidateDirectories checks if required directories exist.
func (c *Config) ValidateDirectories() error {
	info, err := os.Stat(c.ContentDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("content directory does not exist: %s\nHint: Create the directory or use --content-dir to specify a different path", c.ContentDir)
	}
	if err != nil {
		return fmt.Errorf("failed to access content directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content directory is not a directory: %s", c.ContentDir)
	}
	return nil
}

// Level returns the effective log level. Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLogLevel parses debug, info, warn or error. Empty means warn.
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
