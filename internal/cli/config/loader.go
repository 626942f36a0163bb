package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	intconfig "github.com/leapstack-labs/docnav/internal/config"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "DOCNAV_"

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// envSections are the nested config sections reachable from env vars.
// DOCNAV_NAV_PROJECT_TYPES maps to nav.project_types.
var envSections = []string{"nav", "server"}

// flagKeys maps flags whose name differs from their config key.
var flagKeys = map[string]string{
	"host":  "server.host",
	"port":  "server.port",
	"watch": "server.watch",
}

// envKey transforms DOCNAV_NAV_PINNED_LABELS into nav.pinned_labels.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range envSections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}

// inferProjectRoot determines the project root.
// Priority:
//  1. Directory of an explicit --config file
//  2. Search upward from CWD for docnav.yaml
//  3. Current working directory
func inferProjectRoot(cfgFile string) string {
	if cfgFile != "" {
		if absPath, err := filepath.Abs(cfgFile); err == nil {
			return filepath.Dir(absPath)
		}
	}

	cwd, _ := os.Getwd()
	if cwd == "" {
		cwd = "."
	}
	if root := intconfig.FindProjectRoot(cwd); root != "" {
		return root
	}
	return cwd
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	projectRoot := inferProjectRoot(cfgFile)

	// A --content-dir flag is relative to CWD, not to the project root.
	var flagContentDir string
	if flags != nil && flags.Changed("content-dir") {
		if v, _ := flags.GetString("content-dir"); v != "" {
			flagContentDir, _ = filepath.Abs(v)
		}
	}

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"content_dir": intconfig.DefaultContentDir,
		"base_path":   intconfig.DefaultBasePath,
		"verbose":     false,
		"log_level":   DefaultLogLevel,
		"output":      DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		cfgFile = intconfig.FindConfigFile(projectRoot)
	}
	configFileUsed = cfgFile
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (DOCNAV_ prefix)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			if key, ok := flagKeys[f.Name]; ok {
				return key, posflag.FlagVal(flags, f)
			}
			// Transform kebab-case to snake_case for config keys
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct. Env vars carry lists as comma-separated strings.
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Set project root and resolve relative paths
	cfg.ProjectRoot = projectRoot
	if flagContentDir != "" {
		cfg.ContentDir = flagContentDir
	} else {
		cfg.ContentDir = resolvePathRelativeTo(cfg.ContentDir, projectRoot)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
