package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/leapstack-labs/docnav/internal/cli/config"
	"github.com/leapstack-labs/docnav/internal/cli/output"
	"github.com/leapstack-labs/docnav/internal/docs"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// WithDependencies stores the loaded config and the renderer in ctx, where
// NewCommandContext picks them up.
func WithDependencies(ctx context.Context, cfg *config.Config, r *output.Renderer) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, rendererKey{}, r)
}

// NewCommandContext collects the loaded config, the logger and a renderer
// for cmd. Values missing from the command context are rebuilt from the
// current config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		cfg = getConfig()
	}
	r, ok := ctx.Value(rendererKey{}).(*output.Renderer)
	if !ok {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: r,
	}
}

// Builder returns a navigation builder over the configured content directory.
func (c *CommandContext) Builder() (*docs.Builder, error) {
	if err := c.Cfg.ValidateDirectories(); err != nil {
		return nil, err
	}
	return docs.NewBuilder(os.DirFS(c.Cfg.ContentDir), c.Cfg.DocsConfig(c.Logger)), nil
}

// BuildNavigation scans the content directory once.
func (c *CommandContext) BuildNavigation(ctx context.Context) (*docs.Navigation, error) {
	b, err := c.Builder()
	if err != nil {
		return nil, err
	}
	nav, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("navigation built", "items", len(nav.Items), "content_dir", c.Cfg.ContentDir)
	return nav, nil
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		ContentDir:   getEnvOrDefault(config.EnvPrefix+"CONTENT_DIR", config.DefaultContentDir),
		BasePath:     getEnvOrDefault(config.EnvPrefix+"BASE_PATH", config.DefaultBasePath),
		LogLevel:     getEnvOrDefault(config.EnvPrefix+"LOG_LEVEL", config.DefaultLogLevel),
		OutputFormat: getEnvOrDefault(config.EnvPrefix+"OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv(config.EnvPrefix+"VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
