package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a docnav.yaml with the given content into a temp dir
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

// TestLoadConfig_Defaults tests that an empty config file yields the defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "{}\n")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	root := filepath.Dir(cfgPath)
	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(root, "src", "pages", "docs"), cfg.ContentDir)
	assert.Equal(t, "/docs", cfg.BasePath)
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())

	nav := cfg.GetNavConfig()
	assert.Equal(t, []string{"modpacks", "mods", "plugins", "resource-packs"}, nav.ProjectTypes)
	assert.Equal(t, "projects", nav.ProjectsDir)
	assert.Equal(t, "Projects", nav.ProjectsLabel)
	assert.Equal(t, []string{"Getting Started", "FAQ"}, nav.PinnedLabels)

	srv := cfg.GetServerConfig()
	assert.Equal(t, DefaultHost, srv.Host)
	assert.Equal(t, DefaultPort, srv.Port)
	assert.False(t, srv.Watch)
}

// TestLoadConfig_File tests that every section of the config file is decoded.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `content_dir: content
base_path: /handbook
output: json
log_level: debug
nav:
  project_types: [themes, plugins]
  projects_dir: catalog
  projects_label: Catalog
  pinned_labels: []
server:
  port: 9000
  watch: true
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(cfgPath), "content"), cfg.ContentDir)
	assert.Equal(t, "/handbook", cfg.BasePath)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	nav := cfg.GetNavConfig()
	assert.Equal(t, []string{"themes", "plugins"}, nav.ProjectTypes)
	assert.Equal(t, "catalog", nav.ProjectsDir)
	assert.Equal(t, "Catalog", nav.ProjectsLabel)
	assert.Empty(t, nav.PinnedLabels)

	srv := cfg.GetServerConfig()
	assert.Equal(t, DefaultHost, srv.Host)
	assert.Equal(t, 9000, srv.Port)
	assert.True(t, srv.Watch)

	docsCfg := cfg.DocsConfig(nil)
	assert.Equal(t, "/handbook", docsCfg.BasePath)
	assert.Equal(t, []string{"themes", "plugins"}, docsCfg.ProjectTypes)
}

// TestLoadConfig_AbsoluteContentDir tests that absolute paths are kept as-is.
func TestLoadConfig_AbsoluteContentDir(t *testing.T) {
	ResetConfig()
	abs := t.TempDir()
	cfgPath := writeConfig(t, "content_dir: "+abs+"\n")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.ContentDir)
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, `base_path: /from-file
nav:
  projects_label: FromFile
`)

	t.Setenv("DOCNAV_BASE_PATH", "/from-env")
	t.Setenv("DOCNAV_NAV_PROJECTS_LABEL", "FromEnv")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "/from-env", cfg.BasePath, "env var should override config file")
	assert.Equal(t, "FromEnv", cfg.GetNavConfig().ProjectsLabel)
}

// TestLoadConfig_EnvLists tests that comma-separated env vars decode into lists.
func TestLoadConfig_EnvLists(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "{}\n")

	t.Setenv("DOCNAV_NAV_PROJECT_TYPES", "mods,plugins")
	t.Setenv("DOCNAV_NAV_PINNED_LABELS", "Getting Started")
	t.Setenv("DOCNAV_SERVER_PORT", "9100")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	nav := cfg.GetNavConfig()
	assert.Equal(t, []string{"mods", "plugins"}, nav.ProjectTypes)
	assert.Equal(t, []string{"Getting Started"}, nav.PinnedLabels)
	assert.Equal(t, 9100, cfg.GetServerConfig().Port)
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "base_path: /from-file\n")
	t.Setenv("DOCNAV_BASE_PATH", "/from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-path", "", "base path")
	flags.Int("port", 0, "port")
	flags.Bool("watch", false, "watch")
	require.NoError(t, flags.Set("base-path", "/from-flag"))
	require.NoError(t, flags.Set("port", "9200"))
	require.NoError(t, flags.Set("watch", "true"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "/from-flag", cfg.BasePath, "flag value should override config file and env var")
	assert.Equal(t, 9200, cfg.GetServerConfig().Port)
	assert.True(t, cfg.GetServerConfig().Watch)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "base_path: /from-file\n")
	t.Setenv("DOCNAV_BASE_PATH", "/from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-path", "", "base path")

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "/from-env", cfg.BasePath, "env var should be used when flag is not set")
}

// TestLoadConfig_ContentDirFlagIsRelativeToCWD tests the --content-dir anchor.
func TestLoadConfig_ContentDirFlagIsRelativeToCWD(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "content_dir: ignored\n")
	cwd := t.TempDir()
	t.Chdir(cwd)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("content-dir", "", "content directory")
	require.NoError(t, flags.Set("content-dir", "site/docs"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "site", "docs"), cfg.ContentDir)
}

// TestLoadConfig_DiscoversConfigUpward tests project root inference from CWD.
func TestLoadConfig_DiscoversConfigUpward(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfig(t, "content_dir: pages\n")
	root := filepath.Dir(cfgPath)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	resolvedRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	resolvedProject, err := filepath.EvalSymlinks(cfg.ProjectRoot)
	require.NoError(t, err)
	assert.Equal(t, resolvedRoot, resolvedProject)
	assert.Equal(t, filepath.Join(cfg.ProjectRoot, "pages"), cfg.ContentDir)
	assert.NotEmpty(t, GetConfigFileUsed())
}

// TestLoadConfig_Errors tests invalid configurations.
func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "invalid output", content: "output: xml\n", errSubstr: "invalid output format"},
		{name: "invalid log level", content: "log_level: loud\n", errSubstr: "invalid log level"},
		{name: "invalid port", content: "server:\n  port: 70000\n", errSubstr: "invalid server port"},
		{name: "malformed yaml", content: "nav: [\n", errSubstr: "error reading config file"},
		{name: "wrong type", content: "nav:\n  projects_dir: [a, b]\n", errSubstr: "unable to decode config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			cfgPath := writeConfig(t, tt.content)

			_, err := LoadConfig(cfgPath, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

// TestLoadConfig_MissingExplicitFile tests that a missing --config file is an error.
func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestEnvKey tests env var to config key mapping.
func TestEnvKey(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"DOCNAV_CONTENT_DIR", "content_dir"},
		{"DOCNAV_BASE_PATH", "base_path"},
		{"DOCNAV_NAV_PROJECT_TYPES", "nav.project_types"},
		{"DOCNAV_SERVER_PORT", "server.port"},
		{"DOCNAV_NAVIGATION", "navigation"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.expected, envKey(tt.env))
		})
	}
}

// TestConfig_Validate tests the Validate method of Config.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		errSubstr string
	}{
		{name: "valid", cfg: Config{ContentDir: "docs", OutputFormat: "yaml", LogLevel: "info"}},
		{name: "empty output allowed", cfg: Config{ContentDir: "docs"}},
		{name: "missing content dir", cfg: Config{}, errSubstr: "content_dir is required"},
		{name: "bad output", cfg: Config{ContentDir: "docs", OutputFormat: "html"}, errSubstr: "invalid output format"},
		{name: "trailing slash project type", cfg: Config{ContentDir: "docs", Nav: &NavConfig{ProjectTypes: []string{"mods/"}}}},
		{name: "nested project type", cfg: Config{ContentDir: "docs", Nav: &NavConfig{ProjectTypes: []string{"mods", "a/b"}}}, errSubstr: `invalid project type "a/b"`},
		{name: "parent project type", cfg: Config{ContentDir: "docs", Nav: &NavConfig{ProjectTypes: []string{".."}}}, errSubstr: "invalid project type"},
		{name: "negative port", cfg: Config{ContentDir: "docs", Server: &ServerConfig{Port: -1}}, errSubstr: "invalid server port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

// TestConfig_ValidateDirectories tests content directory checks.
func TestConfig_ValidateDirectories(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, (&Config{ContentDir: dir}).ValidateDirectories())

	err := (&Config{ContentDir: filepath.Join(dir, "missing")}).ValidateDirectories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content directory does not exist")

	file := filepath.Join(dir, "file.md")
	require.NoError(t, os.WriteFile(file, []byte("#"), 0600))
	err = (&Config{ContentDir: file}).ValidateDirectories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

// TestConfig_Level tests log level resolution.
func TestConfig_Level(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&Config{}).Level())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).Level())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "INFO"}).Level())
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "error", Verbose: true}).Level())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "bogus"}).Level())
}

// TestGetLogger tests the logger fallback.
func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

// TestGetServerConfig_DoesNotMutate tests that defaults are applied to a copy.
func TestGetServerConfig_DoesNotMutate(t *testing.T) {
	cfg := &Config{Server: &ServerConfig{Watch: true}}

	srv := cfg.GetServerConfig()

	assert.Equal(t, DefaultPort, srv.Port)
	assert.True(t, srv.Watch)
	assert.Zero(t, cfg.Server.Port)
}
