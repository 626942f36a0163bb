package config

import "github.com/leapstack-labs/docnav/internal/docs"

// Default configuration values.
const (
	DefaultContentDir = "src/pages/docs"
	DefaultBasePath   = docs.DefaultBasePath
)

// DefaultNavConfig returns a NavConfig with every field set to its default.
func DefaultNavConfig() *NavConfig {
	c := &NavConfig{}
	ApplyDefaults(c)
	return c
}

// ApplyDefaults applies default values to a NavConfig.
// Lists set to an explicit empty value are left empty.
func ApplyDefaults(c *NavConfig) {
	if c == nil {
		return
	}
	if c.ProjectTypes == nil {
		c.ProjectTypes = append([]string(nil), docs.DefaultProjectTypes...)
	}
	if c.ProjectsDir == "" {
		c.ProjectsDir = docs.DefaultProjectsDir
	}
	if c.ProjectsLabel == "" {
		c.ProjectsLabel = docs.DefaultProjectsLabel
	}
	if c.PinnedLabels == nil {
		c.PinnedLabels = append([]string(nil), docs.DefaultPinnedLabels...)
	}
}
