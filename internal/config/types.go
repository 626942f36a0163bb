// Package config provides shared configuration types for docnav.
// This package is decoupled from CLI concerns and can be used by the HTTP
// server and other tools that need to assemble navigation settings.
package config

import (
	"log/slog"

	"github.com/leapstack-labs/docnav/internal/docs"
)

// NavConfig holds the navigation assembly settings.
type NavConfig struct {
	// ProjectTypes lists the directories whose children are projects.
	ProjectTypes []string `koanf:"project_types"`

	// ProjectsDir is the directory the synthesized Projects node points at.
	ProjectsDir string `koanf:"projects_dir"`

	// ProjectsLabel is the fallback label of the Projects node.
	ProjectsLabel string `koanf:"projects_label"`

	// PinnedLabels are top-level labels kept even under a project type.
	PinnedLabels []string `koanf:"pinned_labels"`
}

// DocsConfig converts the settings into a docs.Config for a build.
func (n *NavConfig) DocsConfig(basePath string, logger *slog.Logger) docs.Config {
	cfg := docs.Config{
		BasePath: basePath,
		Logger:   logger,
	}
	if n == nil {
		return cfg
	}
	cfg.ProjectTypes = n.ProjectTypes
	cfg.ProjectsDir = n.ProjectsDir
	cfg.ProjectsLabel = n.ProjectsLabel
	cfg.PinnedLabels = n.PinnedLabels
	return cfg
}
