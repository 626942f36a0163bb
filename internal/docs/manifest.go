package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest is the navigation tree plus derived data, written to disk for
// consumers that render the site.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	BasePath    string    `json:"base_path" yaml:"base_path"`
	Navigation  []NavItem `json:"navigation" yaml:"navigation"`
	Pages       []string  `json:"pages" yaml:"pages"`
	Stats       Stats     `json:"stats" yaml:"stats"`
}

// Stats counts the kinds of nodes in a tree.
type Stats struct {
	PageCount     int `json:"page_count" yaml:"page_count"`
	CategoryCount int `json:"category_count" yaml:"category_count"`
	GroupCount    int `json:"group_count" yaml:"group_count"`
	ProjectCount  int `json:"project_count" yaml:"project_count"`
	MaxDepth      int `json:"max_depth" yaml:"max_depth"`
}

// GenerateManifest creates a Manifest from a built tree.
func GenerateManifest(nav *Navigation) *Manifest {
	return &Manifest{
		GeneratedAt: time.Now().UTC(),
		BasePath:    nav.BasePath,
		Navigation:  nav.Items,
		Pages:       nav.Pages(),
		Stats:       collectStats(nav),
	}
}

// collectStats walks the tree once.
func collectStats(nav *Navigation) Stats {
	var st Stats
	var walk func(items []NavItem, depth int)
	walk = func(items []NavItem, depth int) {
		if len(items) > 0 && depth > st.MaxDepth {
			st.MaxDepth = depth
		}
		for _, item := range items {
			switch item.Kind {
			case KindPage:
				st.PageCount++
			case KindCategory:
				st.CategoryCount++
			case KindGroup:
				st.GroupCount++
			case KindProject:
				st.ProjectCount++
			}
			walk(item.Items, depth+1)
		}
	}
	walk(nav.Items, 1)
	return st
}

// WriteManifest writes m to path as JSON, or as YAML when path ends in
// .yaml or .yml.
func WriteManifest(path string, m *Manifest) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
	default:
		data, err = json.MarshalIndent(m, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
