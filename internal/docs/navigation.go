package docs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
)

// Defaults for the projects taxonomy.
const (
	DefaultProjectsDir   = "projects"
	DefaultProjectsLabel = "Projects"
)

// DefaultProjectTypes are the directories whose children are projects.
var DefaultProjectTypes = []string{"modpacks", "mods", "plugins", "resource-packs"}

// DefaultPinnedLabels are top-level labels that are always kept, even when
// they live under a project type directory.
var DefaultPinnedLabels = []string{"Getting Started", "FAQ"}

// Config controls how a navigation tree is assembled.
// Zero values fall back to the package defaults.
type Config struct {
	BasePath      string
	ProjectTypes  []string
	ProjectsDir   string
	ProjectsLabel string
	PinnedLabels  []string
	Logger        *slog.Logger
}

// withDefaults returns a copy of c with unset fields filled in.
// Project type entries must name a single directory; surrounding slashes are
// trimmed and anything else is dropped with a warning.
func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.BasePath == "" {
		c.BasePath = DefaultBasePath
	}
	if c.ProjectTypes == nil {
		c.ProjectTypes = DefaultProjectTypes
	} else {
		c.ProjectTypes = cleanProjectTypes(c.ProjectTypes, c.Logger)
	}
	if dir := strings.Trim(c.ProjectsDir, "/"); dir == "" || !fs.ValidPath(dir) || dir == "." {
		if c.ProjectsDir != "" {
			c.Logger.Warn("ignoring invalid projects directory", "projects_dir", c.ProjectsDir)
		}
		c.ProjectsDir = DefaultProjectsDir
	} else {
		c.ProjectsDir = dir
	}
	if c.ProjectsLabel == "" {
		c.ProjectsLabel = DefaultProjectsLabel
	}
	if c.PinnedLabels == nil {
		c.PinnedLabels = DefaultPinnedLabels
	}
	return c
}

func cleanProjectTypes(types []string, logger *slog.Logger) []string {
	cleaned := make([]string, 0, len(types))
	for _, t := range types {
		name := strings.Trim(t, "/")
		if !IsDirName(name) {
			logger.Warn("ignoring invalid project type", "project_type", t)
			continue
		}
		cleaned = append(cleaned, name)
	}
	return cleaned
}

// IsDirName reports whether name is a single path element usable as a
// directory name.
func IsDirName(name string) bool {
	return name != "" && name != "." && fs.ValidPath(name) && !strings.Contains(name, "/")
}

// Builder assembles the navigation tree of a content root.
// Each call to Build rescans the file system; a Builder holds no state
// between calls and may be used from several goroutines.
type Builder struct {
	fsys fs.FS
	cfg  Config
}

// NewBuilder creates a builder over the content root fsys.
func NewBuilder(fsys fs.FS, cfg Config) *Builder {
	return &Builder{fsys: fsys, cfg: cfg.withDefaults()}
}

// Generate builds the navigation tree of fsys in one call.
func Generate(fsys fs.FS, cfg Config) (*Navigation, error) {
	return NewBuilder(fsys, cfg).Build(context.Background())
}

// GetDocsPages builds a fresh tree and returns its hrefs in pre-order.
func GetDocsPages(fsys fs.FS, cfg Config) ([]string, error) {
	nav, err := Generate(fsys, cfg)
	if err != nil {
		return nil, err
	}
	return nav.Pages(), nil
}

// Build scans the content root and returns the assembled tree.
//
// Ordinary sections come from a generic directory scan. Projects are then
// rescanned with ScanProject, which flattens each project's pages, and are
// grouped under a synthesized Projects node that replaces whatever the
// generic scan produced for them.
func (b *Builder) Build(ctx context.Context) (*Navigation, error) {
	s := NewScanner(b.fsys, b.cfg.BasePath, b.cfg.Logger)
	log := b.cfg.Logger

	allItems, err := s.ScanDirectory(".")
	if err != nil {
		return nil, fmt.Errorf("failed to scan content root: %w", err)
	}

	projectSections, err := b.scanProjects(ctx, s)
	if err != nil {
		return nil, err
	}

	projectsMeta := s.readMetadata(b.cfg.ProjectsDir)
	projectsLabel := projectsMeta.label(b.cfg.ProjectsLabel)

	topLevel := make([]NavItem, 0, len(allItems)+1)
	for _, item := range allItems {
		switch {
		case b.isPinned(item.Label):
			topLevel = append(topLevel, item)
		case item.Label == b.cfg.ProjectsLabel || item.Label == projectsLabel:
			log.Debug("dropping generic projects section", "href", item.Href)
		case b.underProjectType(s, item.Href):
			log.Debug("dropping project content from generic scan", "href", item.Href)
		default:
			topLevel = append(topLevel, item)
		}
	}

	sortItems(s.collator, projectSections)

	if len(projectSections) > 0 {
		topLevel = append(topLevel, NavItem{
			Label:             projectsLabel,
			Href:              s.href(b.cfg.ProjectsDir),
			Items:             projectSections,
			Order:             projectsMeta.Order,
			Icon:              projectsMeta.icon(),
			ExpandedByDefault: projectsMeta.expanded(true),
			Kind:              KindProjects,
		})
	}

	sortItems(s.collator, topLevel)

	log.Debug("navigation built",
		"top_level", len(topLevel),
		"projects", len(projectSections))

	return &Navigation{BasePath: s.basePath, Items: topLevel}, nil
}

// scanProjects runs ScanProject over every project of every configured
// project type directory that exists.
func (b *Builder) scanProjects(ctx context.Context, s *Scanner) ([]NavItem, error) {
	var sections []NavItem
	for _, typeDir := range b.cfg.ProjectTypes {
		entries, err := fs.ReadDir(b.fsys, typeDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read project type %s: %w", typeDir, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() || isHidden(entry.Name()) {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			section, err := s.ScanProject(path.Join(typeDir, entry.Name()))
			if err != nil {
				return nil, err
			}
			sections = append(sections, section)
		}
	}
	return sections, nil
}

func (b *Builder) isPinned(label string) bool {
	for _, pinned := range b.cfg.PinnedLabels {
		if label == pinned {
			return true
		}
	}
	return false
}

// underProjectType reports whether any path segment of href below the base
// path names a project type directory.
func (b *Builder) underProjectType(s *Scanner, href string) bool {
	rel := strings.TrimPrefix(href, s.basePath)
	for _, seg := range strings.Split(strings.Trim(rel, "/"), "/") {
		for _, typeDir := range b.cfg.ProjectTypes {
			if seg == typeDir {
				return true
			}
		}
	}
	return false
}
