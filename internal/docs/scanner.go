package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/collate"
)

// DefaultBasePath is the URL prefix prepended to every generated href.
const DefaultBasePath = "/docs"

var indexFiles = []string{"index.mdx", "index.md"}

// Scanner walks a content tree and turns it into navigation items.
// Paths handed to a Scanner are slash-separated and relative to the root of
// its file system; "." is the root itself.
//
// A Scanner is meant for a single build and is not safe for concurrent use.
type Scanner struct {
	fsys     fs.FS
	basePath string
	logger   *slog.Logger
	collator *collate.Collator
	metadata map[string]CategoryMetadata
}

// NewScanner creates a scanner over fsys. Hrefs are prefixed with basePath.
func NewScanner(fsys fs.FS, basePath string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		fsys:     fsys,
		basePath: normalizeBasePath(basePath),
		logger:   logger,
		collator: newCollator(),
		metadata: make(map[string]CategoryMetadata),
	}
}

// ScanDirectory returns the sorted navigation items for the immediate
// content of dir.
//
// Directories with an index page become a single node pointing at the
// directory. Directories without one are recursed into and become a group
// whose href is that of its first child, or are dropped when empty.
// A dir that does not exist yields no items and no error.
func (s *Scanner) ScanDirectory(dir string) ([]NavItem, error) {
	dir = cleanDir(dir)

	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []NavItem{}, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	items := make([]NavItem, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}
		rel := path.Join(dir, name)

		if entry.IsDir() {
			item, ok, err := s.scanSubdirectory(rel)
			if err != nil {
				return nil, err
			}
			if ok {
				items = append(items, item)
			}
			continue
		}

		stem, ok := pageStem(name)
		if !ok || isIndexPage(name) {
			continue
		}
		items = append(items, NavItem{
			Label: FormatLabel(stem),
			Href:  s.href(path.Join(dir, stem)),
			Kind:  KindPage,
		})
	}

	sortItems(s.collator, items)
	return items, nil
}

// scanSubdirectory classifies a directory as a category with its own page
// or as a pass-through group. ok is false when the group would be empty.
func (s *Scanner) scanSubdirectory(dir string) (item NavItem, ok bool, err error) {
	meta := s.readMetadata(dir)
	item = NavItem{
		Label:             meta.label(FormatLabel(path.Base(dir))),
		Href:              s.href(dir),
		Order:             meta.Order,
		Icon:              meta.icon(),
		ExpandedByDefault: meta.expanded(false),
		Kind:              KindCategory,
	}

	if s.hasIndex(dir) {
		return item, true, nil
	}

	children, err := s.ScanDirectory(dir)
	if err != nil {
		return NavItem{}, false, err
	}
	if len(children) == 0 {
		return NavItem{}, false, nil
	}

	item.Href = children[0].Href
	item.Items = children
	item.Kind = KindGroup
	return item, true, nil
}

func (s *Scanner) hasIndex(dir string) bool {
	for _, name := range indexFiles {
		if _, err := fs.Stat(s.fsys, path.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// href maps a content-relative path to a site path.
func (s *Scanner) href(rel string) string {
	rel = cleanDir(rel)
	if rel == "." {
		return s.basePath
	}
	return s.basePath + "/" + rel
}

// isHidden reports entries that never become content: dotfiles and
// underscore-prefixed meta entries such as the metadata descriptor.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// pageStem strips a .md or .mdx extension. ok is false for other files.
func pageStem(name string) (stem string, ok bool) {
	for _, ext := range []string{".mdx", ".md"} {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext), true
		}
	}
	return "", false
}

func isIndexPage(name string) bool {
	for _, idx := range indexFiles {
		if name == idx {
			return true
		}
	}
	return false
}

func normalizeBasePath(basePath string) string {
	basePath = strings.TrimRight(basePath, "/")
	if basePath != "" && !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return basePath
}

func cleanDir(dir string) string {
	dir = strings.Trim(path.Clean("/"+strings.ReplaceAll(dir, "\\", "/")), "/")
	if dir == "" {
		return "."
	}
	return dir
}
