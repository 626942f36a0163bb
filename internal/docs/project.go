package docs

import (
	"fmt"
	"io/fs"
	"path"
)

// ScanProject builds the node for a single project directory such as
// "mods/examplemod".
//
// Pages directly inside the project become leaves. Every sub-directory is
// scanned with ScanDirectory and its items are appended to the same flat
// list, so the project's own nesting does not show up in the tree. The
// returned node always has a non-nil Items slice.
func (s *Scanner) ScanProject(dir string) (NavItem, error) {
	dir = cleanDir(dir)
	meta := s.readMetadata(dir)
	projectHref := s.href(dir)

	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return NavItem{}, fmt.Errorf("failed to read project %s: %w", dir, err)
	}

	pages := []NavItem{}
	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}

		if entry.IsDir() {
			sub, err := s.ScanDirectory(path.Join(dir, name))
			if err != nil {
				return NavItem{}, err
			}
			pages = append(pages, sub...)
			continue
		}

		stem, ok := pageStem(name)
		if !ok || isIndexPage(name) {
			continue
		}
		pages = append(pages, NavItem{
			Label: FormatLabel(stem),
			Href:  projectHref + "/" + stem,
			Kind:  KindPage,
		})
	}

	sortItems(s.collator, pages)

	return NavItem{
		Label:             meta.label(FormatLabel(path.Base(dir))),
		Href:              projectHref,
		Items:             pages,
		Order:             meta.Order,
		Icon:              meta.icon(),
		ExpandedByDefault: meta.expanded(false),
		Kind:              KindProject,
	}, nil
}
