// Package docs builds the navigation tree of a documentation site from a
// directory of Markdown/MDX content and per-directory metadata descriptors.
//
// The tree is rebuilt from the file system on every call. Nothing is cached
// and a returned tree is never mutated, so it can be shared freely between
// readers once built.
package docs

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by lookups when no node matches a path.
var ErrNotFound = errors.New("navigation item not found")

// Kind classifies how a NavItem was produced. It is not part of the
// encoded output.
type Kind int

// Node kinds.
const (
	KindPage     Kind = iota // a content file
	KindCategory             // a directory with its own index page
	KindGroup                // a directory without an index page
	KindProject              // one project directory, pages flattened
	KindProjects             // the synthesized projects root
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindCategory:
		return "category"
	case KindGroup:
		return "group"
	case KindProject:
		return "project"
	case KindProjects:
		return "projects"
	}
	return "unknown"
}

// NavItem is a node in the navigation tree.
//
// Items is nil for leaves: pages, and categories whose directory has its own
// index page. Groups, projects and the projects root carry a non-nil slice,
// which is empty for a project without pages.
type NavItem struct {
	Label             string    `json:"label" yaml:"label"`
	Href              string    `json:"href" yaml:"href"`
	Items             []NavItem `json:"items,omitempty" yaml:"items,omitempty"`
	Order             *int      `json:"order,omitempty" yaml:"order,omitempty"`
	Icon              string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	ExpandedByDefault bool      `json:"expandedByDefault" yaml:"expandedByDefault"`
	Kind              Kind      `json:"-" yaml:"-"`
}

// navItemWire keeps an empty, non-nil Items slice visible in encoded output.
type navItemWire struct {
	Label             string     `json:"label" yaml:"label"`
	Href              string     `json:"href" yaml:"href"`
	Items             *[]NavItem `json:"items,omitempty" yaml:"items,omitempty"`
	Order             *int       `json:"order,omitempty" yaml:"order,omitempty"`
	Icon              string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	ExpandedByDefault bool       `json:"expandedByDefault" yaml:"expandedByDefault"`
}

func (n NavItem) wire() navItemWire {
	w := navItemWire{
		Label:             n.Label,
		Href:              n.Href,
		Order:             n.Order,
		Icon:              n.Icon,
		ExpandedByDefault: n.ExpandedByDefault,
	}
	if n.Items != nil {
		items := n.Items
		w.Items = &items
	}
	return w
}

// MarshalJSON encodes the item, emitting "items": [] for empty containers
// and omitting items for leaves.
func (n NavItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (n NavItem) MarshalYAML() (interface{}, error) {
	return n.wire(), nil
}

// CategoryMetadata is the optional per-directory descriptor stored in
// _metadata_.json. All fields are optional; nil means "not set".
type CategoryMetadata struct {
	Name              *string `json:"name,omitempty"`
	Icon              *string `json:"icon,omitempty"`
	Order             *int    `json:"order,omitempty"`
	ExpandedByDefault *bool   `json:"expandedByDefault,omitempty"`
}

// label returns the descriptor name, or fallback when the name is unset or empty.
func (m CategoryMetadata) label(fallback string) string {
	if m.Name != nil && *m.Name != "" {
		return *m.Name
	}
	return fallback
}

func (m CategoryMetadata) icon() string {
	if m.Icon == nil {
		return ""
	}
	return *m.Icon
}

func (m CategoryMetadata) expanded(def bool) bool {
	if m.ExpandedByDefault == nil {
		return def
	}
	return *m.ExpandedByDefault
}

// Navigation is a fully built navigation tree.
type Navigation struct {
	BasePath string    `json:"base_path" yaml:"base_path"`
	Items    []NavItem `json:"items" yaml:"items"`
}

// Pages returns every href in the tree in pre-order.
func (n *Navigation) Pages() []string {
	return Pages(n.Items)
}

// Find returns the first node whose href equals path.
func (n *Navigation) Find(path string) (*NavItem, bool) {
	return FindItem(n.Items, path)
}

// ActiveTrail returns the chain of nodes from the top level down to the
// node matching path, or nil when nothing matches.
func (n *Navigation) ActiveTrail(path string) []NavItem {
	return ActiveTrail(n.Items, path)
}
