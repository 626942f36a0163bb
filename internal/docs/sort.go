package docs

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns the collator used for label ordering.
// Collators are not safe for concurrent use; each scan owns its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// sortItems orders siblings: explicit order first (ascending), then by
// label, then by href.
func sortItems(c *collate.Collator, items []NavItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return compareItems(c, items[i], items[j]) < 0
	})
}

func compareItems(c *collate.Collator, a, b NavItem) int {
	switch {
	case a.Order != nil && b.Order == nil:
		return -1
	case a.Order == nil && b.Order != nil:
		return 1
	case a.Order != nil && b.Order != nil && *a.Order != *b.Order:
		if *a.Order < *b.Order {
			return -1
		}
		return 1
	}

	if cmp := c.CompareString(a.Label, b.Label); cmp != 0 {
		return cmp
	}
	switch {
	case a.Href < b.Href:
		return -1
	case a.Href > b.Href:
		return 1
	}
	return 0
}
