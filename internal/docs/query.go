package docs

// Pages returns the href of every node in pre-order, parents before children.
func Pages(items []NavItem) []string {
	pages := []string{}
	var collect func([]NavItem)
	collect = func(items []NavItem) {
		for _, item := range items {
			pages = append(pages, item.Href)
			if item.Items != nil {
				collect(item.Items)
			}
		}
	}
	collect(items)
	return pages
}

// FindItem returns the first node in pre-order whose href equals path.
func FindItem(items []NavItem, path string) (*NavItem, bool) {
	for i := range items {
		if items[i].Href == path {
			return &items[i], true
		}
		if items[i].Items != nil {
			if found, ok := FindItem(items[i].Items, path); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// IsActiveOrHasActiveChild reports whether item or any descendant has the
// given href.
func IsActiveOrHasActiveChild(item NavItem, path string) bool {
	if item.Href == path {
		return true
	}
	for _, child := range item.Items {
		if IsActiveOrHasActiveChild(child, path) {
			return true
		}
	}
	return false
}

// ActiveTrail returns the nodes from the top level down to the first node
// matching path. Groups alias their first child's href, so the trail stops
// at the shallowest node carrying the href.
func ActiveTrail(items []NavItem, path string) []NavItem {
	for _, item := range items {
		if !IsActiveOrHasActiveChild(item, path) {
			continue
		}
		if item.Href == path {
			return []NavItem{item}
		}
		return append([]NavItem{item}, ActiveTrail(item.Items, path)...)
	}
	return nil
}
