package docs

import (
	"io/fs"
	"path"
	"strings"
	"testing/fstest"
)

// =============================================================================
// Test Content Infrastructure
// =============================================================================
//
// Content trees are built in memory with fstest.MapFS. Paths ending in "/"
// create empty directories; every other path becomes a small Markdown file.
// =============================================================================

// contentFS builds an in-memory content root from the given paths.
func contentFS(paths ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			fsys[strings.TrimSuffix(p, "/")] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
			continue
		}
		fsys[p] = &fstest.MapFile{Data: []byte("# " + path.Base(p) + "\n")}
	}
	return fsys
}

// withMetadata adds a _metadata_.json descriptor to dir.
func withMetadata(fsys fstest.MapFS, dir, body string) fstest.MapFS {
	fsys[path.Join(dir, MetadataFileName)] = &fstest.MapFile{Data: []byte(body)}
	return fsys
}

// siteFS is a representative content root used across tests.
func siteFS() fstest.MapFS {
	fsys := contentFS(
		"getting-started/index.mdx",
		"faq.mdx",
		"guides/install.md",
		"guides/configure.md",
		"reference/index.md",
		"reference/api.md",
		"mods/examplemod/index.mdx",
		"mods/examplemod/setup.md",
		"mods/examplemod/advanced/usage.md",
		"plugins/coolplugin/intro.md",
		"resource-packs/emptypack/",
		"notes.txt",
	)
	withMetadata(fsys, "guides", `{"name": "User Guides", "order": 2}`)
	withMetadata(fsys, "plugins/coolplugin", `{"name": "Cool Plugin", "order": 1, "icon": "plug"}`)
	withMetadata(fsys, "projects", `{"icon": "box"}`)
	return fsys
}

// failingFS fails every open of dir with a permission error.
type failingFS struct {
	fs.FS
	dir string
}

func (f failingFS) Open(name string) (fs.File, error) {
	if name == f.dir {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.Open(name)
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func labels(items []NavItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func hrefs(items []NavItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Href)
	}
	return out
}

func newTestScanner(fsys fs.FS) *Scanner {
	return NewScanner(fsys, DefaultBasePath, nil)
}
