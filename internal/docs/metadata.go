package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
)

// MetadataFileName is the per-directory descriptor file.
const MetadataFileName = "_metadata_.json"

// MetadataError reports a descriptor that exists but could not be used.
type MetadataError struct {
	Dir string
	Err error
}

func (e *MetadataError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("invalid metadata: %v", e.Err)
	}
	return fmt.Sprintf("invalid metadata in %s: %v", e.Dir, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// ParseMetadata decodes a descriptor. Unknown fields are ignored, and a known
// field holding a value of the wrong type is left unset without affecting the
// others. Only a body that is not a JSON object is an error.
func ParseMetadata(data []byte) (CategoryMetadata, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return CategoryMetadata{}, &MetadataError{Err: err}
	}
	return CategoryMetadata{
		Name:              decodeField[string](raw["name"]),
		Icon:              decodeField[string](raw["icon"]),
		Order:             decodeOrder(raw["order"]),
		ExpandedByDefault: decodeField[bool](raw["expandedByDefault"]),
	}, nil
}

// decodeField returns nil for an absent, null or mistyped value.
func decodeField[T any](msg json.RawMessage) *T {
	if msg == nil {
		return nil
	}
	var v *T
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil
	}
	return v
}

// decodeOrder accepts any whole JSON number, so 2 and 2.0 are the same order.
func decodeOrder(msg json.RawMessage) *int {
	f := decodeField[float64](msg)
	if f == nil || *f != math.Trunc(*f) || math.Abs(*f) > 1<<53 {
		return nil
	}
	order := int(*f)
	return &order
}

// loadMetadata reads the descriptor of dir from fsys.
// A missing descriptor yields the zero value and a nil error.
func loadMetadata(fsys fs.FS, dir string) (CategoryMetadata, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, MetadataFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return CategoryMetadata{}, nil
	}
	if err != nil {
		return CategoryMetadata{}, &MetadataError{Dir: dir, Err: err}
	}

	meta, err := ParseMetadata(data)
	if err != nil {
		var me *MetadataError
		if errors.As(err, &me) {
			me.Dir = dir
		}
		return CategoryMetadata{}, err
	}
	return meta, nil
}

// readMetadata is the tolerant form used during scans: a broken descriptor
// is logged and replaced by defaults. Each directory is read at most once
// per scanner.
func (s *Scanner) readMetadata(dir string) CategoryMetadata {
	dir = cleanDir(dir)
	if meta, ok := s.metadata[dir]; ok {
		return meta
	}

	meta, err := loadMetadata(s.fsys, dir)
	if err != nil {
		s.logger.Warn("failed to parse metadata",
			"dir", path.Base(dir),
			"path", path.Join(dir, MetadataFileName),
			"error", err)
		meta = CategoryMetadata{}
	}
	s.metadata[dir] = meta
	return meta
}
