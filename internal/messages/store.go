package messages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
)

// Category identifies one of the three roots of the message tree.
type Category string

const (
	// CategoryGlobal holds one flat file per locale merged at the top level.
	CategoryGlobal Category = "global"
	// CategoryPages holds one directory per page namespace.
	CategoryPages Category = "pages"
	// CategoryComponents holds one directory per component namespace.
	CategoryComponents Category = "components"
)

// FilePath returns the store-relative path of the message file for the
// namespace name and locale. The name is ignored for CategoryGlobal.
func (c Category) FilePath(name, locale string) string {
	if c == CategoryGlobal {
		return path.Join(string(c), locale+".json")
	}
	return path.Join(string(c), name, locale+".json")
}

// LoadResult is the outcome of reading one message file. Exactly one of
// Messages or Err is meaningful.
type LoadResult struct {
	Path     string
	Messages Messages
	Err      error
}

// OK reports whether the file was read and parsed.
func (r LoadResult) OK() bool {
	return r.Err == nil
}

// Store reads message files from a filesystem laid out as
//
//	global/<locale>.json
//	pages/<page>/<locale>.json
//	components/<component>/<locale>.json
//
// It holds no state besides the filesystem handle and never caches.
type Store struct {
	fsys fs.FS
}

// NewStore returns a Store reading from fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Check reports whether the message root can be listed.
func (s *Store) Check() error {
	if _, err := fs.ReadDir(s.fsys, "."); err != nil {
		return fmt.Errorf("messages root: %w", err)
	}
	return nil
}

// Discover lists the namespace names under a category root: every
// subdirectory, sorted by name. A missing root yields an empty list and an
// error wrapping fs.ErrNotExist.
func (s *Store) Discover(category Category) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, string(category))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", category, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.isDir(string(category), entry) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (s *Store) isDir(root string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(s.fsys, path.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}

// Load reads and decodes the message file at p. The file must hold a single
// JSON object whose values are all strings.
func (s *Store) Load(p string) LoadResult {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return LoadResult{Path: p, Err: fmt.Errorf("read %s: %w", p, err)}
	}

	msgs, err := decode(data)
	if err != nil {
		return LoadResult{Path: p, Err: fmt.Errorf("parse %s: %w", p, err)}
	}
	return LoadResult{Path: p, Messages: msgs}
}

var errNotObject = errors.New("message file must contain a JSON object")

func decode(data []byte) (Messages, error) {
	var raw map[string]*string
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	if raw == nil {
		return nil, errNotObject
	}

	msgs := make(Messages, len(raw))
	for k, v := range raw {
		if v == nil {
			return nil, fmt.Errorf("key %q: null is not a string", k)
		}
		msgs[k] = *v
	}
	return msgs, nil
}
