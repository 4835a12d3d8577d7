// Package fsys enumerates directory entries for the tree renderer.
package fsys

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// HiddenPrefix marks an entry as hidden on every platform.
const HiddenPrefix = "."

// Entry is a single directory entry as seen by the renderer.
type Entry struct {
	Name     string
	Path     string
	IsDir    bool
	IsHidden bool
}

// Lister provides the filesystem operations the renderer needs.
type Lister interface {
	// Stat describes the entry at path. Errors wrap fs.ErrNotExist when
	// the path is missing.
	Stat(name string) (Entry, error)
	// List returns the direct children of dir in enumeration order.
	List(dir string) ([]Entry, error)
}

// IsHiddenName reports whether name carries the hidden marker.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// OS lists entries on the host filesystem.
type OS struct{}

// NewOS returns a Lister backed by the host filesystem.
func NewOS() OS {
	return OS{}
}

// Stat describes the entry at name.
func (OS) Stat(name string) (Entry, error) {
	info, err := os.Stat(name)
	if err != nil {
		return Entry{}, fmt.Errorf("stat %s: %w", name, err)
	}
	base := filepath.Base(name)
	return Entry{
		Name:     base,
		Path:     name,
		IsDir:    info.IsDir(),
		IsHidden: IsHiddenName(base) || hasHiddenAttr(name),
	}, nil
}

// List returns the children of dir. The directory handle is closed
// before List returns.
func (OS) List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		p := filepath.Join(dir, d.Name())
		entries = append(entries, Entry{
			Name:     d.Name(),
			Path:     p,
			IsDir:    isDir(d, p),
			IsHidden: IsHiddenName(d.Name()) || hasHiddenAttr(p),
		})
	}
	return entries, nil
}

// isDir resolves symlinks so a link to a directory is walked like one.
func isDir(d fs.DirEntry, p string) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir()
	}
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FS lists entries from an fs.FS. Only the name prefix marks an entry
// hidden since fs.FS exposes no platform attributes.
type FS struct {
	fsys fs.FS
}

// NewFS returns a Lister backed by fsys. Paths use slash separators
// and "." names the root.
func NewFS(fsys fs.FS) FS {
	return FS{fsys: fsys}
}

// Stat describes the entry at name.
func (f FS) Stat(name string) (Entry, error) {
	info, err := fs.Stat(f.fsys, name)
	if err != nil {
		return Entry{}, fmt.Errorf("stat %s: %w", name, err)
	}
	base := path.Base(name)
	return Entry{
		Name:     base,
		Path:     name,
		IsDir:    info.IsDir(),
		IsHidden: base != "." && IsHiddenName(base),
	}, nil
}

// List returns the children of dir.
func (f FS) List(dir string) ([]Entry, error) {
	dirEntries, err := fs.ReadDir(f.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		entries = append(entries, Entry{
			Name:     d.Name(),
			Path:     path.Join(dir, d.Name()),
			IsDir:    d.IsDir(),
			IsHidden: IsHiddenName(d.Name()),
		})
	}
	return entries, nil
}
