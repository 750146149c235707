// Package scan walks an asset directory and records, per directory, the files
// accepted by a predicate.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Predicate reports whether a file name denotes an asset.
type Predicate func(name string) bool

// Extensions returns a Predicate accepting files whose extension equals one of exts.
// The comparison is exact: ".PNG" does not match ".png".
func Extensions(exts ...string) Predicate {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[e] = true
	}
	return func(name string) bool {
		return set[filepath.Ext(name)]
	}
}

// Options configures a scan.
type Options struct {
	// IncludeHidden includes entries whose name starts with a dot.
	IncludeHidden bool
}

// Dir is one observed directory. The root Dir has an empty Name.
type Dir struct {
	// Name is the directory base name.
	Name string
	// Path is the directory path as reached from the scan root.
	Path string
	// Files holds the accepted files, joined with Path.
	Files []string
	// Children holds sub-directories in visiting order.
	Children []*Dir

	index map[string]*Dir
}

// subdir returns the child named name, creating it if needed.
func (d *Dir) subdir(name string) *Dir {
	if c, ok := d.index[name]; ok {
		return c
	}
	if d.index == nil {
		d.index = make(map[string]*Dir)
	}
	c := &Dir{Name: name, Path: filepath.Join(d.Path, name)}
	d.index[name] = c
	d.Children = append(d.Children, c)
	return c
}

// lookup returns the Dir for the given segments below d, creating every
// intermediate directory along the way.
func (d *Dir) lookup(segments []string) *Dir {
	cur := d
	for _, s := range segments {
		cur = cur.subdir(s)
	}
	return cur
}

// Scan walks the tree below root and returns the raw directory tree.
// Entries are visited in lexical order, so the result is deterministic.
// A symlink is accepted as a file when it resolves to a regular file.
// Directory symlinks are not followed and dangling links are skipped.
// Any read error aborts the scan.
func Scan(root string, isAsset Predicate, opts Options) (*Dir, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat asset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %s is not a directory", root)
	}

	tree := &Dir{Path: root}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if path == root {
			return nil
		}

		if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		segments := strings.Split(rel, string(filepath.Separator))

		if d.IsDir() {
			tree.lookup(segments)
			return nil
		}
		if !isAsset(d.Name()) || !isFile(path, d) {
			return nil
		}
		parent := tree.lookup(segments[:len(segments)-1])
		parent.Files = append(parent.Files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tree, nil
}

// isFile reports whether the entry is a regular file or a symlink to one.
func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
