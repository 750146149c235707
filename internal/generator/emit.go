package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Emit writes the declaration and definition documents into outDir under
// the given file names, overwriting existing files. outDir is created if
// needed. It returns the written paths.
func Emit(outDir, header, source string, declaration, definition []byte, atomic bool) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := []struct {
		name string
		data []byte
	}{
		{header, declaration},
		{source, definition},
	}

	var written []string
	for _, o := range outputs {
		path := filepath.Join(outDir, o.name)
		var err error
		if atomic {
			err = writeFileAtomic(path, o.data)
		} else {
			err = os.WriteFile(path, o.data, 0644)
		}
		if err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// writeFileAtomic writes data next to path and renames it into place, so
// readers never see a truncated file.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
