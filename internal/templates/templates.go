package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

//go:embed *.tmpl */*.tmpl
var templatesFS embed.FS

// Top-level template names. Each variant defines both.
const (
	Declaration = "declaration"
	Definition  = "definition"
)

// File is one template source.
type File struct {
	Name    string
	Content string
}

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Variants lists the embedded template sets.
func Variants() []string {
	entries, _ := fs.ReadDir(templatesFS, ".")
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

// Load returns the template sources of a variant in parse order: the shared
// partials, the variant's partials, then the two top-level documents. Files
// found in overrideDir (partials.tmpl, declaration.tmpl, definition.tmpl)
// are appended after their embedded counterparts, so their definitions win.
// Templates may call root, child, inner, member, indent and cstring.
func Load(variant, overrideDir string) ([]File, error) {
	common, err := Get("common.tmpl")
	if err != nil {
		return nil, err
	}
	files := []File{{Name: "common", Content: common}}

	embedded := variant != "" && existsFS(variant)
	if !embedded && overrideDir == "" {
		return nil, fmt.Errorf("unknown template variant %q", variant)
	}

	for _, name := range []string{"partials", Declaration, Definition} {
		if embedded {
			p := path.Join(variant, name+".tmpl")
			content, err := Get(p)
			switch {
			case err == nil:
				files = append(files, File{Name: name, Content: content})
			case name != "partials":
				return nil, err
			}
		}
		if overrideDir != "" {
			content, err := os.ReadFile(filepath.Join(overrideDir, name+".tmpl"))
			switch {
			case err == nil:
				files = append(files, File{Name: name, Content: string(content)})
			case !errors.Is(err, fs.ErrNotExist):
				return nil, fmt.Errorf("failed to read template override: %w", err)
			case !embedded && name != "partials":
				return nil, fmt.Errorf("template override %s missing in %s", name+".tmpl", overrideDir)
			}
		}
	}
	return files, nil
}

func existsFS(dir string) bool {
	info, err := fs.Stat(templatesFS, dir)
	return err == nil && info.IsDir()
}
