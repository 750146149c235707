package generator

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/spritegen/spritegen/internal/assets"
	"github.com/spritegen/spritegen/internal/templates"
)

// Document is the data shared by the declaration and definition templates.
type Document struct {
	// Source is the asset root the tree was scanned from.
	Source string
	// Header is the declaration file name, included by the definition.
	Header string
	// Variant is the template set in use.
	Variant string
	Root    assets.IndexedGroup
	Paths   assets.PathTable
}

// Renderer executes a parsed template set. Partials defined by any file of
// the set are visible to every top-level template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses files in order. A later definition of a template name
// replaces an earlier one.
func NewRenderer(files []templates.File) (*Renderer, error) {
	root := template.New("spritegen").Funcs(GetCommonFuncMap()).Option("missingkey=error")
	for _, f := range files {
		if _, err := root.New(f.Name).Parse(f.Content); err != nil {
			return nil, fmt.Errorf("failed to parse template '%s': %w", f.Name, err)
		}
	}
	return &Renderer{tmpl: root}, nil
}

// NewVariantRenderer loads the embedded variant, applying overrides from dir
// when it is not empty.
func NewVariantRenderer(variant, dir string) (*Renderer, error) {
	files, err := templates.Load(variant, dir)
	if err != nil {
		return nil, err
	}
	return NewRenderer(files)
}

// Render executes the named template against doc. The result always ends
// with a single newline.
func (r *Renderer) Render(name string, doc Document) ([]byte, error) {
	if r.tmpl.Lookup(name) == nil {
		return nil, fmt.Errorf("template '%s' is not defined", name)
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, doc); err != nil {
		return nil, fmt.Errorf("failed to render '%s': %w", name, err)
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, '\n'), nil
}
