package generator

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spritegen/spritegen/internal/assets"
)

// indentUnit is one nesting level in generated C code.
const indentUnit = "    "

// Scope is the data handed to the recursive partials: the group being
// expanded, the indentation depth of the lines the partial emits and the
// member path from the root struct ("ui.buttons").
type Scope struct {
	Group assets.IndexedGroup
	Depth int
	Path  string
}

// rootScope starts the recursion at the members of the root struct.
func rootScope(doc Document) Scope {
	return Scope{Group: doc.Root, Depth: 1}
}

// childScope is a nested group emitted among the members of s.
func childScope(s Scope, g assets.IndexedGroup) Scope {
	return Scope{Group: g, Depth: s.Depth, Path: memberPath(s, g.Name)}
}

// innerScope is the member list inside the struct of s.
func innerScope(s Scope) Scope {
	s.Depth++
	return s
}

func memberPath(s Scope, name string) string {
	if s.Path == "" {
		return name
	}
	return s.Path + "." + name
}

// cString quotes s as a C string literal. Control characters are written as
// three digit octal escapes, everything else is copied byte for byte.
func cString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '?':
			// Avoid accidental trigraphs.
			b.WriteString(`\?`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// GetCommonFuncMap returns the template functions available to every
// template variant.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"root":   rootScope,
		"child":  childScope,
		"inner":  innerScope,
		"member": memberPath,
		"indent": func(depth int) string {
			if depth <= 0 {
				return ""
			}
			return strings.Repeat(indentUnit, depth)
		},
		"cstring": cString,
	}
}
