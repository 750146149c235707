// Package assets turns a scanned directory tree into a tree of named groups
// and sprites, and assigns every sprite its index in the flat path table.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spritegen/spritegen/internal/config"
	"github.com/spritegen/spritegen/internal/scan"
)

var (
	// ErrNameCollision is returned when two entries of one group share an identifier.
	ErrNameCollision = errors.New("identifier collision")
	// ErrInvalidIdentifier is returned in strict mode for names that are not C identifiers.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NameMember is the member every generated group struct carries for the
// group's own name. No sprite or subgroup may use it.
const NameMember = "name"

// reservedPath stands in for a file path when an entry collides with NameMember.
const reservedPath = "<group name member>"

// keywords are the C11 and C23 keywords.
var keywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true,
	"_Complex": true, "_Generic": true, "_Imaginary": true, "_Noreturn": true,
	"_Static_assert": true, "_Thread_local": true,
	"alignas": true, "alignof": true, "bool": true, "constexpr": true,
	"false": true, "nullptr": true, "static_assert": true, "thread_local": true,
	"true": true, "typeof": true, "typeof_unqual": true,
}

// Sprite is a leaf before indexing.
type Sprite struct {
	Name string
	Path string
}

// Group is one directory level.
type Group struct {
	Name    string
	Path    string
	Groups  []Group
	Sprites []Sprite
}

// BuildOptions configures BuildGroups.
type BuildOptions struct {
	// RootName names the group of the scan root. Defaults to "root".
	RootName string
	// OnCollision is one of the config.Collision* policies.
	OnCollision string
	// Strict rejects names that are not valid C identifiers.
	Strict bool
}

// Sanitize maps a file system name to an identifier by replacing '-' with '_'.
func Sanitize(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// IsIdentifier reports whether name is a valid C identifier that is not a
// keyword.
func IsIdentifier(name string) bool {
	return identRe.MatchString(name) && !keywords[name]
}

// SpriteName derives a sprite identifier from an asset path.
func SpriteName(path string) string {
	base := filepath.Base(path)
	return Sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
}

// BuildGroups converts the raw directory tree into a Group tree.
func BuildGroups(dir *scan.Dir, opts BuildOptions) (Group, error) {
	if opts.RootName == "" {
		opts.RootName = "root"
	}
	if opts.OnCollision == "" {
		opts.OnCollision = config.CollisionError
	}
	return makeGroup(opts.RootName, dir, opts)
}

func makeGroup(name string, dir *scan.Dir, opts BuildOptions) (Group, error) {
	g := Group{Name: name, Path: dir.Path}
	if opts.Strict && !IsIdentifier(name) {
		return Group{}, fmt.Errorf("%w: group %q (%s)", ErrInvalidIdentifier, name, dir.Path)
	}

	for _, f := range dir.Files {
		s := Sprite{Name: SpriteName(f), Path: f}
		if opts.Strict && !IsIdentifier(s.Name) {
			return Group{}, fmt.Errorf("%w: sprite %q (%s)", ErrInvalidIdentifier, s.Name, f)
		}
		g.Sprites = append(g.Sprites, s)
	}

	for _, c := range dir.Children {
		child, err := makeGroup(Sanitize(c.Name), c, opts)
		if err != nil {
			return Group{}, err
		}
		g.Groups = append(g.Groups, child)
	}

	switch opts.OnCollision {
	case config.CollisionError:
		if dups := duplicates(g); len(dups) > 0 {
			d := dups[0]
			return Group{}, fmt.Errorf("%w: %q in group %q: %s", ErrNameCollision, d.Name, g.Name, strings.Join(d.Paths, ", "))
		}
	case config.CollisionLastWins:
		g = lastWins(g)
	}
	return g, nil
}

// Duplicate is an identifier shared by several entries of one group.
type Duplicate struct {
	Name  string
	Paths []string
}

// duplicates lists the identifiers used more than once among g's sprites
// and child groups, in first-seen order. NameMember counts as used once.
func duplicates(g Group) []Duplicate {
	seen := map[string]int{NameMember: 0}
	out := []Duplicate{{Name: NameMember, Paths: []string{reservedPath}}}
	add := func(name, path string) {
		if i, ok := seen[name]; ok {
			out[i].Paths = append(out[i].Paths, path)
			return
		}
		seen[name] = len(out)
		out = append(out, Duplicate{Name: name, Paths: []string{path}})
	}
	for _, s := range g.Sprites {
		add(s.Name, s.Path)
	}
	for _, c := range g.Groups {
		add(c.Name, c.Path)
	}

	dups := out[:0]
	for _, d := range out {
		if len(d.Paths) > 1 {
			dups = append(dups, d)
		}
	}
	return dups
}

// lastWins resolves collisions inside g: the entry visited last takes the
// slot of the first entry with the same name. Sprites are visited before
// groups, so a group shadows a sprite of the same name. Entries named
// NameMember cannot replace the name member and are dropped.
func lastWins(g Group) Group {
	spriteAt := make(map[string]int)
	var sprites []Sprite
	for _, s := range g.Sprites {
		if s.Name == NameMember {
			continue
		}
		if i, ok := spriteAt[s.Name]; ok {
			sprites[i] = s
			continue
		}
		spriteAt[s.Name] = len(sprites)
		sprites = append(sprites, s)
	}

	groupAt := make(map[string]int)
	var groups []Group
	for _, c := range g.Groups {
		if c.Name == NameMember {
			continue
		}
		if i, ok := groupAt[c.Name]; ok {
			groups[i] = c
			continue
		}
		groupAt[c.Name] = len(groups)
		groups = append(groups, c)
	}

	g.Sprites = sprites[:0]
	for _, s := range sprites {
		if _, shadowed := groupAt[s.Name]; !shadowed {
			g.Sprites = append(g.Sprites, s)
		}
	}
	g.Groups = groups
	return g
}

// CountSprites returns the number of sprites in g and all its descendants.
func CountSprites(g Group) int {
	n := len(g.Sprites)
	for _, c := range g.Groups {
		n += CountSprites(c)
	}
	return n
}

// CountGroups returns the number of groups in the tree, g included.
func CountGroups(g Group) int {
	n := 1
	for _, c := range g.Groups {
		n += CountGroups(c)
	}
	return n
}
