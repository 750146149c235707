package assets

// IndexedSprite is a leaf after indexing. Index points into the PathTable.
type IndexedSprite struct {
	Name  string
	Index int
}

// IndexedGroup is a Group whose sprites carry indices instead of paths.
type IndexedGroup struct {
	Name    string
	Groups  []IndexedGroup
	Sprites []IndexedSprite
}

// PathTable maps a sprite index to the source path of the sprite.
type PathTable []string

// Index stamps every sprite of g with its position in the returned path table.
// A group's own sprites are numbered before any of its child groups are
// visited. g is left untouched.
func Index(g Group) (IndexedGroup, PathTable) {
	return indexGroup(g, make(PathTable, 0, CountSprites(g)))
}

func indexGroup(g Group, table PathTable) (IndexedGroup, PathTable) {
	out := IndexedGroup{
		Name:    g.Name,
		Sprites: make([]IndexedSprite, 0, len(g.Sprites)),
		Groups:  make([]IndexedGroup, 0, len(g.Groups)),
	}
	for _, s := range g.Sprites {
		table = append(table, s.Path)
		out.Sprites = append(out.Sprites, IndexedSprite{Name: s.Name, Index: len(table) - 1})
	}
	for _, c := range g.Groups {
		var child IndexedGroup
		child, table = indexGroup(c, table)
		out.Groups = append(out.Groups, child)
	}
	return out, table
}
