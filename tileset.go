package tmj

import (
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tileset is a grid of equally sized tiles cut from one atlas image. It owns
// the GIDs from FirstGID up to (but not including) the next tileset's
// FirstGID.
type Tileset struct {
	FirstGID uint32
	Name     string // lowercased

	// Image is the atlas path as written in the map file; ImageWidth and
	// ImageHeight are its declared pixel size, margin and spacing included.
	Image       string
	ImageWidth  int
	ImageHeight int
	Margin      int
	Spacing     int

	TileWidth  int
	TileHeight int

	// TileProperties holds per-tile properties keyed by tile-local index
	// (GID - FirstGID). Tiles without properties have no entry.
	TileProperties map[int]Properties
	Properties     Properties

	// Atlas is the loaded atlas image shared by every tile texture.
	Atlas *ebiten.Image
}

// TilesPerRow returns the number of tile columns in the atlas.
func (ts *Tileset) TilesPerRow() int {
	return (ts.ImageWidth - ts.Margin*2 + ts.Spacing) / (ts.TileWidth + ts.Spacing)
}

// TilesPerColumn returns the number of tile rows in the atlas.
func (ts *Tileset) TilesPerColumn() int {
	return (ts.ImageHeight - ts.Margin*2 + ts.Spacing) / (ts.TileHeight + ts.Spacing)
}

// TileCount returns the number of tiles the atlas holds.
func (ts *Tileset) TileCount() int {
	return ts.TilesPerRow() * ts.TilesPerColumn()
}

// Row returns the atlas row of a tile-local index.
func (ts *Tileset) Row(local int) int { return local / ts.TilesPerRow() }

// Column returns the atlas column of a tile-local index.
func (ts *Tileset) Column(local int) int { return local % ts.TilesPerRow() }

// LocalIndex converts a GID (without flag bits) to an index within this
// tileset. The result is meaningless for GIDs the tileset does not own.
func (ts *Tileset) LocalIndex(gid uint32) int {
	return int(gid) - int(ts.FirstGID)
}

// Contains reports whether gid falls inside this tileset's atlas, i.e.
// FirstGID <= gid < FirstGID+TileCount.
func (ts *Tileset) Contains(gid uint32) bool {
	local := ts.LocalIndex(gid)
	return local >= 0 && local < ts.TileCount()
}

// tilesetCatalog is the map's tilesets ordered by ascending FirstGID.
// FirstGIDs are expected to be distinct; the map editor guarantees this and
// the catalog does not check it.
type tilesetCatalog struct {
	sets []*Tileset
}

func newTilesetCatalog(sets []*Tileset) *tilesetCatalog {
	sorted := make([]*Tileset, len(sets))
	copy(sorted, sets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FirstGID < sorted[j].FirstGID
	})
	return &tilesetCatalog{sets: sorted}
}

// forGID returns the tileset with the largest FirstGID <= gid, or nil when
// gid is 0 or lies below every FirstGID.
func (c *tilesetCatalog) forGID(gid uint32) *Tileset {
	if gid < 1 {
		return nil
	}
	// First index whose FirstGID exceeds gid; the owner sits just before it.
	i := sort.Search(len(c.sets), func(i int) bool {
		return c.sets[i].FirstGID > gid
	})
	if i == 0 {
		return nil
	}
	return c.sets[i-1]
}

// named returns the tileset with the given name, compared case-insensitively.
// When names repeat the last tileset in FirstGID order wins.
func (c *tilesetCatalog) named(name string) *Tileset {
	name = strings.ToLower(name)
	var found *Tileset
	for _, ts := range c.sets {
		if ts.Name == name {
			found = ts
		}
	}
	return found
}

func (c *tilesetCatalog) all() []*Tileset {
	return c.sets
}
