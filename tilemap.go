package tmj

import (
	"fmt"
	"math"
	"strings"
)

// TileMap is a loaded map: its grid, layers and tilesets. It is immutable
// after loading except for the texture cache, which fills lazily.
type TileMap struct {
	// Grid size in tiles.
	Width, Height int

	// Tile size in pixels.
	TileWidth, TileHeight int

	Orientation Orientation
	Properties  Properties

	tileLayers   layerStore[TileLayer]
	objectLayers layerStore[ObjectLayer]
	tilesets     *tilesetCatalog
	cache        *TextureCache
}

func newTileMap(o *loadOptions, tilesets []*Tileset) *TileMap {
	catalog := newTilesetCatalog(tilesets)
	return &TileMap{
		tileLayers:   newLayerStore[TileLayer](),
		objectLayers: newLayerStore[ObjectLayer](),
		tilesets:     catalog,
		cache:        newTextureCache(catalog, o.resolver, o.cfg.Filter, o.cfg.Debug),
	}
}

// PixelWidth returns the map width in pixels.
func (m *TileMap) PixelWidth() int { return m.Width * m.TileWidth }

// PixelHeight returns the map height in pixels.
func (m *TileMap) PixelHeight() int { return m.Height * m.TileHeight }

// Textures returns the map's texture cache.
func (m *TileMap) Textures() *TextureCache { return m.cache }

// Tilesets returns the tilesets ordered by FirstGID. The returned slice must
// not be modified.
func (m *TileMap) Tilesets() []*Tileset { return m.tilesets.all() }

// TilesetForGID returns the tileset that owns gid: the one with the largest
// FirstGID not above it. Flag bits are ignored. Returns nil for GID 0 and for
// GIDs below every tileset; callers are expected to skip empty cells first.
func (m *TileMap) TilesetForGID(gid uint32) *Tileset {
	id, _ := splitGID(gid)
	return m.tilesets.forGID(id)
}

// TileForGID builds the Tile for a GID as found in layer data. Flag bits are
// split off into Tile.Flip.
func (m *TileMap) TileForGID(gid uint32) (*Tile, error) {
	id, flip := splitGID(gid)
	tex, err := m.cache.Get(id)
	if err != nil {
		return nil, err
	}
	ts := m.tilesets.forGID(id)
	return &Tile{
		GID:        id,
		Flip:       flip,
		Texture:    tex,
		Tileset:    ts,
		Properties: ts.TileProperties[ts.LocalIndex(id)],
	}, nil
}

// GetTileLayer materializes the named tile layer. Every non-empty cell
// becomes a PlacedTile; empty cells are omitted. Asking for a layer the map
// does not have is an error (*LookupError), unlike GetObjectLayer.
func (m *TileMap) GetTileLayer(name string) (*LayerNode, error) {
	layer, ok := m.tileLayers.get(strings.ToLower(name))
	if !ok {
		return nil, &LookupError{Kind: "tilelayer", Name: name}
	}

	node := &LayerNode{
		Name:    layer.Name,
		Visible: layer.Visible,
		Alpha:   layer.Opacity,
		X:       layer.X,
		Y:       layer.Y,
	}

	tw := float64(m.TileWidth)
	th := float64(m.TileHeight)
	top := th * float64(m.Height)

	for row := 0; row < layer.Height; row++ {
		for col := 0; col < layer.Width; col++ {
			gid := layer.Data[col+row*layer.Width]
			if gid&^tileFlagMask == 0 {
				continue
			}
			tile, err := m.TileForGID(gid)
			if err != nil {
				return nil, fmt.Errorf("tmj: layer %q cell (%d,%d): %w", layer.Name, col, row, err)
			}
			node.Tiles = append(node.Tiles, PlacedTile{
				Tile:   tile,
				Column: col,
				Row:    row,
				X:      float64(col)*tw - float64(tile.Texture.Width())/2,
				Y:      top - float64(row)*th - float64(tile.Texture.Height())/2,
			})
		}
	}
	return node, nil
}

// TileLayer returns the raw tile layer data, or nil if there is no such
// layer.
func (m *TileMap) TileLayer(name string) *TileLayer {
	l, _ := m.tileLayers.get(strings.ToLower(name))
	return l
}

// GetObjectLayer returns the objects of the named object layer, or nil when
// the map has no such layer. A missing object layer is not an error.
func (m *TileMap) GetObjectLayer(name string) []MapObject {
	if l, ok := m.objectLayers.get(strings.ToLower(name)); ok {
		return l.Objects
	}
	return nil
}

// ObjectLayer returns the named object layer with its layer attributes, or
// nil if there is no such layer.
func (m *TileMap) ObjectLayer(name string) *ObjectLayer {
	l, _ := m.objectLayers.get(strings.ToLower(name))
	return l
}

// GetTileset returns the tileset with the given name (case-insensitive), or
// nil.
func (m *TileMap) GetTileset(name string) *Tileset {
	return m.tilesets.named(name)
}

// TileLayerNames returns tile layer names in the order they appear in the
// map file, which is their drawing order.
func (m *TileMap) TileLayerNames() []string {
	return m.tileLayers.names()
}

// ObjectLayerNames returns object layer names in map file order.
func (m *TileMap) ObjectLayerNames() []string {
	return m.objectLayers.names()
}

// TileAt returns the tile in the named layer at grid cell (col, row), or
// (nil, nil) when the cell is empty.
func (m *TileMap) TileAt(layer string, col, row int) (*Tile, error) {
	l, ok := m.tileLayers.get(strings.ToLower(layer))
	if !ok {
		return nil, &LookupError{Kind: "tilelayer", Name: layer}
	}
	gid, ok := l.At(col, row)
	if !ok {
		return nil, fmt.Errorf("tmj: layer %q cell (%d,%d): %w", l.Name, col, row, ErrOutOfBounds)
	}
	if gid&^tileFlagMask == 0 {
		return nil, nil
	}
	return m.TileForGID(gid)
}

// TileAtPixel returns the tile under the map-pixel position (x, y), with the
// origin at the top-left as in the map file. Empty cells give (nil, nil).
func (m *TileMap) TileAtPixel(layer string, x, y float64) (*Tile, error) {
	col := int(math.Floor(x / float64(m.TileWidth)))
	row := int(math.Floor(y / float64(m.TileHeight)))
	return m.TileAt(layer, col, row)
}
