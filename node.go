package tmj

// Tile is a renderable tile: a texture plus the properties its tileset
// assigns to it. Tiles are built on demand; only their textures are cached.
type Tile struct {
	GID        uint32 // flag bits stripped
	Flip       FlipFlags
	Texture    *Texture
	Tileset    *Tileset
	Properties Properties // nil when the tile has none
}

// PlacedTile is a Tile positioned on its layer.
type PlacedTile struct {
	*Tile

	// Grid cell, row 0 at the top of the map.
	Column, Row int

	// Anchor point for a center-anchored sprite, in map pixels with the
	// origin at the bottom-left and Y increasing upward.
	X, Y float64
}

// LayerNode is a materialized tile layer, ready to hand to a renderer.
// Empty cells produce no entry in Tiles.
type LayerNode struct {
	Name    string
	Visible bool
	Alpha   float64

	// X, Y is the layer offset from the map file.
	X, Y float64

	Tiles []PlacedTile
}

// Len returns the number of placed tiles.
func (n *LayerNode) Len() int {
	return len(n.Tiles)
}
