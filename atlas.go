package tmj

import "image"

// AtlasRect locates one tile inside its tileset's atlas image.
type AtlasRect struct {
	// UV is the tile rectangle in normalized [0,1] atlas coordinates with
	// the origin at the bottom-left, the convention the map format's
	// texture coordinates use.
	UV Rect

	// Pixels is the same rectangle in atlas pixels with the origin at the
	// top-left, as ebiten.Image.SubImage expects.
	Pixels image.Rectangle
}

// RectResolver maps a tile-local index to its rectangle in the tileset's
// atlas. Implementations must be pure: equal inputs give equal rectangles.
type RectResolver interface {
	RectFor(ts *Tileset, local int) AtlasRect
}

// AtlasResolver is the default RectResolver. It lays tiles out row-major
// from the top-left corner of the atlas, honoring margin and spacing.
type AtlasResolver struct{}

// RectFor implements RectResolver.
func (AtlasResolver) RectFor(ts *Tileset, local int) AtlasRect {
	row := ts.Row(local)
	col := ts.Column(local)

	px := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	py := ts.Margin + row*(ts.TileHeight+ts.Spacing)

	iw := float64(ts.ImageWidth)
	ih := float64(ts.ImageHeight)
	w := float64(ts.TileWidth) / iw
	h := float64(ts.TileHeight) / ih

	return AtlasRect{
		UV: Rect{
			X:      float64(px) / iw,
			Y:      flipRow(float64(py)/ih, h),
			Width:  w,
			Height: h,
		},
		Pixels: image.Rect(px, py, px+ts.TileWidth, py+ts.TileHeight),
	}
}

// flipRow converts a normalized top-left row offset into the bottom-left
// origin used by AtlasRect.UV. This is the only place the flip happens.
func flipRow(y, h float64) float64 {
	return 1 - y - h
}
