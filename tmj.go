package tmj

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Orientation is the map projection declared by the map file.
type Orientation uint8

const (
	Orthogonal Orientation = iota // square grid
	Isometric                     // diamond grid
)

// String returns the orientation as it appears in map files.
func (o Orientation) String() string {
	switch o {
	case Orthogonal:
		return "orthogonal"
	case Isometric:
		return "isometric"
	default:
		return "unknown"
	}
}

func parseOrientation(s string) (Orientation, bool) {
	switch s {
	case "orthogonal":
		return Orthogonal, true
	case "isometric":
		return Isometric, true
	}
	return 0, false
}

// FilterMode selects how tile textures are sampled when drawn.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota // pixel-exact sampling (default)
	FilterLinear                    // smoothed sampling
)

// EbitenFilter returns the ebiten.Filter corresponding to this FilterMode.
func (f FilterMode) EbitenFilter() ebiten.Filter {
	switch f {
	case FilterLinear:
		return ebiten.FilterLinear
	default:
		return ebiten.FilterNearest
	}
}

// String returns "nearest" or "linear".
func (f FilterMode) String() string {
	if f == FilterLinear {
		return "linear"
	}
	return "nearest"
}

// UnmarshalText parses "nearest" or "linear" so FilterMode can be used
// directly in config files.
func (f *FilterMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "nearest", "":
		*f = FilterNearest
	case "linear":
		*f = FilterLinear
	default:
		return fmt.Errorf("tmj: unknown filter mode %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f FilterMode) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// GID flag bits (Tiled convention). Bits set on a GID in layer data flip or
// rotate the tile; they are stripped before tileset resolution.
const (
	tileFlipH    uint32 = 1 << 31 // horizontal flip
	tileFlipV    uint32 = 1 << 30 // vertical flip
	tileFlipD    uint32 = 1 << 29 // diagonal flip (90° rotation)
	tileFlagMask uint32 = tileFlipH | tileFlipV | tileFlipD
)

// FlipFlags records the flip bits carried by a GID in layer data.
type FlipFlags uint8

const (
	FlipHorizontal FlipFlags = 1 << iota
	FlipVertical
	FlipDiagonal
)

// splitGID strips the flag bits from a raw layer GID.
func splitGID(raw uint32) (uint32, FlipFlags) {
	var f FlipFlags
	if raw&tileFlipH != 0 {
		f |= FlipHorizontal
	}
	if raw&tileFlipV != 0 {
		f |= FlipVertical
	}
	if raw&tileFlipD != 0 {
		f |= FlipDiagonal
	}
	return raw &^ tileFlagMask, f
}
