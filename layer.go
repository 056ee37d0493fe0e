package tmj

// Layer holds the fields shared by tile and object layers.
type Layer struct {
	Name    string  // lowercased; the lookup key
	X, Y    float64 // offset
	Width   int     // in tiles
	Height  int     // in tiles
	Opacity float64 // 0..1
	Visible bool
}

// TileLayer is a grid of GIDs, row-major with row 0 at the top. A GID of 0
// marks an empty cell. GIDs may carry Tiled flip bits.
type TileLayer struct {
	Layer
	Data []uint32
}

// At returns the raw GID at (col, row) and whether the cell is in range.
func (l *TileLayer) At(col, row int) (uint32, bool) {
	if col < 0 || col >= l.Width || row < 0 || row >= l.Height {
		return 0, false
	}
	return l.Data[row*l.Width+col], true
}

// ObjectLayer is an ordered list of free-positioned map objects.
type ObjectLayer struct {
	Layer
	Objects []MapObject
}

// MapObject is an entity placed on an object layer: a collision area, a
// trigger region, or a spawn marker.
type MapObject struct {
	ID       int
	Name     string
	Type     string
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64 // degrees, clockwise
	Visible  bool

	Properties Properties
}

// IsPoint reports whether the object is a reference marker rather than an
// area. Markers have zero width and height.
func (o MapObject) IsPoint() bool {
	return o.Width == 0 && o.Height == 0
}

// Bounds returns the object's area as a Rect.
func (o MapObject) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// layerStore keeps layers of one kind by name, remembering the order in
// which names first appeared. Re-adding a name replaces the earlier layer
// but keeps its position.
type layerStore[T any] struct {
	byName map[string]*T
	order  []string
}

func newLayerStore[T any]() layerStore[T] {
	return layerStore[T]{byName: make(map[string]*T)}
}

func (s *layerStore[T]) put(name string, l *T) {
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}
	s.byName[name] = l
}

func (s *layerStore[T]) get(name string) (*T, bool) {
	l, ok := s.byName[name]
	return l, ok
}

func (s *layerStore[T]) names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
