package tmj

import (
	"errors"
	"testing"
)

func TestGetTileLayer_SkipsEmptyCells(t *testing.T) {
	m := mustDecode(t, smallMapJSON)

	node, err := m.GetTileLayer("ground")
	if err != nil {
		t.Fatalf("GetTileLayer: %v", err)
	}
	if node.Len() != 3 {
		t.Fatalf("placed tiles = %d, want 3", node.Len())
	}
	for _, pt := range node.Tiles {
		if pt.GID == 0 {
			t.Error("GID 0 must never be materialized")
		}
	}
}

func TestGetTileLayer_Positions(t *testing.T) {
	m := mustDecode(t, smallMapJSON)
	node, err := m.GetTileLayer("Ground")
	if err != nil {
		t.Fatalf("GetTileLayer: %v", err)
	}

	// data [0,1,2,3] on a 2x2 map of 32px tiles, 64px tall:
	// x = col*32 - 16, y = 64 - row*32 - 16.
	want := []struct {
		gid      uint32
		col, row int
		x, y     float64
	}{
		{1, 1, 0, 16, 48},
		{2, 0, 1, -16, 16},
		{3, 1, 1, 16, 16},
	}
	for i, w := range want {
		pt := node.Tiles[i]
		if pt.GID != w.gid || pt.Column != w.col || pt.Row != w.row {
			t.Errorf("tile %d = gid %d (%d,%d), want gid %d (%d,%d)",
				i, pt.GID, pt.Column, pt.Row, w.gid, w.col, w.row)
		}
		if pt.X != w.x || pt.Y != w.y {
			t.Errorf("tile %d position = (%v,%v), want (%v,%v)", i, pt.X, pt.Y, w.x, w.y)
		}
	}
}

func TestGetTileLayer_LayerAttributes(t *testing.T) {
	m := mustDecode(t, smallMapJSON)
	node, err := m.GetTileLayer("ground")
	if err != nil {
		t.Fatalf("GetTileLayer: %v", err)
	}
	if node.Name != "ground" || !node.Visible || node.Alpha != 1 {
		t.Errorf("node = {Name:%q Visible:%v Alpha:%v}", node.Name, node.Visible, node.Alpha)
	}
}

func TestGetTileLayer_TileProperties(t *testing.T) {
	m := mustDecode(t, smallMapJSON)
	node, err := m.GetTileLayer("ground")
	if err != nil {
		t.Fatalf("GetTileLayer: %v", err)
	}

	// Local index 1 is GID 2.
	for _, pt := range node.Tiles {
		solid := pt.Properties.GetBool("solid")
		if pt.GID == 2 && !solid {
			t.Error("GID 2 should carry solid=true")
		}
		if pt.GID != 2 && pt.Properties != nil {
			t.Errorf("GID %d should have no properties, got %v", pt.GID, pt.Properties)
		}
	}
}

func TestLookupAsymmetry(t *testing.T) {
	m := mustDecode(t, smallMapJSON)

	objs := m.GetObjectLayer("nonexistent")
	if objs != nil {
		t.Errorf("GetObjectLayer(nonexistent) = %v, want nil", objs)
	}

	node, err := m.GetTileLayer("nonexistent")
	if node != nil {
		t.Error("GetTileLayer(nonexistent) returned a node")
	}
	var le *LookupError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LookupError", err)
	}
	if le.Name != "nonexistent" || !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("LookupError = %+v", le)
	}

	if ts := m.GetTileset("nonexistent"); ts != nil {
		t.Errorf("GetTileset(nonexistent) = %v, want nil", ts)
	}
}

func TestTilesetForGID_UnsortedInput(t *testing.T) {
	m := mustDecode(t, twoTilesetJSON)

	if got := m.Tilesets(); got[0].Name != "tiles" || got[1].Name != "items" {
		t.Fatalf("tilesets not sorted by FirstGID: %s, %s", got[0].Name, got[1].Name)
	}

	tests := []struct {
		gid  uint32
		want string
	}{
		{1, "tiles"},
		{16, "tiles"},
		{17, "items"},
		{100, "items"},
	}
	for _, tt := range tests {
		ts := m.TilesetForGID(tt.gid)
		if ts == nil || ts.Name != tt.want {
			t.Errorf("TilesetForGID(%d) = %v, want %s", tt.gid, ts, tt.want)
		}
	}
	if ts := m.TilesetForGID(0); ts != nil {
		t.Errorf("TilesetForGID(0) = %s, want nil", ts.Name)
	}
}

func TestTileForGID_FlipFlags(t *testing.T) {
	m := mustDecode(t, smallMapJSON)

	tile, err := m.TileForGID(2 | tileFlipH | tileFlipD)
	if err != nil {
		t.Fatalf("TileForGID: %v", err)
	}
	if tile.GID != 2 {
		t.Errorf("GID = %d, want 2", tile.GID)
	}
	if tile.Flip != FlipHorizontal|FlipDiagonal {
		t.Errorf("Flip = %b, want H|D", tile.Flip)
	}

	plain, err := m.TileForGID(2)
	if err != nil {
		t.Fatalf("TileForGID: %v", err)
	}
	if plain.Texture != tile.Texture {
		t.Error("flipped and plain GID should share the cached texture")
	}
}

func TestTileForGID_Zero(t *testing.T) {
	m := mustDecode(t, smallMapJSON)
	if _, err := m.TileForGID(0); !errors.Is(err, ErrNoTileset) {
		t.Errorf("err = %v, want ErrNoTileset", err)
	}
}

func TestTileAt(t *testing.T) {
	m := mustDecode(t, smallMapJSON)

	tile, err := m.TileAt("ground", 1, 1)
	if err != nil {
		t.Fatalf("TileAt: %v", err)
	}
	if tile == nil || tile.GID != 3 {
		t.Errorf("TileAt(1,1) = %v, want GID 3", tile)
	}

	empty, err := m.TileAt("ground", 0, 0)
	if err != nil || empty != nil {
		t.Errorf("TileAt(0,0) = %v, %v; want nil, nil", empty, err)
	}

	if _, err := m.TileAt("ground", 2, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("TileAt(2,0) err = %v, want ErrOutOfBounds", err)
	}
	if _, err := m.TileAt("missing", 0, 0); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("TileAt(missing) err = %v, want ErrUnknownLayer", err)
	}
}

func TestTileAtPixel(t *testing.T) {
	m := mustDecode(t, smallMapJSON)

	tile, err := m.TileAtPixel("ground", 40, 5)
	if err != nil {
		t.Fatalf("TileAtPixel: %v", err)
	}
	if tile == nil || tile.GID != 1 {
		t.Errorf("TileAtPixel(40,5) = %v, want GID 1", tile)
	}
	if _, err := m.TileAtPixel("ground", -1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("TileAtPixel(-1,0) err = %v, want ErrOutOfBounds", err)
	}
}

// Scenario from the map format docs: 10x10 map, one 128x128 atlas of 32px
// tiles.
const scenarioMapJSON = `{
  "width": 10, "height": 10, "tilewidth": 32, "tileheight": 32,
  "orientation": "orthogonal",
  "layers": [],
  "tilesets": [
    {"firstgid": 1, "image": "tiles.png", "imagewidth": 128, "imageheight": 128,
     "margin": 0, "spacing": 0, "tilewidth": 32, "tileheight": 32, "name": "t"}
  ]
}`

func TestScenario_AtlasRects(t *testing.T) {
	m := mustDecode(t, scenarioMapJSON)

	tests := []struct {
		gid  uint32
		want Rect
	}{
		// Row 0 sits at the top of the sheet, so its flipped Y is 1-0-0.25.
		{1, Rect{X: 0, Y: 0.75, Width: 0.25, Height: 0.25}},
		// Row 1: 1-0.25-0.25.
		{5, Rect{X: 0, Y: 0.5, Width: 0.25, Height: 0.25}},
		{6, Rect{X: 0.25, Y: 0.5, Width: 0.25, Height: 0.25}},
		{16, Rect{X: 0.75, Y: 0, Width: 0.25, Height: 0.25}},
	}
	for _, tt := range tests {
		tex, err := m.Textures().Get(tt.gid)
		if err != nil {
			t.Fatalf("Get(%d): %v", tt.gid, err)
		}
		if tex.Rect.UV != tt.want {
			t.Errorf("gid %d UV = %+v, want %+v", tt.gid, tex.Rect.UV, tt.want)
		}
	}
}
