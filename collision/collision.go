// Package collision builds resolv collision spaces from tmj maps.
//
// Object layers become rectangular resolv objects tagged with the map
// object's name and type. Tile layers contribute one tile-sized object per
// cell whose tile carries a boolean property, which is how solid ground is
// usually marked in the tileset editor.
package collision

import (
	"github.com/phanxgames/tmj"
	"github.com/solarlune/resolv"
)

// TagSolid is added to every object created by AddSolidTiles.
const TagSolid = "solid"

// NewSpace returns an empty space covering the whole map.
func NewSpace(m *tmj.TileMap, cellW, cellH int) *resolv.Space {
	return resolv.NewSpace(m.PixelWidth(), m.PixelHeight(), cellW, cellH)
}

// AddObjects adds one object per visible, rectangular map object. Point
// markers are skipped since they have no area. Each object is tagged with
// its name and type (when set) followed by tags. The added objects are
// returned in layer order.
func AddObjects(space *resolv.Space, objects []tmj.MapObject, tags ...string) []*resolv.Object {
	added := make([]*resolv.Object, 0, len(objects))
	for _, o := range objects {
		if !o.Visible || o.IsPoint() {
			continue
		}
		objTags := make([]string, 0, len(tags)+2)
		if o.Name != "" {
			objTags = append(objTags, o.Name)
		}
		if o.Type != "" {
			objTags = append(objTags, o.Type)
		}
		objTags = append(objTags, tags...)

		obj := resolv.NewObject(o.X, o.Y, o.Width, o.Height, objTags...)
		obj.SetShape(resolv.NewRectangle(0, 0, o.Width, o.Height))
		obj.Data = o
		space.Add(obj)
		added = append(added, obj)
	}
	return added
}

// AddSolidTiles adds a tile-sized object, tagged TagSolid, for every cell of
// the named tile layer whose tile has the boolean property prop set. Cell
// positions use the map file's top-left origin, matching object layers.
func AddSolidTiles(space *resolv.Space, m *tmj.TileMap, layer, prop string) (int, error) {
	l := m.TileLayer(layer)
	if l == nil {
		return 0, &tmj.LookupError{Kind: "tilelayer", Name: layer}
	}

	tw := float64(m.TileWidth)
	th := float64(m.TileHeight)
	count := 0
	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			tile, err := m.TileAt(layer, col, row)
			if err != nil {
				return count, err
			}
			if tile == nil || !tile.Properties.GetBool(prop) {
				continue
			}
			obj := resolv.NewObject(float64(col)*tw, float64(row)*th, tw, th, TagSolid)
			obj.SetShape(resolv.NewRectangle(0, 0, tw, th))
			space.Add(obj)
			count++
		}
	}
	return count, nil
}
