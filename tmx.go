package tmj

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadTMX loads a map saved in Tiled's XML format and converts it into the
// same TileMap that Load produces. Parsing is delegated to go-tiled; the
// conversion applies the same checks as the JSON loader.
func LoadTMX(fsys fs.FS, name string, opts ...Option) (*TileMap, error) {
	o := newLoadOptions(fsys, opts)

	src, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, &StructuralError{Path: name, Err: fmt.Errorf("load TMX: %w", err)}
	}
	return convertTMX(src, o)
}

func convertTMX(src *tiled.Map, o *loadOptions) (*TileMap, error) {
	if src.Width <= 0 || src.Height <= 0 || src.TileWidth <= 0 || src.TileHeight <= 0 {
		return nil, invalid("map", "grid %dx%d of %dx%d tiles must be positive",
			src.Width, src.Height, src.TileWidth, src.TileHeight)
	}
	orientation, ok := parseOrientation(src.Orientation)
	if !ok {
		return nil, invalid("orientation", "unsupported orientation %q", src.Orientation)
	}

	tilesets := make([]*Tileset, 0, len(src.Tilesets))
	for i, st := range src.Tilesets {
		p := fmt.Sprintf("tilesets[%d]", i)
		if st.Image == nil {
			return nil, missing(p + ".image")
		}
		ts := &Tileset{
			FirstGID:    st.FirstGID,
			Name:        strings.ToLower(st.Name),
			Image:       st.Image.Source,
			ImageWidth:  st.Image.Width,
			ImageHeight: st.Image.Height,
			Margin:      st.Margin,
			Spacing:     st.Spacing,
			TileWidth:   st.TileWidth,
			TileHeight:  st.TileHeight,
		}
		if ts.TileWidth <= 0 || ts.TileHeight <= 0 || ts.TilesPerRow() < 1 || ts.TilesPerColumn() < 1 {
			return nil, invalid(p, "image %dx%d holds no %dx%d tiles",
				ts.ImageWidth, ts.ImageHeight, ts.TileWidth, ts.TileHeight)
		}
		for _, tt := range st.Tiles {
			if len(tt.Properties) == 0 {
				continue
			}
			if ts.TileProperties == nil {
				ts.TileProperties = make(map[int]Properties)
			}
			ts.TileProperties[int(tt.ID)] = convertTMXProperties(tt.Properties)
		}

		// go-tiled knows where an external .tsx lives; image paths in it are
		// relative to that file, not to the map.
		atlas, err := o.images.LoadImage(path.Clean(filepath.ToSlash(st.GetFileFullPath(ts.Image))))
		if err != nil {
			return nil, &StructuralError{Path: p + ".image", Err: err}
		}
		ts.Atlas = atlas
		tilesets = append(tilesets, ts)
	}

	m := newTileMap(o, tilesets)
	m.Width, m.Height = src.Width, src.Height
	m.TileWidth, m.TileHeight = src.TileWidth, src.TileHeight
	m.Orientation = orientation

	for i, sl := range src.Layers {
		l := &TileLayer{
			Layer: Layer{
				Name:    strings.ToLower(sl.Name),
				X:       float64(sl.OffsetX),
				Y:       float64(sl.OffsetY),
				Width:   src.Width,
				Height:  src.Height,
				Opacity: float64(sl.Opacity),
				Visible: sl.Visible,
			},
		}
		if len(sl.Tiles) != src.Width*src.Height {
			return nil, &StructuralError{
				Path: fmt.Sprintf("layers[%d].data", i),
				Err:  fmt.Errorf("%w: got %d, map grid %dx%d", ErrDataLength, len(sl.Tiles), src.Width, src.Height),
			}
		}
		l.Data = make([]uint32, len(sl.Tiles))
		for j, t := range sl.Tiles {
			l.Data[j] = tmxGID(t)
		}
		m.tileLayers.put(l.Name, l)
	}

	for _, og := range src.ObjectGroups {
		l := &ObjectLayer{
			Layer: Layer{
				Name:    strings.ToLower(og.Name),
				X:       float64(og.OffsetX),
				Y:       float64(og.OffsetY),
				Width:   src.Width,
				Height:  src.Height,
				Opacity: float64(og.Opacity),
				Visible: og.Visible,
			},
		}
		l.Objects = make([]MapObject, 0, len(og.Objects))
		for _, so := range og.Objects {
			typ := so.Class
			if typ == "" {
				typ = so.Type //nolint:staticcheck // pre-1.9 maps use type=
			}
			l.Objects = append(l.Objects, MapObject{
				ID:         int(so.ID),
				Name:       so.Name,
				Type:       typ,
				X:          so.X,
				Y:          so.Y,
				Width:      so.Width,
				Height:     so.Height,
				Rotation:   so.Rotation,
				Visible:    so.Visible,
				Properties: convertTMXProperties(so.Properties),
			})
		}
		m.objectLayers.put(l.Name, l)
	}
	return m, nil
}

// tmxGID rebuilds the raw layer GID, flag bits included, from go-tiled's
// decoded tile.
func tmxGID(t *tiled.LayerTile) uint32 {
	if t == nil || t.IsNil() || t.Tileset == nil {
		return 0
	}
	gid := t.Tileset.FirstGID + t.ID
	if t.HorizontalFlip {
		gid |= tileFlipH
	}
	if t.VerticalFlip {
		gid |= tileFlipV
	}
	if t.DiagonalFlip {
		gid |= tileFlipD
	}
	return gid
}

// convertTMXProperties maps TMX string-encoded properties onto typed values
// using the declared property type.
func convertTMXProperties(src tiled.Properties) Properties {
	if len(src) == 0 {
		return nil
	}
	props := make(Properties, len(src))
	for _, p := range src {
		switch p.Type {
		case "int", "object":
			if n, err := strconv.Atoi(p.Value); err == nil {
				props[p.Name] = IntValue(n)
				continue
			}
		case "float":
			if f, err := strconv.ParseFloat(p.Value, 64); err == nil {
				props[p.Name] = FloatValue(f)
				continue
			}
		case "bool":
			if b, err := strconv.ParseBool(p.Value); err == nil {
				props[p.Name] = BoolValue(b)
				continue
			}
		}
		props[p.Name] = StringValue(p.Value)
	}
	return props
}
