package tmj

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a Tiled JSON map from the file system configured by opts
// (os.DirFS(Config.AssetRoot) by default). Tileset image paths are resolved
// relative to the map file. Any missing or mistyped required field fails the
// whole load with a *StructuralError; no partial map is returned.
//
// name is normally slash-separated and relative to AssetRoot. Absolute paths,
// paths leaving AssetRoot with "..", and OS-specific separators are also
// accepted: the map and its images are then read from the directory holding
// the map file.
func Load(name string, opts ...Option) (*TileMap, error) {
	base := newLoadOptions(nil, opts)
	fsys := base.assetFS()
	if !fs.ValidPath(name) {
		dir := filepath.Dir(name)
		if !filepath.IsAbs(dir) {
			root := base.cfg.AssetRoot
			if root == "" {
				root = "."
			}
			dir = filepath.Join(root, dir)
		}
		fsys, name = os.DirFS(dir), filepath.Base(name)
	}
	return loadFS(fsys, name, newLoadOptions(fsys, opts))
}

// LoadFS is like Load but reads the map and its images from fsys.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*TileMap, error) {
	return loadFS(fsys, name, newLoadOptions(fsys, opts))
}

// Decode parses map JSON already in memory. Image paths are passed to the
// image loader unchanged.
func Decode(data []byte, opts ...Option) (*TileMap, error) {
	return decode(data, "", newLoadOptions(nil, opts))
}

func loadFS(fsys fs.FS, name string, o *loadOptions) (*TileMap, error) {
	if !strings.EqualFold(path.Ext(name), ".json") {
		return nil, &StructuralError{Path: name, Err: ErrNotJSON}
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("tmj: read map: %w", err)
	}
	return decode(data, path.Dir(name), o)
}

func decode(data []byte, dir string, o *loadOptions) (*TileMap, error) {
	root, err := decodeObject(data, "")
	if err != nil {
		return nil, err
	}
	d := &decoder{opts: o, dir: dir}
	return d.tileMap(root)
}

type decoder struct {
	opts *loadOptions
	dir  string // directory of the map file, "" when decoding bytes
}

func (d *decoder) tileMap(root object) (*TileMap, error) {
	var (
		w, h, tw, th int
		orient       string
		layers       []json.RawMessage
		sets         []json.RawMessage
	)
	if err := root.require(
		field("width", &w), field("height", &h),
		field("tilewidth", &tw), field("tileheight", &th),
		field("orientation", &orient),
		field("layers", &layers), field("tilesets", &sets),
	); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name string
		v    int
	}{{"width", w}, {"height", h}, {"tilewidth", tw}, {"tileheight", th}} {
		if f.v <= 0 {
			return nil, invalid(f.name, "must be positive, got %d", f.v)
		}
	}
	orientation, ok := parseOrientation(orient)
	if !ok {
		return nil, invalid("orientation", "unsupported orientation %q", orient)
	}
	props, err := parseProperties(root.optional("properties"), "properties")
	if err != nil {
		return nil, err
	}

	tilesets := make([]*Tileset, 0, len(sets))
	for i, raw := range sets {
		ts, err := d.tileset(raw, fmt.Sprintf("tilesets[%d]", i))
		if err != nil {
			return nil, err
		}
		tilesets = append(tilesets, ts)
	}

	m := newTileMap(d.opts, tilesets)
	m.Width, m.Height = w, h
	m.TileWidth, m.TileHeight = tw, th
	m.Orientation = orientation
	m.Properties = props

	for i, raw := range layers {
		if err := d.layer(m, raw, fmt.Sprintf("layers[%d]", i)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (d *decoder) layer(m *TileMap, raw json.RawMessage, p string) error {
	obj, err := decodeObject(raw, p)
	if err != nil {
		return err
	}
	var kind string
	if err := obj.require(field("type", &kind)); err != nil {
		return err
	}

	switch kind {
	case "tilelayer":
		l := &TileLayer{}
		if err := obj.require(layerFields(&l.Layer, field("data", &l.Data))...); err != nil {
			return err
		}
		if err := checkLayer(&l.Layer, p); err != nil {
			return err
		}
		if l.Width < 0 || l.Height < 0 {
			return invalid(p, "negative grid size %dx%d", l.Width, l.Height)
		}
		if n := len(l.Data); n != l.Width*l.Height || n != m.Width*m.Height {
			return &StructuralError{
				Path: p + ".data",
				Err: fmt.Errorf("%w: got %d, layer grid %dx%d, map grid %dx%d",
					ErrDataLength, n, l.Width, l.Height, m.Width, m.Height),
			}
		}
		if d.opts.debug() {
			debugCheckLayerGrid(m, l)
		}
		m.tileLayers.put(l.Name, l)

	case "objectgroup":
		l := &ObjectLayer{}
		var objects []json.RawMessage
		if err := obj.require(layerFields(&l.Layer, field("objects", &objects))...); err != nil {
			return err
		}
		if err := checkLayer(&l.Layer, p); err != nil {
			return err
		}
		l.Objects = make([]MapObject, 0, len(objects))
		for i, raw := range objects {
			mo, err := mapObject(raw, fmt.Sprintf("%s.objects[%d]", p, i))
			if err != nil {
				return err
			}
			l.Objects = append(l.Objects, mo)
		}
		m.objectLayers.put(l.Name, l)

	default:
		if d.opts.debug() {
			debugf("skipping %s: unsupported layer type %q", p, kind)
		}
	}
	return nil
}

// layerFields lists the attributes every layer kind must carry, plus extra.
func layerFields(l *Layer, extra fieldSpec) []fieldSpec {
	return []fieldSpec{
		field("name", &l.Name),
		field("opacity", &l.Opacity),
		field("visible", &l.Visible),
		field("width", &l.Width),
		field("height", &l.Height),
		field("x", &l.X),
		field("y", &l.Y),
		extra,
	}
}

func checkLayer(l *Layer, p string) error {
	l.Name = strings.ToLower(l.Name)
	if l.Opacity < 0 || l.Opacity > 1 {
		return invalid(p+".opacity", "%v is outside [0,1]", l.Opacity)
	}
	return nil
}

func mapObject(raw json.RawMessage, p string) (MapObject, error) {
	obj, err := decodeObject(raw, p)
	if err != nil {
		return MapObject{}, err
	}
	var mo MapObject
	if err := obj.require(
		field("width", &mo.Width), field("height", &mo.Height),
		field("x", &mo.X), field("y", &mo.Y),
		field("name", &mo.Name), field("visible", &mo.Visible),
	); err != nil {
		return MapObject{}, err
	}
	if err := obj.optionalFields(
		field("id", &mo.ID), field("type", &mo.Type), field("rotation", &mo.Rotation),
	); err != nil {
		return MapObject{}, err
	}
	if mo.Type == "" {
		// Tiled 1.9 renamed "type" to "class".
		if err := obj.optionalFields(field("class", &mo.Type)); err != nil {
			return MapObject{}, err
		}
	}
	mo.Properties, err = parseProperties(obj.optional("properties"), p+".properties")
	if err != nil {
		return MapObject{}, err
	}
	return mo, nil
}

func (d *decoder) tileset(raw json.RawMessage, p string) (*Tileset, error) {
	obj, err := decodeObject(raw, p)
	if err != nil {
		return nil, err
	}
	ts := &Tileset{}
	if err := obj.require(
		field("firstgid", &ts.FirstGID),
		field("image", &ts.Image),
		field("imagewidth", &ts.ImageWidth), field("imageheight", &ts.ImageHeight),
		field("margin", &ts.Margin), field("spacing", &ts.Spacing),
		field("tilewidth", &ts.TileWidth), field("tileheight", &ts.TileHeight),
		field("name", &ts.Name),
	); err != nil {
		return nil, err
	}
	ts.Name = strings.ToLower(ts.Name)

	switch {
	case ts.FirstGID < 1:
		return nil, invalid(p+".firstgid", "must be at least 1")
	case ts.TileWidth <= 0 || ts.TileHeight <= 0:
		return nil, invalid(p, "tile size %dx%d must be positive", ts.TileWidth, ts.TileHeight)
	case ts.ImageWidth <= 0 || ts.ImageHeight <= 0:
		return nil, invalid(p, "image size %dx%d must be positive", ts.ImageWidth, ts.ImageHeight)
	case ts.Margin < 0 || ts.Spacing < 0:
		return nil, invalid(p, "margin and spacing must not be negative")
	case ts.TilesPerRow() < 1 || ts.TilesPerColumn() < 1:
		return nil, invalid(p, "image %dx%d holds no %dx%d tiles",
			ts.ImageWidth, ts.ImageHeight, ts.TileWidth, ts.TileHeight)
	}

	if ts.Properties, err = parseProperties(obj.optional("properties"), p+".properties"); err != nil {
		return nil, err
	}
	if ts.TileProperties, err = tileProperties(obj.optional("tileproperties"), p+".tileproperties"); err != nil {
		return nil, err
	}

	imgPath := ts.Image
	if d.dir != "" {
		imgPath = path.Join(d.dir, ts.Image)
	}
	ts.Atlas, err = d.opts.images.LoadImage(imgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !errors.Is(err, ErrImageNotFound) {
			err = fmt.Errorf("%w: %w", ErrImageNotFound, err)
		}
		return nil, &StructuralError{Path: p + ".image", Err: err}
	}
	if d.opts.debug() {
		debugf("loaded tileset %q firstgid=%d %dx%d tiles from %s",
			ts.Name, ts.FirstGID, ts.TilesPerRow(), ts.TilesPerColumn(), imgPath)
	}
	return ts, nil
}

// tileProperties parses the sparse {"<local index>": {properties}} object.
func tileProperties(raw json.RawMessage, p string) (map[int]Properties, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var bags map[string]json.RawMessage
	if err := json.Unmarshal(raw, &bags); err != nil {
		return nil, invalid(p, "%v", err)
	}
	out := make(map[int]Properties, len(bags))
	for key, bag := range bags {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 {
			return nil, invalid(p, "tile index %q is not a non-negative integer", key)
		}
		props, err := parseProperties(bag, p+"."+key)
		if err != nil {
			return nil, err
		}
		out[idx] = props
	}
	return out, nil
}
