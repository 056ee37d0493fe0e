package tmj

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a tile's view into its tileset atlas.
type Texture struct {
	// Image is a SubImage of Atlas covering exactly one tile.
	Image  *ebiten.Image
	Atlas  *ebiten.Image
	Rect   AtlasRect
	Filter FilterMode
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.Rect.Pixels.Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.Rect.Pixels.Dy() }

// TextureCache memoizes tile textures by absolute GID. Entries live as long
// as the cache; there is no eviction.
type TextureCache struct {
	mu       sync.Mutex
	textures map[uint32]*Texture
	catalog  *tilesetCatalog
	resolver RectResolver
	filter   FilterMode
	debug    bool
}

func newTextureCache(catalog *tilesetCatalog, resolver RectResolver, filter FilterMode, debug bool) *TextureCache {
	if resolver == nil {
		resolver = AtlasResolver{}
	}
	return &TextureCache{
		textures: make(map[uint32]*Texture),
		catalog:  catalog,
		resolver: resolver,
		filter:   filter,
		debug:    debug,
	}
}

// Get returns the texture for gid (flag bits must already be stripped),
// building and caching it on first use. A GID past the last tile of the
// tileset below it is owned by no tileset. Repeated calls return the same
// pointer. The lookup and insert happen under one lock, so concurrent
// misses for a GID build a single texture.
func (c *TextureCache) Get(gid uint32) (*Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tex, ok := c.textures[gid]; ok {
		return tex, nil
	}

	ts := c.catalog.forGID(gid)
	if ts == nil || !ts.Contains(gid) {
		return nil, fmt.Errorf("tmj: gid %d: %w", gid, ErrNoTileset)
	}

	rect := c.resolver.RectFor(ts, ts.LocalIndex(gid))
	tex := &Texture{
		Atlas:  ts.Atlas,
		Rect:   rect,
		Filter: c.filter,
	}
	if ts.Atlas != nil {
		tex.Image = ts.Atlas.SubImage(rect.Pixels).(*ebiten.Image)
	}
	c.textures[gid] = tex

	if globalDebug || c.debug {
		debugf("cached texture gid=%d tileset=%q px=%v", gid, ts.Name, rect.Pixels)
	}
	return tex, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.textures)
}
