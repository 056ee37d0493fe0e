// Package tmj loads tile maps saved by the [Tiled] editor for [Ebitengine].
//
// A map file describes a grid of tiles, one or more tile layers holding a
// global tile ID (GID) per cell, object layers of free-standing rectangles
// and points, and the tilesets whose atlas images the tiles are cut from.
// tmj validates the whole document up front and reports the first
// structural problem with the JSON path that caused it.
//
// # Quick start
//
//	m, err := tmj.Load("maps/level1.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ground, err := m.GetTileLayer("ground")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range ground.Tiles {
//		screen.DrawImage(t.Texture.Image, opts(t))
//	}
//
// Maps can also be read from any [io/fs.FS] with [LoadFS], decoded from
// memory with [Decode], or converted from the XML format with [LoadTMX].
//
// # Tiles and textures
//
// A GID selects the tileset with the largest first GID not above it. The
// top three bits of a layer GID are Tiled's flip flags; they are reported
// in [Tile.Flip] and never affect which texture is used.
//
// Textures are sub-images of the tileset atlas and are built lazily by the
// map's [TextureCache], once per GID. [AtlasRect] carries both the pixel
// rectangle used for the sub-image and a normalized UV rectangle with a
// bottom-left origin for renderers that want one.
//
// # Coordinates
//
// [LayerNode] positions place tiles for center-anchored sprites in a
// Y-up space whose origin is the map's bottom-left corner. Object layers
// keep the map file's top-left pixel coordinates.
//
// # Configuration
//
// Loader behaviour is set with functional options ([WithFilter],
// [WithImageLoader], [WithResolver]) or a YAML file read by [LoadConfig]
// and passed via [WithConfig].
//
// # Companion packages
//
// tmj/collision builds [resolv] spaces from object layers and tile
// properties. tmj/ecs spawns map objects into a [Donburi] world.
//
// [Tiled]: https://www.mapeditor.org
// [Ebitengine]: https://ebitengine.org
// [resolv]: https://github.com/solarlune/resolv
// [Donburi]: https://github.com/yohamta/donburi
package tmj
