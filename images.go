package tmj

import (
	"errors"
	"fmt"
	"io/fs"

	// Atlas images are almost always PNG; register the decoder so
	// ebitenutil.NewImageFromReader can read them.
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader loads tileset atlas images. A missing image must be reported
// with an error that wraps fs.ErrNotExist or ErrImageNotFound.
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// ImageLoaderFunc adapts a function to the ImageLoader interface.
type ImageLoaderFunc func(path string) (*ebiten.Image, error)

// LoadImage implements ImageLoader.
func (f ImageLoaderFunc) LoadImage(path string) (*ebiten.Image, error) {
	return f(path)
}

// FSImageLoader decodes images from a file system, typically an embed.FS or
// os.DirFS.
type FSImageLoader struct {
	FS fs.FS
}

// LoadImage implements ImageLoader.
func (l FSImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	f, err := l.FS.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
