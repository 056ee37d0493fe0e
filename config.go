package tmj

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds loader settings. The zero value is usable: nearest filtering,
// assets resolved against the current directory, debug output off.
type Config struct {
	// Filter is applied to every texture the map produces.
	Filter FilterMode `yaml:"filter"`

	// AssetRoot is the directory Load reads maps and images from when no
	// file system is supplied. Empty means ".".
	AssetRoot string `yaml:"asset_root"`

	// Debug turns on diagnostic output for loads using this config, and for
	// the texture caches of the maps they return. See also SetDebugMode.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default loader configuration.
func DefaultConfig() Config {
	return Config{
		Filter:    FilterNearest,
		AssetRoot: ".",
	}
}

// LoadConfig reads a YAML config file. Keys not present keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tmj: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("tmj: parse config: %w", err)
	}
	return cfg, nil
}

// Option configures a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	cfg      Config
	images   ImageLoader
	resolver RectResolver
}

func newLoadOptions(fsys fs.FS, opts []Option) *loadOptions {
	o := &loadOptions{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	if o.images == nil {
		if fsys == nil {
			fsys = o.assetFS()
		}
		o.images = FSImageLoader{FS: fsys}
	}
	if o.resolver == nil {
		o.resolver = AtlasResolver{}
	}
	return o
}

// assetFS is the file system rooted at AssetRoot.
func (o *loadOptions) assetFS() fs.FS {
	root := o.cfg.AssetRoot
	if root == "" {
		root = "."
	}
	return os.DirFS(root)
}

// debug reports whether this load should print diagnostics. Config.Debug
// applies to one load only; SetDebugMode applies to all of them.
func (o *loadOptions) debug() bool {
	return globalDebug || o.cfg.Debug
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *loadOptions) { o.cfg = cfg }
}

// WithFilter sets the texture filtering mode.
func WithFilter(f FilterMode) Option {
	return func(o *loadOptions) { o.cfg.Filter = f }
}

// WithImageLoader overrides how atlas images are loaded. Without it, images
// are decoded from the same file system as the map.
func WithImageLoader(l ImageLoader) Option {
	return func(o *loadOptions) { o.images = l }
}

// WithResolver overrides the atlas rectangle resolver.
func WithResolver(r RectResolver) Option {
	return func(o *loadOptions) { o.resolver = r }
}
