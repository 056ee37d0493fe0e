package tmj

import (
	"fmt"
	"os"
)

// globalDebug enables diagnostic output on stderr for every load. It mirrors
// the most recent SetDebugMode call; Config.Debug never changes it.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, the loader
// reports skipped layer kinds, loaded tilesets, and texture cache misses on
// stderr. Release mode prints nothing.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugf prints a single "[tmj]" prefixed line to stderr. Callers check
// their debug flag first so argument formatting is skipped in release mode.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tmj] "+format+"\n", args...)
}

// debugCheckLayerGrid warns when a tile layer's grid differs from the map grid.
// The materialized positions are computed from the map height, so a mismatch
// usually means the layer was resized in the editor without the map.
func debugCheckLayerGrid(m *TileMap, l *TileLayer) {
	if l.Width != m.Width || l.Height != m.Height {
		_, _ = fmt.Fprintf(os.Stderr, "[tmj] warning: layer %q is %dx%d, map is %dx%d\n",
			l.Name, l.Width, l.Height, m.Width, m.Height)
	}
}
