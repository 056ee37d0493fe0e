package tmj

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_LogsLoad(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	output := captureStderr(t, func() {
		m := mustDecode(t, smallMapJSON)
		if _, err := m.GetTileLayer("ground"); err != nil {
			t.Errorf("GetTileLayer: %v", err)
		}
	})

	for _, want := range []string{
		`[tmj] loaded tileset "terrain"`,
		`unsupported layer type "imagelayer"`,
		"cached texture gid=1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in stderr, got: %q", want, output)
		}
	}
}

func TestDebugMode_LayerGridWarning(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	const reshaped = `{
	  "width": 2, "height": 2, "tilewidth": 32, "tileheight": 32,
	  "orientation": "orthogonal",
	  "layers": [
	    {"type": "tilelayer", "name": "strip", "opacity": 1, "visible": true,
	     "width": 4, "height": 1, "x": 0, "y": 0, "data": [1, 1, 1, 1]}
	  ],
	  "tilesets": [
	    {"firstgid": 1, "image": "tiles.png", "imagewidth": 128, "imageheight": 128,
	     "margin": 0, "spacing": 0, "tilewidth": 32, "tileheight": 32, "name": "t"}
	  ]
	}`
	output := captureStderr(t, func() {
		mustDecode(t, reshaped)
	})

	if !strings.Contains(output, `warning: layer "strip" is 4x1, map is 2x2`) {
		t.Errorf("expected layer grid warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ConfigEnables(t *testing.T) {
	SetDebugMode(false)

	cfg := DefaultConfig()
	cfg.Debug = true
	var m *TileMap
	output := captureStderr(t, func() {
		m = mustDecode(t, twoTilesetJSON, WithConfig(cfg))
		if _, err := m.Textures().Get(1); err != nil {
			t.Errorf("Get: %v", err)
		}
	})

	if !strings.Contains(output, "loaded tileset") || !strings.Contains(output, "cached texture gid=1") {
		t.Errorf("expected debug output with Config.Debug set, got: %q", output)
	}
	if globalDebug {
		t.Error("Config.Debug leaked into the package-wide debug flag")
	}
}

func TestDebugMode_ConfigScopedToLoad(t *testing.T) {
	SetDebugMode(false)

	cfg := DefaultConfig()
	cfg.Debug = true
	mustDecode(t, twoTilesetJSON, WithConfig(cfg))

	output := captureStderr(t, func() {
		m := mustDecode(t, twoTilesetJSON)
		if _, err := m.Textures().Get(1); err != nil {
			t.Errorf("Get: %v", err)
		}
	})

	if output != "" {
		t.Errorf("load without Config.Debug wrote to stderr: %q", output)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	SetDebugMode(false)

	output := captureStderr(t, func() {
		m := mustDecode(t, smallMapJSON)
		if _, err := m.GetTileLayer("ground"); err != nil {
			t.Errorf("GetTileLayer: %v", err)
		}
	})

	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}
