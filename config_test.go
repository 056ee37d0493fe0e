package tmj

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Filter != FilterNearest {
		t.Errorf("Filter = %v, want nearest", cfg.Filter)
	}
	if cfg.AssetRoot != "." {
		t.Errorf("AssetRoot = %q, want .", cfg.AssetRoot)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("filter: linear\nasset_root: assets/maps\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Filter != FilterLinear {
		t.Errorf("Filter = %v, want linear", cfg.Filter)
	}
	if cfg.AssetRoot != "assets/maps" {
		t.Errorf("AssetRoot = %q", cfg.AssetRoot)
	}
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("debug: false\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestParseConfig_BadFilter(t *testing.T) {
	if _, err := ParseConfig([]byte("filter: bicubic\n")); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmj.yaml")
	if err := os.WriteFile(path, []byte("filter: nearest\nasset_root: data\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AssetRoot != "data" || cfg.Filter != FilterNearest {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilterMode_Ebiten(t *testing.T) {
	if FilterLinear.EbitenFilter() == FilterNearest.EbitenFilter() {
		t.Error("linear and nearest map to the same ebiten.Filter")
	}
	if FilterLinear.String() != "linear" || FilterNearest.String() != "nearest" {
		t.Error("unexpected FilterMode strings")
	}
}
