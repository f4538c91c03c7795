package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.hjson")
	contents := `{
		// render resolution
		width: 800
		height: 450
		samples-per-pixel: 128
		output: out.png
	}`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if conf.Width != 800 || conf.Height != 450 {
		t.Errorf("resolution: got %dx%d, expected 800x450", conf.Width, conf.Height)
	}
	if conf.SamplesPerPixel != 128 {
		t.Errorf("samples: got %d, expected 128", conf.SamplesPerPixel)
	}
	if conf.Output != "out.png" {
		t.Errorf("output: got %q, expected out.png", conf.Output)
	}

	// Unset fields keep their defaults
	if conf.MaxDepth != Default().MaxDepth {
		t.Errorf("max depth should default to %d, got %d", Default().MaxDepth, conf.MaxDepth)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	conf, err := Load("no/such/file.hjson")
	if err == nil {
		t.Error("loading a missing file should fail")
	}

	// Defaults still come back so the caller can fall back
	if conf.Width != Default().Width {
		t.Errorf("missing config should return defaults, got width %d", conf.Width)
	}
}

func TestDefaults(t *testing.T) {
	conf := Default()
	if conf.Width <= 0 || conf.Height <= 0 || conf.SamplesPerPixel <= 0 || conf.MaxDepth <= 0 {
		t.Errorf("defaults must be positive: %+v", conf)
	}
	if conf.Output == "" {
		t.Error("default output path must not be empty")
	}
}
