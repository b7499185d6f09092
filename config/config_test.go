package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/albertgoncalves/pathrs/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}

	if cfg != config.Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesOnlyNamedFields(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
window:
  width: 800
  height: 600
player:
  accel: 2.5
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	def := config.Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("window = %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Player.Accel != 2.5 {
		t.Fatalf("player accel = %f, want 2.5", cfg.Player.Accel)
	}

	// Everything the file does not name keeps its default.
	if cfg.Window.Title != def.Window.Title {
		t.Fatalf("title = %q, want default %q", cfg.Window.Title, def.Window.Title)
	}
	if cfg.Camera != def.Camera {
		t.Fatalf("camera = %+v, want default %+v", cfg.Camera, def.Camera)
	}
	if cfg.Player.Drag != def.Player.Drag {
		t.Fatalf("player drag = %f, want default %f", cfg.Player.Drag, def.Player.Drag)
	}
	if cfg.Renderer != def.Renderer {
		t.Fatalf("renderer = %+v, want default %+v", cfg.Renderer, def.Renderer)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDefaults(t *testing.T) {

	cfg := config.Default()

	if cfg.Window.Width != 1400 || cfg.Window.Height != 900 {
		t.Fatalf("default window = %dx%d, want 1400x900", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Renderer.InstanceCapacity < 1 {
		t.Fatalf("default instance capacity = %d, want >= 1", cfg.Renderer.InstanceCapacity)
	}
	if cfg.Camera.Drag <= 0 || cfg.Camera.Drag >= 1 {
		t.Fatalf("camera drag = %f, want in (0, 1)", cfg.Camera.Drag)
	}
	if cfg.Player.Drag <= 0 || cfg.Player.Drag >= 1 {
		t.Fatalf("player drag = %f, want in (0, 1)", cfg.Player.Drag)
	}
}
