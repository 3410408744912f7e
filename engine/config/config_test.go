package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camrig.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load returned an error for a missing file: %v", err)
	}
	if cfg.Window.Title != "camrig" || cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Fatalf("window defaults = %+v", cfg.Window)
	}
	if cfg.Engine.TickRate != 60 {
		t.Fatalf("tick rate = %v, want 60", cfg.Engine.TickRate)
	}
	if cfg.Camera.FovDegrees != 45 || cfg.Camera.MoveSpeed != 1.0 {
		t.Fatalf("camera defaults = %+v", cfg.Camera)
	}
}

func TestLoadPartialFileMergesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
window:
  title: "orbit viewer"
camera:
  move_speed: 4.5
  eye: [0, 2, 12]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Title != "orbit viewer" {
		t.Fatalf("title = %q, want overridden value", cfg.Window.Title)
	}
	// Fields absent from the file fall back to defaults.
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Fatalf("window size = %dx%d, want defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.MoveSpeed != 4.5 {
		t.Fatalf("move speed = %v, want 4.5", cfg.Camera.MoveSpeed)
	}
	if len(cfg.Camera.Eye) != 3 || cfg.Camera.Eye[1] != 2 || cfg.Camera.Eye[2] != 12 {
		t.Fatalf("eye = %v, want [0 2 12]", cfg.Camera.Eye)
	}
	if cfg.Camera.LookSensitivity != 0.01 || cfg.Camera.RollStep != 0.001 {
		t.Fatalf("controller tuning = %+v, want defaults", cfg.Camera)
	}
}

func TestLoadFullOverride(t *testing.T) {
	path := writeConfigFile(t, `
window:
  title: "bench"
  width: 1920
  height: 1080
engine:
  tick_rate: 120
  render_frame_limit: 144
  profiling: true
  clear_color: [0, 0, 0, 1]
camera:
  fov_degrees: 60
  near: 0.5
  far: 500
  center: [1, 0, 0]
  trackball_sensitivity: 0.02
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Engine.TickRate != 120 || cfg.Engine.RenderFrameLimit != 144 || !cfg.Engine.Profiling {
		t.Fatalf("engine = %+v", cfg.Engine)
	}
	if len(cfg.Engine.ClearColor) != 4 || cfg.Engine.ClearColor[3] != 1 {
		t.Fatalf("clear color = %v", cfg.Engine.ClearColor)
	}
	if cfg.Camera.FovDegrees != 60 || cfg.Camera.Near != 0.5 || cfg.Camera.Far != 500 {
		t.Fatalf("camera = %+v", cfg.Camera)
	}
	if cfg.Camera.Center[0] != 1 {
		t.Fatalf("center = %v, want [1 0 0]", cfg.Camera.Center)
	}
	if cfg.Camera.TrackballSensitivity != 0.02 {
		t.Fatalf("trackball sensitivity = %v, want 0.02", cfg.Camera.TrackballSensitivity)
	}
}

func TestLoadMalformedClearColorFallsBack(t *testing.T) {
	path := writeConfigFile(t, `
engine:
  clear_color: [1, 0]
camera:
  eye: [5]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Engine.ClearColor) != 4 {
		t.Fatalf("clear color = %v, want default length 4", cfg.Engine.ClearColor)
	}
	if len(cfg.Camera.Eye) != 3 || cfg.Camera.Eye[2] != 5 {
		t.Fatalf("eye = %v, want default [0 0 5]", cfg.Camera.Eye)
	}
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	path := writeConfigFile(t, "window: [not: a: mapping\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load did not report a parse error")
	}
}
