package config

import (
	"fmt"
	"os"

	"camrig/common"

	"gopkg.in/yaml.v3"
)

// Config holds engine-level configuration loaded from a YAML file.
// Zero-valued fields are replaced with defaults by Load.
type Config struct {
	// Window holds windowing configuration.
	Window WindowConfig `yaml:"window"`

	// Engine holds loop timing and profiling configuration.
	Engine EngineConfig `yaml:"engine"`

	// Camera holds camera and controller tuning.
	Camera CameraConfig `yaml:"camera"`
}

// WindowConfig holds windowing configuration.
type WindowConfig struct {
	// Title is the window title displayed in the title bar.
	Title string `yaml:"title"`

	// Width is the initial window width in pixels.
	Width int `yaml:"width"`

	// Height is the initial window height in pixels.
	Height int `yaml:"height"`
}

// EngineConfig holds loop timing and profiling configuration.
type EngineConfig struct {
	// TickRate is the engine tick rate in ticks per second.
	TickRate float64 `yaml:"tick_rate"`

	// RenderFrameLimit caps the render loop in frames per second. 0 = uncapped.
	RenderFrameLimit float64 `yaml:"render_frame_limit"`

	// Profiling enables performance profiling output to the log.
	Profiling bool `yaml:"profiling"`

	// ClearColor is the render pass clear color as [r, g, b, a] in [0, 1].
	ClearColor []float64 `yaml:"clear_color"`
}

// CameraConfig holds camera and controller tuning.
type CameraConfig struct {
	// FovDegrees is the vertical field of view in degrees.
	FovDegrees float32 `yaml:"fov_degrees"`

	// Near is the near clipping plane distance.
	Near float32 `yaml:"near"`

	// Far is the far clipping plane distance.
	Far float32 `yaml:"far"`

	// Eye is the initial camera position as [x, y, z].
	Eye []float32 `yaml:"eye"`

	// Center is the initial look target as [x, y, z].
	Center []float32 `yaml:"center"`

	// MoveSpeed is the first-person movement speed in world units per second.
	MoveSpeed float32 `yaml:"move_speed"`

	// LookSensitivity scales cursor deltas into look rotation, in radians per pixel.
	LookSensitivity float32 `yaml:"look_sensitivity"`

	// RollStep is the per-tick roll increment in radians.
	RollStep float32 `yaml:"roll_step"`

	// TrackballSensitivity scales cursor deltas for orbit, pan, and zoom,
	// in radians (or world units) per pixel.
	TrackballSensitivity float32 `yaml:"trackball_sensitivity"`
}

// Default returns a Config populated with the engine's default values.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "camrig",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate:         60,
			RenderFrameLimit: 0,
			Profiling:        false,
			ClearColor:       []float64{0.1, 0.1, 0.1, 1.0},
		},
		Camera: CameraConfig{
			FovDegrees:           45,
			Near:                 0.1,
			Far:                  100,
			Eye:                  []float32{0, 0, 5},
			Center:               []float32{0, 0, 0},
			MoveSpeed:            1.0,
			LookSensitivity:      0.01,
			RollStep:             0.001,
			TrackballSensitivity: 0.01,
		},
	}
}

// Load reads and parses a YAML config file, filling any zero-valued fields
// with defaults. A missing file is not an error; the defaults are returned.
//
// Parameters:
//   - path: path to the YAML config file
//
// Returns:
//   - Config: the parsed configuration with defaults applied
//   - error: an error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return merge(cfg, defaults), nil
}

// merge fills zero-valued fields in cfg from defaults.
func merge(cfg, defaults Config) Config {
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, defaults.Window.Title)
	cfg.Window.Width = common.Coalesce(cfg.Window.Width, defaults.Window.Width)
	cfg.Window.Height = common.Coalesce(cfg.Window.Height, defaults.Window.Height)

	cfg.Engine.TickRate = common.Coalesce(cfg.Engine.TickRate, defaults.Engine.TickRate)
	if len(cfg.Engine.ClearColor) != 4 {
		cfg.Engine.ClearColor = defaults.Engine.ClearColor
	}

	cfg.Camera.FovDegrees = common.Coalesce(cfg.Camera.FovDegrees, defaults.Camera.FovDegrees)
	cfg.Camera.Near = common.Coalesce(cfg.Camera.Near, defaults.Camera.Near)
	cfg.Camera.Far = common.Coalesce(cfg.Camera.Far, defaults.Camera.Far)
	if len(cfg.Camera.Eye) != 3 {
		cfg.Camera.Eye = defaults.Camera.Eye
	}
	if len(cfg.Camera.Center) != 3 {
		cfg.Camera.Center = defaults.Camera.Center
	}
	cfg.Camera.MoveSpeed = common.Coalesce(cfg.Camera.MoveSpeed, defaults.Camera.MoveSpeed)
	cfg.Camera.LookSensitivity = common.Coalesce(cfg.Camera.LookSensitivity, defaults.Camera.LookSensitivity)
	cfg.Camera.RollStep = common.Coalesce(cfg.Camera.RollStep, defaults.Camera.RollStep)
	cfg.Camera.TrackballSensitivity = common.Coalesce(cfg.Camera.TrackballSensitivity, defaults.Camera.TrackballSensitivity)

	return cfg
}
