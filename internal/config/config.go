// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/paperman/internal/engine/character"
	"github.com/Faultbox/paperman/internal/game/controls"
	"github.com/Faultbox/paperman/internal/logger"
	"github.com/Faultbox/paperman/pkg/navmesh"
)

// Config holds all game settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Audio      AudioConfig      `yaml:"audio"`
	Game       GameConfig       `yaml:"game"`
	Controller ControllerConfig `yaml:"controller"`
	NavMesh    NavMeshConfig    `yaml:"navmesh"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and timing settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	TickRate   int  `yaml:"tick_rate"` // simulation ticks per second
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// GameConfig selects what to play.
type GameConfig struct {
	Level     string `yaml:"level"`
	Character string `yaml:"character"`
	ShowFPS   bool   `yaml:"show_fps"`
	// ShowBounds draws the navmesh bounding box in the windowed host.
	ShowBounds    bool   `yaml:"show_bounds"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// ControllerConfig holds the character controller constants.
type ControllerConfig struct {
	Model        string    `yaml:"model"` // "accelerate" or "direct"
	Speed        float32   `yaml:"speed"`
	Acceleration float32   `yaml:"acceleration"`
	Friction     float32   `yaml:"friction"`
	MaxSpeed     float32   `yaml:"max_speed"`
	RunThreshold float32   `yaml:"run_threshold"`
	Keymap       KeyConfig `yaml:"keymap"`
}

// KeyConfig names the movement keys, comma separated. Names follow SDL key
// names ("Left", "A", ...) and are matched case-insensitively.
type KeyConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// NavMeshConfig holds navmesh settings.
type NavMeshConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

// DataConfig holds game data locations.
type DataConfig struct {
	AssetPaths []string `yaml:"asset_paths"` // searched last-first
	Watch      bool     `yaml:"watch"`       // reload levels on change
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			TickRate: 60,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
		},
		Game: GameConfig{
			Level:         "building",
			Character:     "paperman",
			ScreenshotDir: "screenshots",
		},
		Controller: ControllerConfig{
			Model:        character.ModelAccelerate.String(),
			Speed:        character.DefaultSpeed,
			Acceleration: character.DefaultAcceleration,
			Friction:     character.DefaultFriction,
			MaxSpeed:     character.DefaultMaxSpeed,
			Keymap: KeyConfig{
				Left:  "Left,A",
				Right: "Right,D",
			},
		},
		NavMesh: NavMeshConfig{
			Tolerance: navmesh.DefaultTolerance,
		},
		Data: DataConfig{
			AssetPaths: []string{"data"},
			Watch:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	var errs []error
	if _, err := character.ParseModel(c.Controller.Model); err != nil {
		errs = append(errs, err)
	}
	if c.NavMesh.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("navmesh tolerance must be positive, got %v", c.NavMesh.Tolerance))
	}
	for _, f := range []struct {
		name  string
		value float32
	}{
		{"speed", c.Controller.Speed},
		{"acceleration", c.Controller.Acceleration},
		{"friction", c.Controller.Friction},
		{"max_speed", c.Controller.MaxSpeed},
		{"run_threshold", c.Controller.RunThreshold},
	} {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("controller %s must not be negative, got %v", f.name, f.value))
		}
	}
	if c.Graphics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Graphics.TickRate))
	}
	if _, err := c.Controller.Keymap.Parse(); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Game.Level == "" {
		errs = append(errs, errors.New("no level configured"))
	}
	return multierr.Combine(errs...)
}

// Params converts the controller section. Call Validate first.
func (c *ControllerConfig) Params() character.Params {
	model, _ := character.ParseModel(c.Model)
	return character.Params{
		Model:        model,
		Speed:        c.Speed,
		Acceleration: c.Acceleration,
		Friction:     c.Friction,
		MaxSpeed:     c.MaxSpeed,
		RunThreshold: c.RunThreshold,
	}
}

// Parse resolves the key names.
func (k KeyConfig) Parse() (controls.Keymap, error) {
	return controls.ParseKeymap(k.Left, k.Right)
}
