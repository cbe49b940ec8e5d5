package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/paperman/internal/engine/character"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Game.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir screenshots, got %q", cfg.Game.ScreenshotDir)
	}
	if cfg.Graphics.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %d", cfg.Graphics.TickRate)
	}
	if cfg.Game.Level != "building" || cfg.Game.Character != "paperman" {
		t.Errorf("expected building/paperman, got %s/%s", cfg.Game.Level, cfg.Game.Character)
	}
	if cfg.Controller.Model != "accelerate" {
		t.Errorf("expected accelerate model, got %s", cfg.Controller.Model)
	}
	if cfg.Controller.Keymap.Left != "Left,A" || cfg.Controller.Keymap.Right != "Right,D" {
		t.Errorf("unexpected keymap %+v", cfg.Controller.Keymap)
	}
	if cfg.NavMesh.Tolerance != 1.0 {
		t.Errorf("expected tolerance 1.0, got %v", cfg.NavMesh.Tolerance)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.LogFile != "" {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  tick_rate: 120

audio:
  master_volume: 0.5
  muted: true

game:
  level: tower
  show_fps: true

controller:
  model: direct
  speed: 4
  run_threshold: 2.5
  keymap:
    left: A
    right: D

navmesh:
  tolerance: 0.01

data:
  asset_paths: [base, mods]
  watch: false

logging:
  level: debug
  log_file: paperman.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || !cfg.Graphics.Fullscreen || cfg.Graphics.TickRate != 120 {
		t.Errorf("graphics = %+v", cfg.Graphics)
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync default lost on merge")
	}
	if cfg.Audio.MasterVolume != 0.5 || !cfg.Audio.Muted {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Game.Level != "tower" || cfg.Game.Character != "paperman" {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Controller.Keymap.Left != "A" || cfg.Controller.Keymap.Right != "D" {
		t.Errorf("keymap = %+v", cfg.Controller.Keymap)
	}
	if cfg.NavMesh.Tolerance != 0.01 {
		t.Errorf("tolerance = %v", cfg.NavMesh.Tolerance)
	}
	if len(cfg.Data.AssetPaths) != 2 || cfg.Data.Watch {
		t.Errorf("data = %+v", cfg.Data)
	}

	p := cfg.Controller.Params()
	if p.Model != character.ModelDirect || p.Speed != 4 || p.RunThreshold != 2.5 {
		t.Errorf("Params() = %+v", p)
	}
	if p.Friction != character.DefaultFriction {
		t.Errorf("Params().Friction = %v, want default", p.Friction)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown model", func(c *Config) { c.Controller.Model = "teleport" }},
		{"zero tolerance", func(c *Config) { c.NavMesh.Tolerance = 0 }},
		{"negative tolerance", func(c *Config) { c.NavMesh.Tolerance = -1 }},
		{"negative speed", func(c *Config) { c.Controller.Speed = -1 }},
		{"negative friction", func(c *Config) { c.Controller.Friction = -0.1 }},
		{"zero tick rate", func(c *Config) { c.Graphics.TickRate = 0 }},
		{"missing key", func(c *Config) { c.Controller.Keymap.Right = "" }},
		{"key bound twice", func(c *Config) { c.Controller.Keymap.Right = "left" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"no level", func(c *Config) { c.Game.Level = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("config.yaml", []byte("graphics:\n  width: 800\n"), 0o644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{"debug", []string{"-debug"}, func(t *testing.T, cfg *Config) {
			if cfg.Logging.Level != "debug" || !cfg.Game.ShowFPS {
				t.Errorf("debug flag: level %s show_fps %v", cfg.Logging.Level, cfg.Game.ShowFPS)
			}
		}},
		{"level", []string{"-level", "tower"}, func(t *testing.T, cfg *Config) {
			if cfg.Game.Level != "tower" {
				t.Errorf("expected level tower, got %s", cfg.Game.Level)
			}
		}},
		{"fullscreen", []string{"-fullscreen"}, func(t *testing.T, cfg *Config) {
			if !cfg.Graphics.Fullscreen {
				t.Error("expected fullscreen")
			}
		}},
		{"windowed", []string{"-windowed"}, func(t *testing.T, cfg *Config) {
			if cfg.Graphics.Fullscreen {
				t.Error("expected windowed")
			}
		}},
		{"size", []string{"-width", "2560", "-height", "1440"}, func(t *testing.T, cfg *Config) {
			if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
				t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
			}
		}},
		{"tolerance and model", []string{"-tolerance", "0.5", "-model", "direct"}, func(t *testing.T, cfg *Config) {
			if cfg.NavMesh.Tolerance != 0.5 || cfg.Controller.Model != "direct" {
				t.Errorf("tolerance %v model %s", cfg.NavMesh.Tolerance, cfg.Controller.Model)
			}
		}},
		{"no watch", []string{"-no-watch"}, func(t *testing.T, cfg *Config) {
			if cfg.Data.Watch {
				t.Error("expected watch disabled")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			flags := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%v) failed: %v", tt.args, err)
			}

			cfg := Default()
			flags.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadWith(&Flags{Config: configPath, Width: 1920})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("navmesh:\n  tolerance: -2\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadWith(&Flags{Config: configPath}); err == nil {
		t.Error("LoadWith accepted a negative tolerance")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Game.Level = "tower"
	cfg.Controller.RunThreshold = 0.4

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Game.Level != "tower" || loaded.Controller.RunThreshold != 0.4 {
		t.Errorf("saved config = %+v %+v", loaded.Game, loaded.Controller)
	}
}
