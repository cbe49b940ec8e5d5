package config

import "flag"

// Flags are the command-line overrides.
type Flags struct {
	Config     string
	Debug      bool
	Level      string
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Tolerance  float64
	Model      string
	NoWatch    bool
}

var cliFlags = RegisterFlags(flag.CommandLine)

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Level, "level", "", "Level to load")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.Float64Var(&f.Tolerance, "tolerance", 0, "Navmesh containment tolerance")
	fs.StringVar(&f.Model, "model", "", "Movement model (accelerate or direct)")
	fs.BoolVar(&f.NoWatch, "no-watch", false, "Disable level hot reload")
	return f
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return cliFlags.Config
}

// apply copies set flags over cfg.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
	}
	if f.Level != "" {
		cfg.Game.Level = f.Level
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Tolerance > 0 {
		cfg.NavMesh.Tolerance = f.Tolerance
	}
	if f.Model != "" {
		cfg.Controller.Model = f.Model
	}
	if f.NoWatch {
		cfg.Data.Watch = false
	}
}
