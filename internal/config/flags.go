package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the command-line overrides. Only flags the user actually set
// are applied, so a flag left at its zero value never hides a file setting.
type Flags struct {
	ConfigPath string

	Width   int
	Height  int
	Zoom    float64
	SpeedX  float64
	SpeedY  float64
	SpeedZ  float64
	Shades  string
	Outline string
	LightX  float64
	LightY  float64
	LightZ  float64
	NoColor bool
	Delay   time.Duration
	SpinUp  bool

	LogLevel string
	LogFile  string

	fs *pflag.FlagSet
}

// Register adds the flags to fs. Call it once, before parsing.
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.fs = fs
	def := Default()

	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.IntVar(&f.Width, "width", def.Viewport.Width, "Viewport width in characters")
	fs.IntVar(&f.Height, "height", def.Viewport.Height, "Viewport height in characters")
	fs.Float64Var(&f.Zoom, "zoom", def.Camera.Zoom, "Perspective zoom factor")
	fs.Float64Var(&f.SpeedX, "speed-x", def.Rotation.Speed[0], "Rotation around X in degrees per frame")
	fs.Float64Var(&f.SpeedY, "speed-y", def.Rotation.Speed[1], "Rotation around Y in degrees per frame")
	fs.Float64Var(&f.SpeedZ, "speed-z", def.Rotation.Speed[2], "Rotation around Z in degrees per frame")
	fs.StringVar(&f.Shades, "shades", def.Shading.Glyphs, "Shade glyphs, brightest first (3 characters)")
	fs.StringVar(&f.Outline, "outline", def.Shading.Outline, "Outline glyph")
	fs.Float64Var(&f.LightX, "light-x", def.Shading.Light[0], "Light direction X")
	fs.Float64Var(&f.LightY, "light-y", def.Shading.Light[1], "Light direction Y")
	fs.Float64Var(&f.LightZ, "light-z", def.Shading.Light[2], "Light direction Z")
	fs.BoolVar(&f.NoColor, "no-color", false, "Draw without colors")
	fs.DurationVar(&f.Delay, "delay", def.Animation.FrameDelay, "Delay between frames")
	fs.BoolVar(&f.SpinUp, "spin-up", def.Rotation.SpinUp, "Ease the rotation in from standstill")
	fs.StringVar(&f.LogLevel, "log-level", def.Logging.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", def.Logging.LogFile, "Write logs to this file")
}

// changed reports whether the user set the named flag.
func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.changed("width") {
		cfg.Viewport.Width = f.Width
	}
	if f.changed("height") {
		cfg.Viewport.Height = f.Height
	}
	if f.changed("zoom") {
		cfg.Camera.Zoom = f.Zoom
	}

	setAxis(&cfg.Rotation.Speed, 0, f.SpeedX, f.changed("speed-x"))
	setAxis(&cfg.Rotation.Speed, 1, f.SpeedY, f.changed("speed-y"))
	setAxis(&cfg.Rotation.Speed, 2, f.SpeedZ, f.changed("speed-z"))
	setAxis(&cfg.Shading.Light, 0, f.LightX, f.changed("light-x"))
	setAxis(&cfg.Shading.Light, 1, f.LightY, f.changed("light-y"))
	setAxis(&cfg.Shading.Light, 2, f.LightZ, f.changed("light-z"))

	if f.changed("shades") {
		cfg.Shading.Glyphs = f.Shades
	}
	if f.changed("outline") {
		cfg.Shading.Outline = f.Outline
	}
	if f.NoColor {
		cfg.Display.Color = false
	}
	if f.changed("delay") {
		cfg.Animation.FrameDelay = f.Delay
	}
	if f.changed("spin-up") {
		cfg.Rotation.SpinUp = f.SpinUp
	}
	if f.changed("log-level") {
		cfg.Logging.Level = f.LogLevel
	}
	if f.changed("log-file") {
		cfg.Logging.LogFile = f.LogFile
	}
}

// setAxis overwrites component i of a 3-vector setting, growing a short
// file value so the override still lands.
func setAxis(v *[]float64, i int, value float64, set bool) {
	if !set {
		return
	}
	if len(*v) < 3 {
		grown := make([]float64, 3)
		copy(grown, *v)
		*v = grown
	}
	(*v)[i] = value
}
