// Package config handles asciicube configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/taigrr/asciicube/pkg/anim"
	"github.com/taigrr/asciicube/pkg/math3d"
	"github.com/taigrr/asciicube/pkg/render"
)

// Config holds all settings.
type Config struct {
	Viewport  ViewportConfig  `yaml:"viewport"`
	Camera    CameraConfig    `yaml:"camera"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Shading   ShadingConfig   `yaml:"shading"`
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ViewportConfig holds the character grid size.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	Zoom    float64 `yaml:"zoom"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// RotationConfig holds the starting angles and per-frame speeds, in degrees.
type RotationConfig struct {
	Speed   []float64 `yaml:"speed"`   // X, Y, Z
	Initial []float64 `yaml:"initial"` // X, Y, Z
	SpinUp  bool      `yaml:"spin_up"`
}

// ShadingConfig holds glyph and lighting settings.
type ShadingConfig struct {
	Glyphs  string    `yaml:"glyphs"` // Brightest first
	Outline string    `yaml:"outline"`
	Light   []float64 `yaml:"light"` // Direction, normalized on use
}

// DisplayConfig holds terminal output settings.
type DisplayConfig struct {
	Color     bool         `yaml:"color"`
	AltScreen bool         `yaml:"alt_screen"`
	Colors    ColorsConfig `yaml:"colors"`
}

// ColorsConfig names the ANSI color of each glyph class.
type ColorsConfig struct {
	Bright  string `yaml:"bright"`
	Neutral string `yaml:"neutral"`
	Dark    string `yaml:"dark"`
	Outline string `yaml:"outline"`
}

// AnimationConfig holds frame timing.
type AnimationConfig struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock cube settings.
func Default() *Config {
	speed := anim.DefaultSpeed()
	return &Config{
		Viewport: ViewportConfig{
			Width:  60,
			Height: 30,
		},
		Camera: CameraConfig{
			Zoom: 10,
		},
		Rotation: RotationConfig{
			Speed:   speed[:],
			Initial: []float64{0, 0, 0},
			SpinUp:  false,
		},
		Shading: ShadingConfig{
			Glyphs:  render.DefaultShades().String(),
			Outline: string(render.DefaultOutline),
			Light:   []float64{1, 1, -1},
		},
		Display: DisplayConfig{
			Color:     true,
			AltScreen: true,
			Colors: ColorsConfig{
				Bright:  "bright_red",
				Neutral: "bright_green",
				Dark:    "bright_blue",
				Outline: "bright_yellow",
			},
		},
		Animation: AnimationConfig{
			FrameDelay: anim.DefaultFrameDelay,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the renderer cannot use and repairs the ones it
// can. Each repair is described in the returned warnings.
func (c *Config) Validate() (warnings []string, err error) {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d: width and height must be positive", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Camera.Zoom == 0 {
		errs = append(errs, errors.New("camera zoom must not be zero"))
	}
	if c.Animation.FrameDelay <= 0 {
		errs = append(errs, fmt.Errorf("frame delay %v must be positive", c.Animation.FrameDelay))
	}
	if len(c.Rotation.Speed) != 3 {
		errs = append(errs, fmt.Errorf("rotation speed needs 3 values, got %d", len(c.Rotation.Speed)))
	}
	if len(c.Rotation.Initial) != 3 {
		errs = append(errs, fmt.Errorf("initial rotation needs 3 values, got %d", len(c.Rotation.Initial)))
	}
	if len(c.Shading.Light) != 3 {
		errs = append(errs, fmt.Errorf("light direction needs 3 values, got %d", len(c.Shading.Light)))
	} else if c.Light().IsZero() {
		errs = append(errs, errors.New("light direction must not be zero"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if _, err := render.ParseShades(c.Shading.Glyphs); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v; using %q", err, render.DefaultShades().String()))
		c.Shading.Glyphs = render.DefaultShades().String()
	}
	if n := len([]rune(c.Shading.Outline)); n != 1 {
		warnings = append(warnings, fmt.Sprintf("outline %q: want exactly 1 character, got %d; using %q", c.Shading.Outline, n, string(render.DefaultOutline)))
		c.Shading.Outline = string(render.DefaultOutline)
	}

	defaults := Default().Display.Colors
	for _, cc := range []struct {
		name     string
		value    *string
		fallback string
	}{
		{"bright", &c.Display.Colors.Bright, defaults.Bright},
		{"neutral", &c.Display.Colors.Neutral, defaults.Neutral},
		{"dark", &c.Display.Colors.Dark, defaults.Dark},
		{"outline", &c.Display.Colors.Outline, defaults.Outline},
	} {
		if _, ok := render.ColorByName(*cc.value); !ok {
			warnings = append(warnings, fmt.Sprintf("unknown %s color %q; using %s", cc.name, *cc.value, cc.fallback))
			*cc.value = cc.fallback
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log level %q; using info", c.Logging.Level))
		c.Logging.Level = "info"
	}
	return warnings, nil
}

// Shades returns the glyph set, falling back to the default one.
func (c *Config) Shades() render.Shades {
	s, err := render.ParseShades(c.Shading.Glyphs)
	if err != nil {
		return render.DefaultShades()
	}
	return s
}

// Outline returns the outline glyph.
func (c *Config) Outline() rune {
	r := []rune(c.Shading.Outline)
	if len(r) != 1 {
		return render.DefaultOutline
	}
	return r[0]
}

// Light returns the configured light direction, not normalized.
func (c *Config) Light() math3d.Vec3 {
	if len(c.Shading.Light) != 3 {
		return math3d.Zero3()
	}
	return math3d.V3(c.Shading.Light[0], c.Shading.Light[1], c.Shading.Light[2])
}

// Projector returns the projector for the viewport and camera.
func (c *Config) Projector() render.Projector {
	p := render.NewProjector(c.Viewport.Width, c.Viewport.Height, c.Camera.Zoom)
	p.OffsetX = c.Camera.OffsetX
	p.OffsetY = c.Camera.OffsetY
	return p
}

// RotationState returns the starting rotation.
func (c *Config) RotationState() anim.RotationState {
	var initial, speed [3]float64
	copy(initial[:], c.Rotation.Initial)
	copy(speed[:], c.Rotation.Speed)
	return anim.NewRotationState(initial, speed)
}

// Palette returns the glyph colors, or nil when color is off.
func (c *Config) Palette() *render.Palette {
	if !c.Display.Color {
		return nil
	}
	p := render.DefaultPalette(c.Shades(), c.Outline())
	if col, ok := render.ColorByName(c.Display.Colors.Bright); ok {
		p.Bright = col
	}
	if col, ok := render.ColorByName(c.Display.Colors.Neutral); ok {
		p.Mid = col
	}
	if col, ok := render.ColorByName(c.Display.Colors.Dark); ok {
		p.Dark = col
	}
	if col, ok := render.ColorByName(c.Display.Colors.Outline); ok {
		p.OutlineFg = col
	}
	return &p
}
