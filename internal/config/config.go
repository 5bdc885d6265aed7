// Package config loads game settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

//go:embed defaults.yaml
var defaultYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    WindowConfig `yaml:"window"`
	TPS       int          `yaml:"tps"`
	AssetPath string       `yaml:"asset_path"`
	Target    TargetConfig `yaml:"target"`
	Colors    ColorConfig  `yaml:"colors"`
	Sound     SoundConfig  `yaml:"sound"`
	Seed      int64        `yaml:"seed"` // 0 = seed from the clock
	LogLevel  string       `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TargetConfig struct {
	Size   int `yaml:"size"`
	Count  int `yaml:"count"`
	Margin int `yaml:"margin"`
}

// ColorConfig holds "#rrggbb" or "#rrggbbaa" strings.
type ColorConfig struct {
	Background string `yaml:"background"`
	Score      string `yaml:"score"`
}

type SoundConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency float64 `yaml:"frequency"`
	LengthMS  int     `yaml:"length_ms"`
}

// Default returns the hardcoded defaults, mirroring defaults.yaml.
func Default() Config {
	return Config{
		Window:    WindowConfig{Width: 800, Height: 600, Title: "Mini Fruit Ninja"},
		TPS:       30,
		AssetPath: "assets/target.png",
		Target:    TargetConfig{Size: 100, Count: 1},
		Colors:    ColorConfig{Background: "#ffffff", Score: "#000000"},
		Sound:     SoundConfig{Enabled: false, Frequency: 660, LengthMS: 80},
		LogLevel:  "info",
	}
}

func (s SoundConfig) Length() time.Duration {
	return time.Duration(s.LengthMS) * time.Millisecond
}

// Overrides carries command-line values. Nil fields leave the config untouched.
type Overrides struct {
	AssetPath *string
	Seed      *int64
	Targets   *int
	Sound     *bool
	LogLevel  *string
}

// Apply copies every set override into c.
func (c *Config) Apply(o Overrides) {
	if o.AssetPath != nil {
		c.AssetPath = *o.AssetPath
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Targets != nil {
		c.Target.Count = *o.Targets
	}
	if o.Sound != nil {
		c.Sound.Enabled = *o.Sound
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
}

// Validate checks that the config describes a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.AssetPath == "" {
		errs = append(errs, errors.New("asset_path is required"))
	}
	if c.Target.Size <= 0 {
		errs = append(errs, fmt.Errorf("target size %d must be positive", c.Target.Size))
	}
	if c.Target.Count < 1 {
		errs = append(errs, fmt.Errorf("target count %d must be at least 1", c.Target.Count))
	}
	if c.Target.Margin < 0 {
		errs = append(errs, fmt.Errorf("target margin %d must not be negative", c.Target.Margin))
	}
	if span := c.Target.Size + 2*c.Target.Margin; span > c.Window.Width || span > c.Window.Height {
		errs = append(errs, fmt.Errorf("target %d with margin %d does not fit %dx%d window",
			c.Target.Size, c.Target.Margin, c.Window.Width, c.Window.Height))
	}
	if _, err := ParseColor(c.Colors.Background); err != nil {
		errs = append(errs, fmt.Errorf("colors.background: %w", err))
	}
	if _, err := ParseColor(c.Colors.Score); err != nil {
		errs = append(errs, fmt.Errorf("colors.score: %w", err))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q: want debug, info, warn, error or fatal", c.LogLevel))
	}
	if c.Sound.Enabled && (c.Sound.Frequency <= 0 || c.Sound.LengthMS <= 0) {
		errs = append(errs, fmt.Errorf("sound frequency %.0f and length %dms must be positive",
			c.Sound.Frequency, c.Sound.LengthMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
