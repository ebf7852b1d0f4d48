// Package config loads layercam settings from TOML and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/layercam/engine"
	"github.com/lixenwraith/layercam/window"
)

// EnvPrefix namespaces environment overrides, e.g. LAYERCAM_WINDOW_GAP
const EnvPrefix = "LAYERCAM"

// Config holds application configuration
type Config struct {
	Window WindowConfig
	Audio  AudioConfig
	Log    LogConfig
	Input  InputConfig
}

// WindowConfig sizes the primary window and tiles dedicated ones
type WindowConfig struct {
	Width   float64
	Height  float64
	Gap     float64
	OffsetY float64 `mapstructure:"offset_y"`
}

// AudioConfig toggles feedback cues
type AudioConfig struct {
	Enabled bool
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool
}

// InputConfig points at an optional keymap override file
type InputConfig struct {
	Keymap string
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Window: WindowConfig{
			Width:   1280.0 / 3,
			Height:  960.0 / 3,
			Gap:     engine.DefaultGap,
			OffsetY: engine.DefaultOffsetY,
		},
	}
}

// Load reads path (optional) and LAYERCAM_* env vars over the defaults
// An empty path or a missing file yields defaults plus env
func Load(path string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.gap", d.Window.Gap)
	v.SetDefault("window.offset_y", d.Window.OffsetY)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("input.keymap", d.Input.Keymap)

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isMissing(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("window size %gx%g: must be positive", c.Window.Width, c.Window.Height)
	}
	return c, nil
}

// isMissing reports a config file that does not exist
func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}

// Base returns the primary window configuration
func (c Config) Base() window.Config {
	return window.Config{
		Title:  "layercam",
		Width:  c.Window.Width,
		Height: c.Window.Height,
	}
}

// Layout returns the dedicated window tiling
func (c Config) Layout() engine.Layout {
	return engine.Layout{Gap: c.Window.Gap, OffsetY: c.Window.OffsetY}
}
