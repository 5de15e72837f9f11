package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0..1
	SampleRate int     `yaml:"sample_rate"` // e.g. 44100
}

type Window struct {
	Fullscreen bool `yaml:"fullscreen"`
	Scale      int  `yaml:"scale"`
}

// Settings are host-level options; the animation itself is fixed by the constants above.
type Settings struct {
	LogLevel string `yaml:"log_level"`
	DebugHUD bool   `yaml:"debug_hud"`
	Audio    Audio  `yaml:"audio"`
	Window   Window `yaml:"window"`
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel: "info",
		Audio: Audio{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Window: Window{Scale: 1},
	}
}

// Load reads YAML settings on top of the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Validate clamps soft values and rejects the ones that cannot be repaired.
func (s *Settings) Validate() error {
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
	if s.Window.Scale < 1 {
		s.Window.Scale = 1
	}
	switch s.Audio.SampleRate {
	case 22050, 44100, 48000:
	default:
		return fmt.Errorf("unsupported sample rate %d", s.Audio.SampleRate)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel; an empty level means info.
func (s Settings) Level() (zerolog.Level, error) {
	if s.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}
