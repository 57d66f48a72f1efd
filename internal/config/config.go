package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandel/internal/engine"
	"github.com/san-kum/mandel/internal/scene"
)

const (
	DefaultWidth       = 1920
	DefaultHeight      = 1080
	DefaultSupersample = 2
	DefaultTheme       = "cyberpunk"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width          int             `yaml:"width"`
	Height         int             `yaml:"height"`
	Engine         engine.Config   `yaml:"engine"`
	Viewport       engine.Viewport `yaml:"viewport"`
	AnimationSteps int             `yaml:"animation_steps"`
	Explorer       ExplorerConfig  `yaml:"explorer"`
}

// ExplorerConfig holds terminal explorer options. Supersample is the number
// of engine pixels per terminal sub-pixel along each axis.
type ExplorerConfig struct {
	Supersample int    `yaml:"supersample"`
	Theme       string `yaml:"theme"`
	Preset      string `yaml:"preset"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Engine:         engine.DefaultConfig(),
		Viewport:       engine.DefaultViewport(),
		AnimationSteps: scene.DefaultSteps,
		Explorer: ExplorerConfig{
			Supersample: DefaultSupersample,
			Theme:       DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.AnimationSteps < 0 {
		return fmt.Errorf("%w: animation_steps %d", ErrInvalidConfig, c.AnimationSteps)
	}
	if c.Explorer.Supersample < 1 {
		return fmt.Errorf("%w: supersample %d", ErrInvalidConfig, c.Explorer.Supersample)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	return c.Viewport.Validate()
}

// StartViewport resolves the starting viewport for a grid width: the
// named preset when one is set, else the configured viewport.
func (c *Config) StartViewport(width int) (engine.Viewport, error) {
	if c.Explorer.Preset == "" {
		return c.Viewport, nil
	}
	p := GetPreset(c.Explorer.Preset)
	if p == nil {
		return engine.Viewport{}, fmt.Errorf("unknown preset: %s (available: %v)", c.Explorer.Preset, ListPresets())
	}
	return p.Viewport(width), nil
}
