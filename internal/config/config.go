// Package config loads the boxdock configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-dock/internal/layout"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Padding is the space kept free around a panel's layout.
type Padding struct {
	Top    float64 `yaml:"top" validate:"gte=0"`
	Right  float64 `yaml:"right" validate:"gte=0"`
	Bottom float64 `yaml:"bottom" validate:"gte=0"`
	Left   float64 `yaml:"left" validate:"gte=0"`
}

// Edges converts the padding to layout edges.
func (p Padding) Edges() layout.Edges {
	return layout.Edges{Top: p.Top, Right: p.Right, Bottom: p.Bottom, Left: p.Left}
}

// Config holds the layout defaults and logging settings.
type Config struct {
	Spacing      float64 `yaml:"spacing" validate:"gte=0"`
	TabBarHeight float64 `yaml:"tab_bar_height" validate:"gte=0"`
	SplitRatio   float64 `yaml:"split_ratio" validate:"gt=0,lt=1"`
	Padding      Padding `yaml:"padding"`
	Width        float64 `yaml:"width" validate:"gt=0"`
	Height       float64 `yaml:"height" validate:"gt=0"`
	LogLevel     string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	DebugLog     string  `yaml:"debug_log"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spacing:      4,
		TabBarHeight: 24,
		SplitRatio:   0.618,
		Width:        800,
		Height:       600,
		LogLevel:     "info",
	}
}

// Validate checks the configuration against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
