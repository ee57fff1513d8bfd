// Package config loads slider body styles used by the texture tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wieku/danser-sliders/app/graphics/sliderrenderer"
	"github.com/wieku/danser-sliders/framework/math/color"
)

const (
	DefaultPreviewWidth  = 512
	DefaultPreviewHeight = 64
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrStyleNotFound = errors.New("style not found")
)

type Config struct {
	Styles []Style `yaml:"styles" validate:"required,min=1,unique=Name,dive"`
}

type Style struct {
	Name   string `yaml:"name" validate:"required"`
	Accent string `yaml:"accent" validate:"required,slider_colour"`
	Border string `yaml:"border" validate:"required,slider_colour"`

	BorderSize float32 `yaml:"border_size" validate:"gte=0,lte=8"`

	// Legacy selects the stable look, nil means true
	Legacy *bool `yaml:"legacy"`

	PathRadius    float32 `yaml:"path_radius" validate:"gte=0"`
	PreviewWidth  int     `yaml:"preview_width" validate:"gte=0"`
	PreviewHeight int     `yaml:"preview_height" validate:"gte=0"`
}

func Default() *Config {
	cfg := &Config{
		Styles: []Style{{
			Name:       "default",
			Accent:     "#ff8000",
			Border:     "#ffffff",
			BorderSize: 1,
		}},
	}

	cfg.applyDefaults()

	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validatorInstance().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	for i := range cfg.Styles {
		s := &cfg.Styles[i]

		if s.Legacy == nil {
			legacy := true
			s.Legacy = &legacy
		}

		if s.PathRadius == 0 {
			s.PathRadius = sliderrenderer.ObjectRadius
		}

		if s.PreviewWidth == 0 {
			s.PreviewWidth = DefaultPreviewWidth
		}

		if s.PreviewHeight == 0 {
			s.PreviewHeight = DefaultPreviewHeight
		}
	}
}

// Find returns the style with the given name, an empty name picks the first one.
func (cfg *Config) Find(name string) (*Style, error) {
	if name == "" && len(cfg.Styles) > 0 {
		return &cfg.Styles[0], nil
	}

	for i := range cfg.Styles {
		if cfg.Styles[i].Name == name {
			return &cfg.Styles[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
}

func (s *Style) IsLegacy() bool {
	return s.Legacy == nil || *s.Legacy
}

func (s *Style) BodyStyle() (sliderrenderer.BodyStyle, error) {
	accent, err := color.ParseHex(s.Accent)
	if err != nil {
		return sliderrenderer.BodyStyle{}, fmt.Errorf("style %s accent: %w", s.Name, err)
	}

	border, err := color.ParseHex(s.Border)
	if err != nil {
		return sliderrenderer.BodyStyle{}, fmt.Errorf("style %s border: %w", s.Name, err)
	}

	return sliderrenderer.BodyStyle{
		AccentColour: accent,
		BorderColour: border,
		BorderSize:   s.BorderSize,
	}, nil
}

// CrossSection builds the compositor selected by the style.
func (s *Style) CrossSection() (sliderrenderer.CrossSection, error) {
	style, err := s.BodyStyle()
	if err != nil {
		return nil, err
	}

	if s.IsLegacy() {
		return sliderrenderer.NewLegacy(style), nil
	}

	return sliderrenderer.NewDefault(style), nil
}
