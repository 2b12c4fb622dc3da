package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/healthscatter/internal/chart"
	"github.com/san-kum/healthscatter/internal/scale"
	"github.com/san-kum/healthscatter/internal/selector"
)

const (
	DefaultWidth      = 960.0
	DefaultHeight     = 500.0
	DefaultTransition = time.Second
	DefaultTicks      = 8
	DefaultRadius     = 15.0
	DefaultFill       = "#ffc0cb"
	DefaultOpacity    = 0.5
	DefaultTheme      = "cyberpunk"
)

// ErrInvalid indicates a configuration that cannot produce a chart.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Data       string        `yaml:"data"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Margin     chart.Margin  `yaml:"margin"`
	Padding    scale.Padding `yaml:"padding"`
	Transition time.Duration `yaml:"transition"`
	Initial    AxesConfig    `yaml:"initial"`
	Point      PointConfig   `yaml:"point"`
	Theme      string        `yaml:"theme"`
	Ticks      int           `yaml:"ticks"`
	Where      string        `yaml:"where"`
}

type AxesConfig struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

type PointConfig struct {
	Radius  float64 `yaml:"radius"`
	Fill    string  `yaml:"fill"`
	Opacity float64 `yaml:"opacity"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Margin:     chart.Margin{Top: 20, Right: 40, Bottom: 60, Left: 100},
		Padding:    scale.DefaultPadding,
		Transition: DefaultTransition,
		Initial:    AxesConfig{X: "poverty", Y: "healthcare"},
		Point: PointConfig{
			Radius:  DefaultRadius,
			Fill:    DefaultFill,
			Opacity: DefaultOpacity,
		},
		Theme: DefaultTheme,
		Ticks: DefaultTicks,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate checks sizes and the initial selection.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %vx%v must be positive", ErrInvalid, c.Width, c.Height)
	}
	if w, h := c.Layout().Inner(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: margins leave no plot area", ErrInvalid)
	}
	if c.Padding.Low <= 0 || c.Padding.High <= 0 {
		return fmt.Errorf("%w: padding factors must be positive", ErrInvalid)
	}
	if c.Point.Opacity < 0 || c.Point.Opacity > 1 {
		return fmt.Errorf("%w: point opacity %v outside [0, 1]", ErrInvalid, c.Point.Opacity)
	}
	if _, err := c.Selection(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Selection resolves the initial axes.
func (c *Config) Selection() (selector.Selection, error) {
	x, err := selector.ParseAxisField(c.Initial.X, selector.X)
	if err != nil {
		return selector.Selection{}, err
	}
	y, err := selector.ParseAxisField(c.Initial.Y, selector.Y)
	if err != nil {
		return selector.Selection{}, err
	}
	return selector.NewSelection(x, y)
}

// Layout derives the chart geometry.
func (c *Config) Layout() chart.Layout {
	return chart.Layout{
		Width:   c.Width,
		Height:  c.Height,
		Margin:  c.Margin,
		Padding: c.Padding,
		Ticks:   c.Ticks,
		Radius:  c.Point.Radius,
	}
}
