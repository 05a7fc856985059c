package tui

import (
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/service"
	"github.com/Veraticus/limit-gauge/internal/tui/themes"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Calculator  service.Calculator
	Store       service.DesignStore
	Placeholder string
	Nominal     string
	Upper       string
	Lower       string
	Feature     model.Feature
	Width       int
	Height      int
	ShowHelp    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration: a 20 mm shaft with
// ±0.01 mm deviations.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Placeholder: viewmodel.DefaultPlaceholder,
		Nominal:     "20",
		Upper:       "0.01",
		Lower:       "-0.01",
		Feature:     model.FeatureShaft,
		Width:       80,
		Height:      24,
		ShowHelp:    true,
	}
}

// WithCalculator sets the gauge calculator.
func WithCalculator(calc service.Calculator) Option {
	return func(c *Config) {
		c.Calculator = calc
	}
}

// WithStore enables saving designs to history.
func WithStore(store service.DesignStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPlaceholder sets the text shown for absent values.
func WithPlaceholder(placeholder string) Option {
	return func(c *Config) {
		if placeholder != "" {
			c.Placeholder = placeholder
		}
	}
}

// WithInput sets the initial field values.
func WithInput(nominal, upper, lower string) Option {
	return func(c *Config) {
		c.Nominal = nominal
		c.Upper = upper
		c.Lower = lower
	}
}

// WithFeature sets the initial feature.
func WithFeature(feature model.Feature) Option {
	return func(c *Config) {
		if feature.IsValid() {
			c.Feature = feature
		}
	}
}

// WithHelp shows or hides the key help line.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
