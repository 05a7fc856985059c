package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/Veraticus/limit-gauge/internal/common"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/tui/themes"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyDatabasePath = "database.path"
	KeyFeature      = "defaults.feature"
	KeyPlaceholder  = "display.placeholder"
	KeyTheme        = "display.theme"
	KeyBatchWorkers = "batch.workers"
)

// DefaultDatabasePath is where design history lives unless configured.
var DefaultDatabasePath = filepath.Join("$HOME", ".local", "share", "gauge", "gauge.db")

// DefaultBatchWorkers bounds concurrent batch rows unless configured.
const DefaultBatchWorkers = 4

// Settings is the resolved application configuration.
type Settings struct {
	LogLevel       string
	LogFormat      string
	DatabasePath   string
	Placeholder    string
	Theme          string
	DefaultFeature model.Feature
	BatchWorkers   int
}

// SetDefaults registers default values for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, common.LogFormatConsole)
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyFeature, string(model.FeatureShaft))
	v.SetDefault(KeyPlaceholder, viewmodel.DefaultPlaceholder)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyBatchWorkers, DefaultBatchWorkers)
}

// Load reads and validates settings from v.
func Load(v *viper.Viper) (*Settings, error) {
	feature, err := model.ParseFeature(v.GetString(KeyFeature))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyFeature, err)
	}

	workers := v.GetInt(KeyBatchWorkers)
	if workers < 1 {
		return nil, fmt.Errorf("%w: %s must be at least 1, got %d", common.ErrInvalidConfig, KeyBatchWorkers, workers)
	}

	dbPath := ExpandPath(v.GetString(KeyDatabasePath))
	if dbPath == "" {
		return nil, fmt.Errorf("%w: %s is empty", common.ErrInvalidConfig, KeyDatabasePath)
	}

	theme := v.GetString(KeyTheme)
	if !slices.Contains(themes.Names, theme) {
		return nil, fmt.Errorf("%w: %s must be one of %v, got %q", common.ErrInvalidConfig, KeyTheme, themes.Names, theme)
	}

	placeholder := v.GetString(KeyPlaceholder)
	if placeholder == "" {
		placeholder = viewmodel.DefaultPlaceholder
	}

	return &Settings{
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		DatabasePath:   dbPath,
		Placeholder:    placeholder,
		Theme:          theme,
		DefaultFeature: feature,
		BatchWorkers:   workers,
	}, nil
}
