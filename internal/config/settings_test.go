package config

import (
	"path/filepath"
	"testing"

	"github.com/Veraticus/limit-gauge/internal/common"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	s, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, common.LogFormatConsole, s.LogFormat)
	assert.Equal(t, filepath.Join("/home/tester", ".local", "share", "gauge", "gauge.db"), s.DatabasePath)
	assert.Equal(t, model.FeatureShaft, s.DefaultFeature)
	assert.Equal(t, "—", s.Placeholder)
	assert.Equal(t, DefaultBatchWorkers, s.BatchWorkers)
	assert.Equal(t, "default", s.Theme)
}

func TestLoad_Overrides(t *testing.T) {
	v := newViper()
	v.Set(KeyFeature, "hole")
	v.Set(KeyBatchWorkers, 16)
	v.Set(KeyPlaceholder, "n/a")
	v.Set(KeyDatabasePath, "/tmp/designs.db")
	v.Set(KeyTheme, "catppuccin-mocha")

	s, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, model.FeatureHole, s.DefaultFeature)
	assert.Equal(t, 16, s.BatchWorkers)
	assert.Equal(t, "n/a", s.Placeholder)
	assert.Equal(t, "/tmp/designs.db", s.DatabasePath)
	assert.Equal(t, "catppuccin-mocha", s.Theme)
}

func TestLoad_EmptyPlaceholderFallsBack(t *testing.T) {
	v := newViper()
	v.Set(KeyPlaceholder, "")

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "—", s.Placeholder)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		value any
		name  string
		key   string
	}{
		{name: "unknown feature", key: KeyFeature, value: "cone"},
		{name: "zero workers", key: KeyBatchWorkers, value: 0},
		{name: "negative workers", key: KeyBatchWorkers, value: -2},
		{name: "empty database path", key: KeyDatabasePath, value: ""},
		{name: "unknown theme", key: KeyTheme, value: "neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}
