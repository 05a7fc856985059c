// Package standards holds the GB/T 1957-2006 reference tables and the
// lookups that classify part tolerances and assign gauge roughness.
package standards

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Veraticus/limit-gauge/internal/model"
)

// ErrInvalidTable is returned when reference data breaks the partition
// rules every lookup relies on.
var ErrInvalidTable = errors.New("invalid standards table")

// Tables is the immutable reference data. It is safe for concurrent use:
// nothing mutates it after construction and accessors return copies.
type Tables struct {
	gaugeRoughness       map[model.Feature][]model.RoughnessBand
	tolerances           []model.ToleranceBand
	settingPlugRoughness []model.RoughnessBand
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	errDefault    error
)

// Default returns the built-in tables, building and validating them on
// first use.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, errDefault = New(toleranceData(), gaugeRoughnessData(), settingPlugRoughnessData())
	})
	return defaultTables, errDefault
}

// MustDefault is like Default but panics if the built-in data is invalid.
func MustDefault() *Tables {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}

// New validates the given data and wraps it in a Tables value.
func New(
	tolerances []model.ToleranceBand,
	gaugeRoughness map[model.Feature][]model.RoughnessBand,
	settingPlugRoughness []model.RoughnessBand,
) (*Tables, error) {
	if err := validateToleranceBands(tolerances); err != nil {
		return nil, fmt.Errorf("%w: tolerance table: %v", ErrInvalidTable, err)
	}
	for _, feature := range model.Features {
		bands, ok := gaugeRoughness[feature]
		if !ok {
			return nil, fmt.Errorf("%w: gauge roughness table: missing feature %s", ErrInvalidTable, feature)
		}
		if err := validateRoughnessBands(bands); err != nil {
			return nil, fmt.Errorf("%w: gauge roughness table (%s): %v", ErrInvalidTable, feature, err)
		}
	}
	if err := validateRoughnessBands(settingPlugRoughness); err != nil {
		return nil, fmt.Errorf("%w: setting plug roughness table: %v", ErrInvalidTable, err)
	}

	gauge := make(map[model.Feature][]model.RoughnessBand, len(gaugeRoughness))
	for feature, bands := range gaugeRoughness {
		gauge[feature] = copyRoughnessBands(bands)
	}

	return &Tables{
		tolerances:           copyToleranceBands(tolerances),
		gaugeRoughness:       gauge,
		settingPlugRoughness: copyRoughnessBands(settingPlugRoughness),
	}, nil
}

// ToleranceBands returns a copy of the part tolerance table.
func (t *Tables) ToleranceBands() []model.ToleranceBand {
	return copyToleranceBands(t.tolerances)
}

// GaugeRoughness returns a copy of the working gauge roughness table for a feature.
func (t *Tables) GaugeRoughness(feature model.Feature) []model.RoughnessBand {
	return copyRoughnessBands(t.gaugeRoughness[feature])
}

// SettingPlugRoughness returns a copy of the setting plug roughness table.
func (t *Tables) SettingPlugRoughness() []model.RoughnessBand {
	return copyRoughnessBands(t.settingPlugRoughness)
}

func copyToleranceBands(bands []model.ToleranceBand) []model.ToleranceBand {
	out := make([]model.ToleranceBand, len(bands))
	for i, b := range bands {
		out[i] = model.ToleranceBand{
			Size:    b.Size,
			Records: append([]model.ToleranceRecord(nil), b.Records...),
		}
	}
	return out
}

func copyRoughnessBands(bands []model.RoughnessBand) []model.RoughnessBand {
	out := make([]model.RoughnessBand, len(bands))
	for i, b := range bands {
		out[i] = model.RoughnessBand{
			Grades:  b.Grades,
			Entries: append([]model.RoughnessEntry(nil), b.Entries...),
		}
	}
	return out
}
