package standards

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
)

// Lookup misses. Both mean the request lies outside the tabulated domain.
var (
	ErrToleranceNotFound = errors.New("tolerance not covered by IT6-IT16 for this nominal size")
	ErrRoughnessNotFound = errors.New("roughness not tabulated for this size and grade")
)

// The tolerance table is tabulated in micrometres; inputs are millimetres.
const micronsPerMillimetreExp = 3

// ToleranceResolver classifies a part tolerance into an IT grade.
type ToleranceResolver struct {
	bands []model.ToleranceBand
}

// NewToleranceResolver creates a resolver over the tolerance table of t.
func NewToleranceResolver(t *Tables) *ToleranceResolver {
	return &ToleranceResolver{bands: t.tolerances}
}

// Resolve finds the size bracket holding nominal, then picks the coarsest
// grade whose standard tolerance still fits inside the part tolerance
// (largest tabulated tolerance <= tolerance). Inputs and T1/Z1 in the result
// are millimetres.
func (r *ToleranceResolver) Resolve(nominal, tolerance decimal.Decimal) (model.ResolvedTolerance, error) {
	if !model.WithinMagnitude(nominal) || !model.WithinMagnitude(tolerance) {
		return model.ResolvedTolerance{}, fmt.Errorf("%w: value too large or too precise for the table", ErrToleranceNotFound)
	}
	scaled := tolerance.Shift(micronsPerMillimetreExp)

	for _, band := range r.bands {
		if !band.Size.Contains(nominal) {
			continue
		}

		best := -1
		for i, rec := range band.Records {
			if rec.Tolerance.GreaterThan(scaled) {
				continue
			}
			if best < 0 || rec.Tolerance.GreaterThan(band.Records[best].Tolerance) {
				best = i
			}
		}
		if best < 0 {
			return model.ResolvedTolerance{}, fmt.Errorf("%w: %s μm is tighter than IT%d in %s mm",
				ErrToleranceNotFound, scaled, band.Records[0].ITGrade, band.Size)
		}

		rec := band.Records[best]
		slog.Debug("Resolved tolerance grade",
			"nominal", nominal.String(),
			"tolerance_um", scaled.String(),
			"bracket", band.Size.String(),
			"grade", rec.ITGrade)

		return model.ResolvedTolerance{
			ITGrade: rec.ITGrade,
			T1:      rec.T1.Shift(-micronsPerMillimetreExp),
			Z1:      rec.Z1.Shift(-micronsPerMillimetreExp),
		}, nil
	}

	return model.ResolvedTolerance{}, fmt.Errorf("%w: nominal size %s mm is outside the table", ErrToleranceNotFound, nominal)
}

// GaugeRoughnessResolver assigns Ra to working go and no-go gauges.
type GaugeRoughnessResolver struct {
	bands map[model.Feature][]model.RoughnessBand
}

// NewGaugeRoughnessResolver creates a resolver over table 4 of t.
func NewGaugeRoughnessResolver(t *Tables) *GaugeRoughnessResolver {
	return &GaugeRoughnessResolver{bands: t.gaugeRoughness}
}

// ResolveRa returns the roughness for a working gauge of the given feature,
// keyed by the gauge's own nominal size and the part IT grade.
func (r *GaugeRoughnessResolver) ResolveRa(feature model.Feature, gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error) {
	bands, ok := r.bands[feature]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: unknown feature %q", ErrRoughnessNotFound, feature)
	}
	return lookupRa(bands, gaugeNominal, itGrade)
}

// SettingPlugRoughnessResolver assigns Ra to shaft setting plugs.
type SettingPlugRoughnessResolver struct {
	bands []model.RoughnessBand
}

// NewSettingPlugRoughnessResolver creates a resolver over table A.1 of t.
func NewSettingPlugRoughnessResolver(t *Tables) *SettingPlugRoughnessResolver {
	return &SettingPlugRoughnessResolver{bands: t.settingPlugRoughness}
}

// ResolveRa returns the roughness for a setting plug.
func (r *SettingPlugRoughnessResolver) ResolveRa(gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error) {
	return lookupRa(r.bands, gaugeNominal, itGrade)
}

// lookupRa matches the grade bracket first, then the size bracket inside it.
func lookupRa(bands []model.RoughnessBand, gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error) {
	for _, band := range bands {
		if !band.Grades.Contains(itGrade) {
			continue
		}
		for _, entry := range band.Entries {
			if entry.Size.Contains(gaugeNominal) {
				return entry.Ra, nil
			}
		}
		return decimal.Decimal{}, fmt.Errorf("%w: size %s mm at %s", ErrRoughnessNotFound, gaugeNominal, band.Grades)
	}
	return decimal.Decimal{}, fmt.Errorf("%w: grade IT%d", ErrRoughnessNotFound, itGrade)
}
