// Package engine derives working gauge and setting plug dimensions for a
// part from its nominal size and deviations.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/standards"
	"github.com/shopspring/decimal"
)

// Calculation errors.
var (
	// ErrInvalidTolerance means the upper deviation does not exceed the lower one.
	ErrInvalidTolerance = errors.New("upper deviation must be greater than lower deviation")
	// ErrToleranceOutOfRange means the size and tolerance fall outside IT6-IT16 or 0-500 mm.
	ErrToleranceOutOfRange = errors.New("tolerance grade out of range: only IT6-IT16 parts up to 500 mm are supported")
	// ErrUnknownFeature means the feature is neither shaft nor hole.
	ErrUnknownFeature = errors.New("unknown feature")
)

var two = decimal.NewFromInt(2)

// Calculator computes gauge sets. It holds no per-call state and is safe for
// concurrent use as long as its resolvers are.
type Calculator struct {
	tolerances  ToleranceResolver
	gaugeRa     GaugeRoughness
	settingPlug SettingPlugRoughness
}

// New creates a calculator over the given resolvers.
func New(tolerances ToleranceResolver, gaugeRa GaugeRoughness, settingPlug SettingPlugRoughness) *Calculator {
	return &Calculator{
		tolerances:  tolerances,
		gaugeRa:     gaugeRa,
		settingPlug: settingPlug,
	}
}

// NewDefault creates a calculator over the built-in GB/T 1957-2006 tables.
func NewDefault() (*Calculator, error) {
	tables, err := standards.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load standards tables: %w", err)
	}
	return New(
		standards.NewToleranceResolver(tables),
		standards.NewGaugeRoughnessResolver(tables),
		standards.NewSettingPlugRoughnessResolver(tables),
	), nil
}

// Compute derives the full gauge set for a part. It returns
// ErrToleranceOutOfRange when no IT grade applies; a roughness miss on a
// single member only leaves that member's Ra unset.
func (c *Calculator) Compute(in model.PartInput) (*model.GaugeResult, error) {
	if !in.Feature.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, in.Feature)
	}

	for _, d := range []decimal.Decimal{in.Nominal, in.UpperDeviation, in.LowerDeviation} {
		if !model.WithinMagnitude(d) {
			return nil, fmt.Errorf("%w: value exceeds %d integer or %d decimal digits",
				ErrToleranceOutOfRange, model.MaxIntegerDigits, model.MaxFractionDigits)
		}
	}

	tolerance := in.UpperDeviation.Sub(in.LowerDeviation)
	if !tolerance.IsPositive() {
		return nil, fmt.Errorf("%w: upper %s, lower %s", ErrInvalidTolerance, in.UpperDeviation, in.LowerDeviation)
	}

	resolved, err := c.tolerances.Resolve(in.Nominal, tolerance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrToleranceOutOfRange, err)
	}

	result := &model.GaugeResult{
		Input:      in,
		UpperLimit: in.Nominal.Add(in.UpperDeviation),
		LowerLimit: in.Nominal.Add(in.LowerDeviation),
		Tolerance:  tolerance,
		Resolved:   resolved,
	}

	switch in.Feature {
	case model.FeatureShaft:
		c.computeShaft(result)
	case model.FeatureHole:
		c.computeHole(result)
	}

	return result, nil
}

func (c *Calculator) computeShaft(r *model.GaugeResult) {
	t1, z1 := r.Resolved.T1, r.Resolved.Z1
	halfT1 := t1.Div(two)
	zero := decimal.Zero

	goGauge := &model.GaugeSpec{
		Role:           model.RoleGo,
		Nominal:        r.UpperLimit.Sub(z1).Sub(halfT1),
		UpperDeviation: t1,
		LowerDeviation: zero,
		WearLimit:      decimal.NewNullDecimal(r.UpperLimit),
	}
	noGoGauge := &model.GaugeSpec{
		Role:           model.RoleNoGo,
		Nominal:        r.LowerLimit,
		UpperDeviation: t1,
		LowerDeviation: zero,
	}
	for _, g := range []*model.GaugeSpec{goGauge, noGoGauge} {
		g.Ra = c.gaugeRoughness(model.FeatureShaft, r.Resolved.ITGrade, g)
	}

	plugLower := halfT1.Neg()
	goWear := &model.GaugeSpec{
		Role:           model.RoleGoWearSettingPlug,
		Nominal:        r.UpperLimit,
		UpperDeviation: zero,
		LowerDeviation: plugLower,
	}
	goGo := &model.GaugeSpec{
		Role:           model.RoleGoGoSettingPlug,
		Nominal:        r.UpperLimit.Sub(z1),
		UpperDeviation: zero,
		LowerDeviation: plugLower,
	}
	// Sits half a gauge tolerance above the lower limit.
	noGoGo := &model.GaugeSpec{
		Role:           model.RoleNoGoGoSettingPlug,
		Nominal:        r.LowerLimit.Sub(plugLower),
		UpperDeviation: zero,
		LowerDeviation: plugLower,
	}
	for _, g := range []*model.GaugeSpec{goWear, goGo, noGoGo} {
		g.Ra = c.settingPlugRoughness(r.Resolved.ITGrade, g)
	}

	r.Gauges[model.RoleGo] = goGauge
	r.Gauges[model.RoleNoGo] = noGoGauge
	r.Gauges[model.RoleGoWearSettingPlug] = goWear
	r.Gauges[model.RoleGoGoSettingPlug] = goGo
	r.Gauges[model.RoleNoGoGoSettingPlug] = noGoGo
}

// computeHole fills the plug gauges. Setting plugs do not apply to holes
// and stay nil.
func (c *Calculator) computeHole(r *model.GaugeResult) {
	t1, z1 := r.Resolved.T1, r.Resolved.Z1
	zero := decimal.Zero

	goGauge := &model.GaugeSpec{
		Role:           model.RoleGo,
		Nominal:        r.LowerLimit.Add(z1).Add(t1.Div(two)),
		UpperDeviation: zero,
		LowerDeviation: t1.Neg(),
		WearLimit:      decimal.NewNullDecimal(r.LowerLimit),
	}
	noGoGauge := &model.GaugeSpec{
		Role:           model.RoleNoGo,
		Nominal:        r.UpperLimit,
		UpperDeviation: zero,
		LowerDeviation: t1.Neg(),
	}
	for _, g := range []*model.GaugeSpec{goGauge, noGoGauge} {
		g.Ra = c.gaugeRoughness(model.FeatureHole, r.Resolved.ITGrade, g)
	}

	r.Gauges[model.RoleGo] = goGauge
	r.Gauges[model.RoleNoGo] = noGoGauge
}

func (c *Calculator) gaugeRoughness(feature model.Feature, grade int, g *model.GaugeSpec) decimal.NullDecimal {
	ra, err := c.gaugeRa.ResolveRa(feature, g.Nominal, grade)
	return roughnessOrAbsent(g, ra, err)
}

func (c *Calculator) settingPlugRoughness(grade int, g *model.GaugeSpec) decimal.NullDecimal {
	ra, err := c.settingPlug.ResolveRa(g.Nominal, grade)
	return roughnessOrAbsent(g, ra, err)
}

func roughnessOrAbsent(g *model.GaugeSpec, ra decimal.Decimal, err error) decimal.NullDecimal {
	if err != nil {
		slog.Debug("No roughness for gauge member",
			"role", g.Role.String(),
			"nominal", g.Nominal.String(),
			"error", err)
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(ra)
}
