package standards

import (
	"testing"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuiltInDataIsValid(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)
	require.NotNil(t, tables)

	bands := tables.ToleranceBands()
	require.Len(t, bands, 13)
	assert.True(t, bands[0].Size.Lower.IsZero())
	assert.True(t, bands[len(bands)-1].Size.Upper.Equal(decimal.NewFromInt(500)))

	for _, band := range bands {
		require.Len(t, band.Records, LastGrade-FirstGrade+1, "bracket %s", band.Size)
		assert.Equal(t, FirstGrade, band.Records[0].ITGrade)
		assert.Equal(t, LastGrade, band.Records[len(band.Records)-1].ITGrade)
	}

	assert.Len(t, tables.GaugeRoughness(model.FeatureShaft), 3)
	assert.Len(t, tables.GaugeRoughness(model.FeatureHole), 4)
	assert.Len(t, tables.SettingPlugRoughness(), 3)

	// Same instance on every call
	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, tables, again)
}

func TestTables_AccessorsReturnCopies(t *testing.T) {
	tables := MustDefault()

	bands := tables.ToleranceBands()
	bands[0].Records[0].ITGrade = 99
	bands[0].Size.Upper = decimal.NewFromInt(1000)

	fresh := tables.ToleranceBands()
	assert.Equal(t, 6, fresh[0].Records[0].ITGrade)
	assert.True(t, fresh[0].Size.Upper.Equal(decimal.NewFromInt(3)))

	ra := tables.SettingPlugRoughness()
	ra[0].Entries[0].Ra = decimal.NewFromInt(7)
	assert.Equal(t, "0.05", tables.SettingPlugRoughness()[0].Entries[0].Ra.String())
}

func TestNew_RejectsBrokenTables(t *testing.T) {
	validGauge := gaugeRoughnessData()
	validPlug := settingPlugRoughnessData()

	tests := []struct {
		name      string
		mutate    func(tol []model.ToleranceBand, gauge map[model.Feature][]model.RoughnessBand, plug []model.RoughnessBand) ([]model.ToleranceBand, map[model.Feature][]model.RoughnessBand, []model.RoughnessBand)
		wantInMsg string
	}{
		{
			name: "gap between size brackets",
			mutate: func(tol []model.ToleranceBand, g map[model.Feature][]model.RoughnessBand, p []model.RoughnessBand) ([]model.ToleranceBand, map[model.Feature][]model.RoughnessBand, []model.RoughnessBand) {
				tol[1].Size.Lower = decimal.NewFromInt(4)
				return tol, g, p
			},
			wantInMsg: "does not continue",
		},
		{
			name: "tolerance not increasing",
			mutate: func(tol []model.ToleranceBand, g map[model.Feature][]model.RoughnessBand, p []model.RoughnessBand) ([]model.ToleranceBand, map[model.Feature][]model.RoughnessBand, []model.RoughnessBand) {
				tol[0].Records[2].Tolerance = tol[0].Records[1].Tolerance
				return tol, g, p
			},
			wantInMsg: "does not increase",
		},
		{
			name: "missing hole roughness",
			mutate: func(tol []model.ToleranceBand, g map[model.Feature][]model.RoughnessBand, p []model.RoughnessBand) ([]model.ToleranceBand, map[model.Feature][]model.RoughnessBand, []model.RoughnessBand) {
				return tol, map[model.Feature][]model.RoughnessBand{model.FeatureShaft: g[model.FeatureShaft]}, p
			},
			wantInMsg: "missing feature hole",
		},
		{
			name: "overlapping grade brackets",
			mutate: func(tol []model.ToleranceBand, g map[model.Feature][]model.RoughnessBand, p []model.RoughnessBand) ([]model.ToleranceBand, map[model.Feature][]model.RoughnessBand, []model.RoughnessBand) {
				p[1].Grades.Lower = 9
				return tol, g, p
			},
			wantInMsg: "setting plug",
		},
		{
			name: "empty setting plug table",
			mutate: func(tol []model.ToleranceBand, g map[model.Feature][]model.RoughnessBand, _ []model.RoughnessBand) ([]model.ToleranceBand, map[model.Feature][]model.RoughnessBand, []model.RoughnessBand) {
				return tol, g, nil
			},
			wantInMsg: "no grade brackets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol, gauge, plug := tt.mutate(toleranceData(), gaugeRoughnessData(), settingPlugRoughnessData())
			_, err := New(tol, gauge, plug)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTable)
			assert.Contains(t, err.Error(), tt.wantInMsg)
		})
	}

	// Sanity: the untouched data passes
	_, err := New(toleranceData(), validGauge, validPlug)
	assert.NoError(t, err)
}
