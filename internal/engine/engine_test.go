package engine

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/standards"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewDefault()
	require.NoError(t, err)
	return calc
}

func part(nominal, upper, lower string, feature model.Feature) model.PartInput {
	return model.PartInput{
		Nominal:        dec(nominal),
		UpperDeviation: dec(upper),
		LowerDeviation: dec(lower),
		Feature:        feature,
	}
}

type wantGauge struct {
	nominal   string
	upper     string
	lower     string
	wearLimit string
	ra        string
}

func assertGauge(t *testing.T, res *model.GaugeResult, role model.GaugeRole, want wantGauge) {
	t.Helper()
	g, ok := res.Gauge(role)
	require.True(t, ok, "%s missing", role)
	assert.Equal(t, role, g.Role)
	assert.Equal(t, want.nominal, g.Nominal.String(), "%s nominal", role)
	assert.Equal(t, want.upper, g.UpperDeviation.String(), "%s upper deviation", role)
	assert.Equal(t, want.lower, g.LowerDeviation.String(), "%s lower deviation", role)

	if want.wearLimit == "" {
		assert.False(t, g.WearLimit.Valid, "%s should have no wear limit", role)
	} else {
		require.True(t, g.WearLimit.Valid, "%s wear limit missing", role)
		assert.Equal(t, want.wearLimit, g.WearLimit.Decimal.String())
	}

	if want.ra == "" {
		assert.False(t, g.Ra.Valid, "%s should have no Ra", role)
	} else {
		require.True(t, g.Ra.Valid, "%s Ra missing", role)
		assert.Equal(t, want.ra, g.Ra.Decimal.String(), "%s Ra", role)
	}
}

func TestCalculator_Compute_Shaft(t *testing.T) {
	calc := newTestCalculator(t)

	res, err := calc.Compute(part("20", "0.01", "-0.01", model.FeatureShaft))
	require.NoError(t, err)

	assert.Equal(t, "20.01", res.UpperLimit.String())
	assert.Equal(t, "19.99", res.LowerLimit.String())
	assert.Equal(t, "0.02", res.Tolerance.String())
	assert.Equal(t, "IT6", res.GradeLabel())
	assert.Equal(t, "0.002", res.Resolved.T1.String())
	assert.Equal(t, "0.0024", res.Resolved.Z1.String())

	assertGauge(t, res, model.RoleGo, wantGauge{nominal: "20.0066", upper: "0.002", lower: "0", wearLimit: "20.01", ra: "0.1"})
	assertGauge(t, res, model.RoleNoGo, wantGauge{nominal: "19.99", upper: "0.002", lower: "0", ra: "0.1"})
	assertGauge(t, res, model.RoleGoWearSettingPlug, wantGauge{nominal: "20.01", upper: "0", lower: "-0.001", ra: "0.05"})
	assertGauge(t, res, model.RoleGoGoSettingPlug, wantGauge{nominal: "20.0076", upper: "0", lower: "-0.001", ra: "0.05"})
	assertGauge(t, res, model.RoleNoGoGoSettingPlug, wantGauge{nominal: "19.991", upper: "0", lower: "-0.001", ra: "0.05"})
}

func TestCalculator_Compute_Hole(t *testing.T) {
	calc := newTestCalculator(t)

	res, err := calc.Compute(part("20", "0.01", "-0.01", model.FeatureHole))
	require.NoError(t, err)
	assert.Equal(t, "IT6", res.GradeLabel())

	assertGauge(t, res, model.RoleGo, wantGauge{nominal: "19.9934", upper: "0", lower: "-0.002", wearLimit: "19.99", ra: "0.05"})
	assertGauge(t, res, model.RoleNoGo, wantGauge{nominal: "20.01", upper: "0", lower: "-0.002", ra: "0.05"})

	for _, role := range []model.GaugeRole{model.RoleGoGoSettingPlug, model.RoleGoWearSettingPlug, model.RoleNoGoGoSettingPlug} {
		_, ok := res.Gauge(role)
		assert.False(t, ok, "%s should not apply to holes", role)
		assert.Nil(t, res.Gauges[role])
	}
}

func TestCalculator_Compute_Errors(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name    string
		in      model.PartInput
		wantErr error
	}{
		{
			name:    "nominal above 500",
			in:      part("600", "0.01", "-0.01", model.FeatureShaft),
			wantErr: ErrToleranceOutOfRange,
		},
		{
			name:    "zero nominal",
			in:      part("0", "0.01", "-0.01", model.FeatureHole),
			wantErr: ErrToleranceOutOfRange,
		},
		{
			name:    "tolerance tighter than IT6",
			in:      part("20", "0.005", "0", model.FeatureShaft),
			wantErr: ErrToleranceOutOfRange,
		},
		{
			name:    "equal deviations",
			in:      part("20", "0.01", "0.01", model.FeatureShaft),
			wantErr: ErrInvalidTolerance,
		},
		{
			name:    "upper below lower",
			in:      part("20", "-0.01", "0.01", model.FeatureHole),
			wantErr: ErrInvalidTolerance,
		},
		{
			name:    "unknown feature",
			in:      part("20", "0.01", "-0.01", model.Feature("cone")),
			wantErr: ErrUnknownFeature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Compute(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}

	// The resolver miss stays visible through the wrapper
	_, err := calc.Compute(part("600", "0.01", "-0.01", model.FeatureShaft))
	assert.ErrorIs(t, err, standards.ErrToleranceNotFound)
}

func TestCalculator_Compute_ExtremeExponentsFailFast(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name    string
		nominal string
		upper   string
		lower   string
	}{
		{name: "huge nominal", nominal: "1e50000000", upper: "0.01", lower: "-0.01"},
		{name: "huge upper deviation", nominal: "20", upper: "1e50000000", lower: "0"},
		{name: "tiny lower deviation", nominal: "20", upper: "0.01", lower: "-1e-50000000"},
		{name: "zero with huge exponent", nominal: "0e50000000", upper: "0.01", lower: "-0.01"},
		{name: "ten integer digits", nominal: "1234567890", upper: "0.01", lower: "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := part(tt.nominal, tt.upper, tt.lower, model.FeatureShaft)

			done := make(chan error, 1)
			go func() {
				_, err := calc.Compute(in)
				done <- err
			}()

			select {
			case err := <-done:
				require.ErrorIs(t, err, ErrToleranceOutOfRange)
				assert.Less(t, len(err.Error()), 200)
			case <-time.After(5 * time.Second):
				t.Fatal("Compute did not return")
			}
		})
	}
}

func TestCalculator_Compute_RoughnessMissIsPerMember(t *testing.T) {
	calc := newTestCalculator(t)

	// Upper limit 500.1 pushes every member except the no-go gauge past the
	// 500 mm end of the roughness tables.
	res, err := calc.Compute(part("500", "0.1", "0", model.FeatureShaft))
	require.NoError(t, err)
	assert.Equal(t, "IT8", res.GradeLabel())

	assertGauge(t, res, model.RoleGo, wantGauge{nominal: "500.081", upper: "0.01", lower: "0", wearLimit: "500.1"})
	assertGauge(t, res, model.RoleNoGo, wantGauge{nominal: "500", upper: "0.01", lower: "0", ra: "0.4"})
	assertGauge(t, res, model.RoleGoWearSettingPlug, wantGauge{nominal: "500.1", upper: "0", lower: "-0.005"})
	assertGauge(t, res, model.RoleGoGoSettingPlug, wantGauge{nominal: "500.086", upper: "0", lower: "-0.005"})
	assertGauge(t, res, model.RoleNoGoGoSettingPlug, wantGauge{nominal: "500.005", upper: "0", lower: "-0.005"})
}

func TestCalculator_Compute_GoGaugeNeverExceedsUpperLimit(t *testing.T) {
	calc := newTestCalculator(t)
	step := dec("0.7")
	tolStep := dec("0.013")

	for nominal := step; nominal.LessThanOrEqual(decimal.NewFromInt(500)); nominal = nominal.Add(step) {
		for tol := tolStep; tol.LessThan(decimal.NewFromInt(4)); tol = tol.Add(tolStep.Mul(decimal.NewFromInt(17))) {
			in := model.PartInput{
				Nominal:        nominal,
				UpperDeviation: tol.Div(decimal.NewFromInt(2)),
				LowerDeviation: tol.Div(decimal.NewFromInt(2)).Neg(),
				Feature:        model.FeatureShaft,
			}
			res, err := calc.Compute(in)
			if err != nil {
				require.ErrorIs(t, err, ErrToleranceOutOfRange)
				continue
			}
			goGauge, ok := res.Gauge(model.RoleGo)
			require.True(t, ok)
			assert.True(t, goGauge.Nominal.LessThanOrEqual(res.UpperLimit),
				"nominal %s tolerance %s: go gauge %s above upper limit %s", nominal, tol, goGauge.Nominal, res.UpperLimit)
		}
	}
}

func TestCalculator_Compute_Idempotent(t *testing.T) {
	calc := newTestCalculator(t)
	in := part("63.5", "0.03", "-0.016", model.FeatureShaft)

	first, err := calc.Compute(in)
	require.NoError(t, err)
	second, err := calc.Compute(in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestCalculator_Compute_Concurrent(t *testing.T) {
	calc := newTestCalculator(t)
	in := part("120", "0", "-0.054", model.FeatureHole)

	want, err := calc.Compute(in)
	require.NoError(t, err)
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, computeErr := calc.Compute(in)
			if computeErr != nil {
				return
			}
			out, _ := json.Marshal(res)
			results[i] = string(out)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, string(wantJSON), got)
	}
}

type mockRoughness struct {
	mock.Mock
}

func (m *mockRoughness) ResolveRa(feature model.Feature, gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error) {
	args := m.Called(feature, gaugeNominal.String(), itGrade)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockPlugRoughness struct {
	mock.Mock
}

func (m *mockPlugRoughness) ResolveRa(gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error) {
	args := m.Called(gaugeNominal.String(), itGrade)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestCalculator_Compute_UsesMemberNominalAndPartGrade(t *testing.T) {
	tables := standards.MustDefault()
	gaugeRa := &mockRoughness{}
	plugRa := &mockPlugRoughness{}

	gaugeRa.On("ResolveRa", model.FeatureShaft, "20.0066", 6).Return(dec("0.1"), nil).Once()
	gaugeRa.On("ResolveRa", model.FeatureShaft, "19.99", 6).Return(decimal.Decimal{}, standards.ErrRoughnessNotFound).Once()
	plugRa.On("ResolveRa", "20.01", 6).Return(dec("0.05"), nil).Once()
	plugRa.On("ResolveRa", "20.0076", 6).Return(dec("0.05"), nil).Once()
	plugRa.On("ResolveRa", "19.991", 6).Return(dec("0.05"), nil).Once()

	calc := New(standards.NewToleranceResolver(tables), gaugeRa, plugRa)
	res, err := calc.Compute(part("20", "0.01", "-0.01", model.FeatureShaft))
	require.NoError(t, err)

	noGo, ok := res.Gauge(model.RoleNoGo)
	require.True(t, ok)
	assert.False(t, noGo.Ra.Valid)

	gaugeRa.AssertExpectations(t)
	plugRa.AssertExpectations(t)
}
