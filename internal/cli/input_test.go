package cli

import (
	"errors"
	"testing"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		wantKind InputKind
		wantErr  bool
	}{
		{name: "integer", text: "20", want: "20"},
		{name: "negative decimal", text: "-0.01", want: "-0.01"},
		{name: "surrounding whitespace", text: "  12.5 ", want: "12.5"},
		{name: "leading point", text: ".5", want: "0.5"},
		{name: "exponent", text: "1e2", want: "100"},
		{name: "empty", text: "", wantErr: true, wantKind: InputIncomplete},
		{name: "whitespace only", text: "   ", wantErr: true, wantKind: InputIncomplete},
		{name: "bare point", text: ".", wantErr: true, wantKind: InputIncomplete},
		{name: "bare minus", text: "-", wantErr: true, wantKind: InputIncomplete},
		{name: "bare plus", text: "+", wantErr: true, wantKind: InputIncomplete},
		{name: "minus point", text: "-.", wantErr: true, wantKind: InputIncomplete},
		{name: "plus point", text: "+.", wantErr: true, wantKind: InputIncomplete},
		{name: "zero point", text: "0.", wantErr: true, wantKind: InputIncomplete},
		{name: "minus zero point", text: "-0.", wantErr: true, wantKind: InputIncomplete},
		{name: "letters", text: "abc", wantErr: true, wantKind: InputNotNumeric},
		{name: "two points", text: "1.2.3", wantErr: true, wantKind: InputNotNumeric},
		{name: "trailing garbage", text: "12mm", wantErr: true, wantKind: InputNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseField(FieldNominal, tt.text)
			if tt.wantErr {
				var fe *FieldError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.wantKind, fe.Kind)
				assert.Equal(t, FieldNominal, fe.Field)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFieldError_Error(t *testing.T) {
	assert.Equal(t, "upper deviation: not fully entered",
		(&FieldError{Field: FieldUpperDeviation, Kind: InputIncomplete}).Error())
	assert.Equal(t, "lower deviation: numbers only",
		(&FieldError{Field: FieldLowerDeviation, Kind: InputNotNumeric}).Error())
}

func TestInputKind_String(t *testing.T) {
	assert.Equal(t, "Incomplete", InputIncomplete.String())
	assert.Equal(t, "NotNumeric", InputNotNumeric.String())
	assert.Equal(t, "Unknown(7)", InputKind(7).String())
}

func TestParseInputs_Valid(t *testing.T) {
	in, err := ParseInputs("20", "0.01", "-0.01", model.FeatureHole)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(20).Equal(in.Nominal))
	assert.True(t, decimal.RequireFromString("0.01").Equal(in.UpperDeviation))
	assert.True(t, decimal.RequireFromString("-0.01").Equal(in.LowerDeviation))
	assert.Equal(t, model.FeatureHole, in.Feature)
}

func TestParseInputs_IncompleteUpperOnly(t *testing.T) {
	_, err := ParseInputs("20", "-", "-0.01", model.FeatureShaft)
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, FieldUpperDeviation, fields[0].Field)
	assert.Equal(t, InputIncomplete, fields[0].Kind)
	assert.True(t, OnlyIncomplete(err))
	assert.Equal(t, "upper deviation: not fully entered", err.Error())
}

func TestParseInputs_CollectsEveryField(t *testing.T) {
	_, err := ParseInputs("x", "", "1..", model.FeatureShaft)
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 3)
	assert.Equal(t, FieldNominal, fields[0].Field)
	assert.Equal(t, InputNotNumeric, fields[0].Kind)
	assert.Equal(t, FieldUpperDeviation, fields[1].Field)
	assert.Equal(t, InputIncomplete, fields[1].Kind)
	assert.Equal(t, FieldLowerDeviation, fields[2].Field)
	assert.Equal(t, InputNotNumeric, fields[2].Kind)
	assert.False(t, OnlyIncomplete(err))

	assert.Contains(t, err.Error(), "nominal size: numbers only")
	assert.Contains(t, err.Error(), "upper deviation: not fully entered")
	assert.Contains(t, err.Error(), "lower deviation: numbers only")
}

func TestFieldErrors_Unrelated(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
	assert.Empty(t, FieldErrors(errors.New("boom")))
	assert.False(t, OnlyIncomplete(nil))
	assert.False(t, OnlyIncomplete(errors.New("boom")))
}
