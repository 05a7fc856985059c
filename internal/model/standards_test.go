package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWithinMagnitude(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "20", want: true},
		{in: "-0.01", want: true},
		{in: "0", want: true},
		{in: "123456789", want: true},
		{in: "1e8", want: true},
		{in: "1234567890", want: false},
		{in: "1e9", want: false},
		{in: "1e50000000", want: false},
		{in: "0e50000000", want: false},
		{in: "0.000000000000000000000001", want: true},
		{in: "0.0000000000000000000000001", want: false},
		{in: "-1e-50000000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, WithinMagnitude(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestSizeBracket_Contains(t *testing.T) {
	b := SizeBracket{Lower: decimal.NewFromInt(18), Upper: decimal.NewFromInt(30)}

	assert.False(t, b.Contains(decimal.NewFromInt(18)))
	assert.True(t, b.Contains(decimal.RequireFromString("18.001")))
	assert.True(t, b.Contains(decimal.NewFromInt(30)))
	assert.False(t, b.Contains(decimal.RequireFromString("30.0001")))
}
