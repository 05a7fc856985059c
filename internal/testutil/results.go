// Package testutil provides shared fixtures for tests that need real gauge
// calculations or a populated design history.
package testutil

import (
	"testing"

	"github.com/Veraticus/limit-gauge/internal/engine"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
)

// Part is a part description in the text form users type.
type Part struct {
	Nominal string
	Upper   string
	Lower   string
	Feature model.Feature
}

// Common parts used across tests.
var (
	// ShaftIT6 is a 20 mm shaft with deviations +0.01/-0.01, graded IT6.
	ShaftIT6 = Part{Nominal: "20", Upper: "0.01", Lower: "-0.01", Feature: model.FeatureShaft}
	// HoleIT6 is the same tolerance zone on a hole.
	HoleIT6 = Part{Nominal: "20", Upper: "0.01", Lower: "-0.01", Feature: model.FeatureHole}
	// ShaftIT7 is a 120 mm shaft with deviations +0.035/0, graded IT7.
	ShaftIT7 = Part{Nominal: "120", Upper: "0.035", Lower: "0", Feature: model.FeatureShaft}
)

// Input converts p to a calculator input, failing the test on malformed text.
func (p Part) Input(t *testing.T) model.PartInput {
	t.Helper()
	parse := func(field, text string) decimal.Decimal {
		d, err := decimal.NewFromString(text)
		if err != nil {
			t.Fatalf("invalid %s %q: %v", field, text, err)
		}
		return d
	}
	return model.PartInput{
		Nominal:        parse("nominal", p.Nominal),
		UpperDeviation: parse("upper deviation", p.Upper),
		LowerDeviation: parse("lower deviation", p.Lower),
		Feature:        p.Feature,
	}
}

// NewCalculator returns a calculator over the built-in tables.
func NewCalculator(t *testing.T) *engine.Calculator {
	t.Helper()
	calc, err := engine.NewDefault()
	if err != nil {
		t.Fatalf("failed to create calculator: %v", err)
	}
	return calc
}

// MustCompute calculates the gauge set for p or fails the test.
func MustCompute(t *testing.T, p Part) *model.GaugeResult {
	t.Helper()
	res, err := NewCalculator(t).Compute(p.Input(t))
	if err != nil {
		t.Fatalf("failed to compute %+v: %v", p, err)
	}
	return res
}
