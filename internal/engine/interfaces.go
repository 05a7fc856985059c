package engine

import (
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
)

// ToleranceResolver classifies a part tolerance into an IT grade with its
// gauge parameters.
type ToleranceResolver interface {
	Resolve(nominal, tolerance decimal.Decimal) (model.ResolvedTolerance, error)
}

// GaugeRoughness looks up Ra for working go and no-go gauges.
type GaugeRoughness interface {
	ResolveRa(feature model.Feature, gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error)
}

// SettingPlugRoughness looks up Ra for shaft setting plugs.
type SettingPlugRoughness interface {
	ResolveRa(gaugeNominal decimal.Decimal, itGrade int) (decimal.Decimal, error)
}
