package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GaugeRole identifies a member of a gauge set.
type GaugeRole int

const (
	// RoleGo inspects the maximum material limit.
	RoleGo GaugeRole = iota
	// RoleNoGo inspects the minimum material limit.
	RoleNoGo
	// RoleGoGoSettingPlug checks that a shaft go gauge is not undersized.
	RoleGoGoSettingPlug
	// RoleGoWearSettingPlug checks a shaft go gauge for wear.
	RoleGoWearSettingPlug
	// RoleNoGoGoSettingPlug checks a shaft no-go gauge.
	RoleNoGoGoSettingPlug

	// NumGaugeRoles is the number of gauge roles.
	NumGaugeRoles = int(RoleNoGoGoSettingPlug) + 1
)

// GaugeRoles lists every role in display order.
var GaugeRoles = []GaugeRole{
	RoleGo,
	RoleNoGo,
	RoleGoGoSettingPlug,
	RoleGoWearSettingPlug,
	RoleNoGoGoSettingPlug,
}

func (r GaugeRole) String() string {
	switch r {
	case RoleGo:
		return "go gauge"
	case RoleNoGo:
		return "no-go gauge"
	case RoleGoGoSettingPlug:
		return "go-go setting plug"
	case RoleGoWearSettingPlug:
		return "go-wear setting plug"
	case RoleNoGoGoSettingPlug:
		return "no-go-go setting plug"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Code returns the short marking used on drawings: T, Z, TT, TS or ZT.
func (r GaugeRole) Code() string {
	switch r {
	case RoleGo:
		return "T"
	case RoleNoGo:
		return "Z"
	case RoleGoGoSettingPlug:
		return "TT"
	case RoleGoWearSettingPlug:
		return "TS"
	case RoleNoGoGoSettingPlug:
		return "ZT"
	default:
		return "?"
	}
}

// IsSettingPlug reports whether the role is one of the shaft setting plugs.
func (r GaugeRole) IsSettingPlug() bool {
	return r == RoleGoGoSettingPlug || r == RoleGoWearSettingPlug || r == RoleNoGoGoSettingPlug
}

// GaugeSpec holds the dimensions of one gauge member, in millimetres except
// Ra which is in micrometres. WearLimit and Ra are invalid when absent.
type GaugeSpec struct {
	Nominal        decimal.Decimal     `json:"nominal"`
	UpperDeviation decimal.Decimal     `json:"upper_deviation"`
	LowerDeviation decimal.Decimal     `json:"lower_deviation"`
	WearLimit      decimal.NullDecimal `json:"wear_limit"`
	Ra             decimal.NullDecimal `json:"ra"`
	Role           GaugeRole           `json:"role"`
}

// PartInput is a validated request: the part nominal size, its deviations
// (all millimetres) and the feature kind.
type PartInput struct {
	Nominal        decimal.Decimal `json:"nominal"`
	UpperDeviation decimal.Decimal `json:"upper_deviation"`
	LowerDeviation decimal.Decimal `json:"lower_deviation"`
	Feature        Feature         `json:"feature"`
}

// GaugeResult bundles everything computed for one part.
type GaugeResult struct {
	Input      PartInput         `json:"input"`
	UpperLimit decimal.Decimal   `json:"upper_limit"`
	LowerLimit decimal.Decimal   `json:"lower_limit"`
	Tolerance  decimal.Decimal   `json:"tolerance"`
	Resolved   ResolvedTolerance `json:"resolved"`
	// Gauges is indexed by GaugeRole. Nil entries do not apply to the feature.
	Gauges [NumGaugeRoles]*GaugeSpec `json:"gauges"`
}

// Gauge returns the spec for role and whether it applies.
func (r *GaugeResult) Gauge(role GaugeRole) (GaugeSpec, bool) {
	if r == nil || int(role) < 0 || int(role) >= NumGaugeRoles || r.Gauges[role] == nil {
		return GaugeSpec{}, false
	}
	return *r.Gauges[role], true
}

// GradeLabel returns the part IT grade, e.g. "IT6".
func (r *GaugeResult) GradeLabel() string {
	return r.Resolved.GradeLabel()
}
