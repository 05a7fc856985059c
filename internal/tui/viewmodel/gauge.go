package viewmodel

import (
	"strings"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultPlaceholder marks values that do not apply or were not found, so
// they are never confused with a computed zero.
const DefaultPlaceholder = "—"

// GaugeView is one gauge member ready for display. All values are
// preformatted strings.
type GaugeView struct {
	Code           string          `json:"code"`
	Title          string          `json:"title"`
	Nominal        string          `json:"nominal"`
	UpperDeviation string          `json:"upper_deviation"`
	LowerDeviation string          `json:"lower_deviation"`
	WearLimit      string          `json:"wear_limit,omitempty"`
	Ra             string          `json:"ra"`
	Role           model.GaugeRole `json:"-"`
	ShowWearLimit  bool            `json:"-"`
	Applicable     bool            `json:"applicable"`
}

// ResultView is a complete calculation ready for display.
type ResultView struct {
	Feature string      `json:"feature"`
	Grade   string      `json:"grade"`
	Gauges  []GaugeView `json:"gauges"`
}

var gaugeTitles = map[model.GaugeRole]string{
	model.RoleGo:                "Go gauge",
	model.RoleNoGo:              "No-go gauge",
	model.RoleGoGoSettingPlug:   "Go-go setting plug",
	model.RoleGoWearSettingPlug: "Go-wear setting plug",
	model.RoleNoGoGoSettingPlug: "No-go-go setting plug",
}

// NewResultView formats a computed result. Members that do not apply to
// the feature, and missing wear limits or roughness, render as placeholder.
func NewResultView(res *model.GaugeResult, placeholder string) ResultView {
	view := ClearedResultView(res.Input.Feature, placeholder)
	view.Grade = res.GradeLabel()

	for i, role := range model.GaugeRoles {
		g, ok := res.Gauge(role)
		if !ok {
			continue
		}
		gv := &view.Gauges[i]
		gv.Applicable = true
		gv.Nominal = FormatDecimal(g.Nominal)
		gv.UpperDeviation = FormatDecimal(g.UpperDeviation)
		gv.LowerDeviation = FormatDecimal(g.LowerDeviation)
		gv.Ra = FormatOptional(g.Ra, placeholder)
		if gv.ShowWearLimit {
			gv.WearLimit = FormatOptional(g.WearLimit, placeholder)
		}
	}

	return view
}

// ClearedResultView returns a view with every value replaced by the
// placeholder, used when nothing could be computed.
func ClearedResultView(feature model.Feature, placeholder string) ResultView {
	view := ResultView{
		Feature: feature.String(),
		Grade:   placeholder,
		Gauges:  make([]GaugeView, 0, len(model.GaugeRoles)),
	}
	for _, role := range model.GaugeRoles {
		gv := GaugeView{
			Role:           role,
			Code:           role.Code(),
			Title:          gaugeTitles[role],
			Nominal:        placeholder,
			UpperDeviation: placeholder,
			LowerDeviation: placeholder,
			Ra:             placeholder,
			ShowWearLimit:  role == model.RoleGo,
		}
		if gv.ShowWearLimit {
			gv.WearLimit = placeholder
		}
		view.Gauges = append(view.Gauges, gv)
	}
	return view
}

// Gauge returns the view for role.
func (v ResultView) Gauge(role model.GaugeRole) (GaugeView, bool) {
	for _, g := range v.Gauges {
		if g.Role == role {
			return g, true
		}
	}
	return GaugeView{}, false
}

// FormatDecimal renders d without trailing zeros or a dangling decimal
// point: 12.500 becomes "12.5" and 12.0 becomes "12".
func FormatDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatOptional renders n, or placeholder when n is unset.
func FormatOptional(n decimal.NullDecimal, placeholder string) string {
	if !n.Valid {
		return placeholder
	}
	return FormatDecimal(n.Decimal)
}
