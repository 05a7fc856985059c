package model

import (
	"fmt"
	"strings"
)

// Feature identifies the kind of part a gauge pair inspects.
type Feature string

const (
	// FeatureShaft is an external feature, inspected with ring or snap gauges.
	FeatureShaft Feature = "shaft"
	// FeatureHole is an internal feature, inspected with plug gauges.
	FeatureHole Feature = "hole"
)

// Features lists every supported feature in display order.
var Features = []Feature{FeatureShaft, FeatureHole}

// ParseFeature converts user text into a Feature.
func ParseFeature(s string) (Feature, error) {
	switch Feature(strings.ToLower(strings.TrimSpace(s))) {
	case FeatureShaft:
		return FeatureShaft, nil
	case FeatureHole:
		return FeatureHole, nil
	default:
		return "", fmt.Errorf("unknown feature %q: expected shaft or hole", s)
	}
}

// IsValid reports whether f is one of the supported features.
func (f Feature) IsValid() bool {
	return f == FeatureShaft || f == FeatureHole
}

// Toggle returns the other feature. Used by the interactive form selector.
func (f Feature) Toggle() Feature {
	if f == FeatureHole {
		return FeatureShaft
	}
	return FeatureHole
}

func (f Feature) String() string {
	return string(f)
}
