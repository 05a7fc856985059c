package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Magnitude limits for sizes and deviations. The tables stop at 500 mm, and
// values beyond these limits would rescale to very large integers when
// compared or added.
const (
	MaxIntegerDigits  = 9
	MaxFractionDigits = 24
)

// WithinMagnitude reports whether d has at most MaxIntegerDigits digits
// before the point and MaxFractionDigits after it. Only the exponent and
// coefficient length are inspected, so the check is cheap for any input.
func WithinMagnitude(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxFractionDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxIntegerDigits
}

// SizeBracket is a nominal size range in millimetres, lower bound exclusive
// and upper bound inclusive. A size sitting exactly on a boundary belongs to
// the bracket it closes.
type SizeBracket struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
}

// Contains reports whether Lower < size <= Upper.
func (b SizeBracket) Contains(size decimal.Decimal) bool {
	return size.GreaterThan(b.Lower) && size.LessThanOrEqual(b.Upper)
}

func (b SizeBracket) String() string {
	return fmt.Sprintf("(%s, %s]", b.Lower.String(), b.Upper.String())
}

// ToleranceRecord is one row of the part tolerance table. Tolerance, T1 and Z1
// are tabulated in micrometres.
type ToleranceRecord struct {
	Tolerance decimal.Decimal
	T1        decimal.Decimal
	Z1        decimal.Decimal
	ITGrade   int
}

// ToleranceBand groups the tolerance records of one nominal size bracket,
// ordered by strictly increasing tolerance.
type ToleranceBand struct {
	Records []ToleranceRecord
	Size    SizeBracket
}

// GradeBracket is an inclusive range of IT grades.
type GradeBracket struct {
	Lower int
	Upper int
}

// Contains reports whether Lower <= grade <= Upper.
func (g GradeBracket) Contains(grade int) bool {
	return grade >= g.Lower && grade <= g.Upper
}

func (g GradeBracket) String() string {
	if g.Lower == g.Upper {
		return fmt.Sprintf("IT%d", g.Lower)
	}
	return fmt.Sprintf("IT%d-IT%d", g.Lower, g.Upper)
}

// RoughnessEntry assigns a surface roughness Ra (micrometres) to a gauge
// nominal size bracket.
type RoughnessEntry struct {
	Ra   decimal.Decimal
	Size SizeBracket
}

// RoughnessBand groups roughness entries under the IT grades they apply to.
type RoughnessBand struct {
	Entries []RoughnessEntry
	Grades  GradeBracket
}

// ResolvedTolerance is the outcome of classifying a part tolerance: the IT
// grade and the gauge parameters, converted to millimetres.
type ResolvedTolerance struct {
	// T1 is the manufacturing tolerance of the working gauge.
	T1 decimal.Decimal `json:"t1"`
	// Z1 is the offset of the go gauge tolerance zone centre from the
	// maximum material limit.
	Z1      decimal.Decimal `json:"z1"`
	ITGrade int             `json:"it_grade"`
}

// GradeLabel renders the grade as shown to users, e.g. "IT7".
func (r ResolvedTolerance) GradeLabel() string {
	return fmt.Sprintf("IT%d", r.ITGrade)
}
