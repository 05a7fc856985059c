package standards

import (
	"fmt"

	"github.com/Veraticus/limit-gauge/internal/model"
)

// validateSizes checks that brackets are non-empty and chained: each one
// starts where the previous one ended, so every size in the covered domain
// falls into exactly one bracket.
func validateSizes(sizes []model.SizeBracket) error {
	if len(sizes) == 0 {
		return fmt.Errorf("no size brackets")
	}
	for i, s := range sizes {
		if !s.Lower.LessThan(s.Upper) {
			return fmt.Errorf("bracket %s is empty", s)
		}
		if i > 0 && !sizes[i-1].Upper.Equal(s.Lower) {
			return fmt.Errorf("bracket %s does not continue %s", s, sizes[i-1])
		}
	}
	return nil
}

func validateToleranceBands(bands []model.ToleranceBand) error {
	sizes := make([]model.SizeBracket, len(bands))
	for i, b := range bands {
		sizes[i] = b.Size
		if len(b.Records) == 0 {
			return fmt.Errorf("bracket %s has no records", b.Size)
		}
		for j, r := range b.Records {
			if !r.Tolerance.IsPositive() || r.T1.IsNegative() || r.Z1.IsNegative() {
				return fmt.Errorf("bracket %s IT%d: tolerance must be positive and T1, Z1 non-negative", b.Size, r.ITGrade)
			}
			if j == 0 {
				continue
			}
			prev := b.Records[j-1]
			if !r.Tolerance.GreaterThan(prev.Tolerance) {
				return fmt.Errorf("bracket %s: tolerance %s does not increase after %s", b.Size, r.Tolerance, prev.Tolerance)
			}
			if r.ITGrade <= prev.ITGrade {
				return fmt.Errorf("bracket %s: grade IT%d does not increase after IT%d", b.Size, r.ITGrade, prev.ITGrade)
			}
		}
	}
	return validateSizes(sizes)
}

func validateRoughnessBands(bands []model.RoughnessBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("no grade brackets")
	}
	for i, b := range bands {
		if b.Grades.Lower > b.Grades.Upper {
			return fmt.Errorf("grade bracket %s is empty", b.Grades)
		}
		if i > 0 && b.Grades.Lower != bands[i-1].Grades.Upper+1 {
			return fmt.Errorf("grade bracket %s does not continue %s", b.Grades, bands[i-1].Grades)
		}

		sizes := make([]model.SizeBracket, len(b.Entries))
		for j, e := range b.Entries {
			sizes[j] = e.Size
			if !e.Ra.IsPositive() {
				return fmt.Errorf("grade bracket %s: Ra must be positive", b.Grades)
			}
		}
		if err := validateSizes(sizes); err != nil {
			return fmt.Errorf("grade bracket %s: %w", b.Grades, err)
		}
	}
	return nil
}
