package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/shopspring/decimal"
)

// Field names as shown to the user.
const (
	FieldNominal        = "nominal size"
	FieldUpperDeviation = "upper deviation"
	FieldLowerDeviation = "lower deviation"
)

// InputKind classifies why a field could not be used.
type InputKind int

const (
	// InputIncomplete means the field is blank or a number still being typed.
	InputIncomplete InputKind = iota
	// InputNotNumeric means the field text is not a number at all.
	InputNotNumeric
)

// String returns a string representation of the input kind.
func (k InputKind) String() string {
	switch k {
	case InputIncomplete:
		return "Incomplete"
	case InputNotNumeric:
		return "NotNumeric"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// FieldError reports a single unusable input field.
type FieldError struct {
	Field string
	Kind  InputKind
}

func (e *FieldError) Error() string {
	if e.Kind == InputIncomplete {
		return e.Field + ": not fully entered"
	}
	return e.Field + ": numbers only"
}

// partialNumerals are prefixes of a valid number that should not be
// reported as errors while the user is typing.
var partialNumerals = map[string]struct{}{
	"":    {},
	".":   {},
	"-":   {},
	"-.":  {},
	"0.":  {},
	"-0.": {},
	"+":   {},
	"+.":  {},
}

// ParseField parses the text of one numeric field.
func ParseField(field, text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if _, ok := partialNumerals[trimmed]; ok {
		return decimal.Zero, &FieldError{Field: field, Kind: InputIncomplete}
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Kind: InputNotNumeric}
	}
	return d, nil
}

// ParseInputs parses the three numeric fields of a part. Every field is
// checked; the returned error joins one FieldError per unusable field.
func ParseInputs(nominal, upper, lower string, feature model.Feature) (model.PartInput, error) {
	var errs []error
	parse := func(field, text string) decimal.Decimal {
		d, err := ParseField(field, text)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}

	in := model.PartInput{
		Nominal:        parse(FieldNominal, nominal),
		UpperDeviation: parse(FieldUpperDeviation, upper),
		LowerDeviation: parse(FieldLowerDeviation, lower),
		Feature:        feature,
	}
	if len(errs) > 0 {
		return model.PartInput{}, errors.Join(errs...)
	}
	return in, nil
}

// FieldErrors extracts the individual field errors from an error returned
// by ParseInputs.
func FieldErrors(err error) []*FieldError {
	if err == nil {
		return nil
	}
	var out []*FieldError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FieldErrors(e)...)
		}
		return out
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}

// OnlyIncomplete reports whether err consists solely of incomplete fields,
// which callers show without error styling.
func OnlyIncomplete(err error) bool {
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return false
	}
	for _, fe := range fields {
		if fe.Kind != InputIncomplete {
			return false
		}
	}
	return true
}
