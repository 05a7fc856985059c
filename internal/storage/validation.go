package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidLimit  = errors.New("limit must be positive")
	ErrInvalidDesign = errors.New("invalid design")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	return nil
}

// validateResult rejects results that could not have come from a
// successful computation.
func validateResult(res *model.GaugeResult) error {
	if res == nil {
		return fmt.Errorf("%w: result", ErrNilParameter)
	}
	if !res.Input.Feature.IsValid() {
		return fmt.Errorf("%w: unknown feature %q", ErrInvalidDesign, res.Input.Feature)
	}
	if res.Resolved.ITGrade == 0 {
		return fmt.Errorf("%w: no IT grade resolved", ErrInvalidDesign)
	}
	if res.Gauges[model.RoleGo] == nil || res.Gauges[model.RoleNoGo] == nil {
		return fmt.Errorf("%w: missing working gauges", ErrInvalidDesign)
	}
	return nil
}
