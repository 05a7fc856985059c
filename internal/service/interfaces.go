// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/limit-gauge/internal/model"
)

// DesignStore defines the contract for design history persistence.
type DesignStore interface {
	SaveDesign(ctx context.Context, res *model.GaugeResult) (*model.Design, error)
	GetDesign(ctx context.Context, id string) (*model.Design, error)
	ListDesigns(ctx context.Context, limit int) ([]model.Design, error)
	DeleteDesign(ctx context.Context, id string) error
	Migrate(ctx context.Context) error
	Close() error
}

// Calculator computes a gauge set for a part.
type Calculator interface {
	Compute(in model.PartInput) (*model.GaugeResult, error)
}
