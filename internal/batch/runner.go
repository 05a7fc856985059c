package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/service"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of evaluating one row. Exactly one of Result and
// Err is set.
type Outcome struct {
	Err    error
	Result *model.GaugeResult
	Row    Row
}

// Runner computes rows concurrently.
type Runner struct {
	calc           service.Calculator
	onRowDone      func()
	defaultFeature model.Feature
	workers        int
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds how many rows are computed at once.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithDefaultFeature sets the feature used for rows that leave it blank.
func WithDefaultFeature(f model.Feature) Option {
	return func(r *Runner) {
		r.defaultFeature = f
	}
}

// WithProgress registers a callback invoked after each row completes. It
// may be called from several goroutines at once.
func WithProgress(fn func()) Option {
	return func(r *Runner) {
		r.onRowDone = fn
	}
}

// NewRunner creates a runner over calc.
func NewRunner(calc service.Calculator, opts ...Option) *Runner {
	r := &Runner{
		calc:           calc,
		workers:        4,
		defaultFeature: model.FeatureShaft,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every row. Row failures are reported in their Outcome;
// Run itself only fails when ctx is canceled.
func (r *Runner) Run(ctx context.Context, rows []Row) ([]Outcome, error) {
	outcomes := make([]Outcome, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.evaluate(row)
			if r.onRowDone != nil {
				r.onRowDone()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch canceled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch canceled: %w", err)
	}
	return outcomes, nil
}

func (r *Runner) evaluate(row Row) Outcome {
	out := Outcome{Row: row}

	feature := r.defaultFeature
	if strings.TrimSpace(row.Feature) != "" {
		f, err := model.ParseFeature(row.Feature)
		if err != nil {
			out.Err = err
			return out
		}
		feature = f
	}
	out.Row.Feature = string(feature)

	in, err := cli.ParseInputs(row.Nominal, row.Upper, row.Lower, feature)
	if err != nil {
		out.Err = err
		return out
	}

	res, err := r.calc.Compute(in)
	if err != nil {
		slog.Debug("Batch row failed", "line", row.Line, "error", err)
		out.Err = err
		return out
	}
	out.Result = res
	return out
}
