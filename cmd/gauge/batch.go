package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/limit-gauge/internal/batch"
	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/common"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var (
		output     string
		workers    int
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "batch <input.csv>",
		Short: "Calculate gauge sets for every part in a CSV file",
		Long: `Read parts from a CSV file with the header nominal,upper,lower[,feature] and
write one result row per part. Rows that cannot be calculated keep their
message in the error column; they do not stop the run.

Rows without a feature use defaults.feature from the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return common.NewUserError("cannot open input", err)
			}
			defer func() { _ = in.Close() }()

			rows, err := batch.ReadRows(in)
			if err != nil {
				return common.NewUserError("cannot read input", err)
			}

			calc, err := newCalculator()
			if err != nil {
				return err
			}

			if workers <= 0 {
				workers = settings.BatchWorkers
			}
			opts := []batch.Option{
				batch.WithWorkers(workers),
				batch.WithDefaultFeature(settings.DefaultFeature),
			}

			var progress *cli.BatchProgress
			if !noProgress {
				progress = cli.NewBatchProgress(cmd.ErrOrStderr(), len(rows))
				opts = append(opts, batch.WithProgress(progress.RowDone))
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context(), true)

			outcomes, err := batch.NewRunner(calc, opts...).Run(ctx, rows)
			if err != nil {
				return runError(err, interrupts, progress, len(rows))
			}
			if progress != nil {
				progress.Finish()
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return common.NewUserError("cannot create output", err)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil {
						slog.Error("failed to close output", "error", closeErr)
					}
				}()
				out = f
			}

			if err := batch.WriteOutcomes(out, outcomes, settings.Placeholder); err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
				}
			}
			slog.Info("Batch complete", "rows", len(outcomes), "failed", failed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "rows computed at once (default: batch.workers from config)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")

	return cmd
}

// runError reports a batch run that ended early. Interrupts are logged with
// the rows completed and returned as a user error.
func runError(err error, interrupts interface{ WasInterrupted() bool }, progress *cli.BatchProgress, total int) error {
	if !interrupts.WasInterrupted() {
		return err
	}
	slog.Info("Batch interrupted", "completed", progress.Current(), "rows", total)
	return common.NewUserError("batch interrupted, no output written", nil)
}
