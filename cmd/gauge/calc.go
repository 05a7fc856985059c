package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/common"
	"github.com/Veraticus/limit-gauge/internal/engine"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func calcCmd() *cobra.Command {
	var (
		nominal, upper, lower, feature string
		asJSON, save                   bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a gauge set for one part",
		Long: `Calculate the go and no-go working gauges for a part, plus the setting plugs
used to check shaft gauges.

Deviations are in millimetres, e.g. --upper 0.01 --lower -0.01.`,
		Example: `  gauge calc --nominal 20 --upper 0.01 --lower -0.01
  gauge calc --nominal 45 --upper 0.025 --lower 0 --feature hole --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := settings.DefaultFeature
			if feature != "" {
				parsed, err := model.ParseFeature(feature)
				if err != nil {
					return common.NewUserError("invalid feature", err)
				}
				f = parsed
			}

			in, err := cli.ParseInputs(nominal, upper, lower, f)
			if err != nil {
				return common.NewUserError("invalid input", err)
			}

			calc, err := newCalculator()
			if err != nil {
				return err
			}
			res, err := calc.Compute(in)
			if err != nil {
				if errors.Is(err, engine.ErrToleranceOutOfRange) {
					return common.NewUserError(engine.ErrToleranceOutOfRange.Error(), nil)
				}
				return common.NewUserError("calculation failed", err)
			}

			view := viewmodel.NewResultView(res, settings.Placeholder)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(view); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			} else if _, err := fmt.Fprintln(out, cli.RenderResult(view)); err != nil {
				return err
			}

			if !save {
				return nil
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			design, err := store.SaveDesign(ctx, res)
			if err != nil {
				return fmt.Errorf("failed to save design: %w", err)
			}
			_, err = fmt.Fprintln(cmd.ErrOrStderr(), cli.Status(cli.LevelSuccess, "Saved design "+design.ID))
			return err
		},
	}

	cmd.Flags().StringVar(&nominal, "nominal", "", "nominal size in mm")
	cmd.Flags().StringVar(&upper, "upper", "", "upper deviation in mm")
	cmd.Flags().StringVar(&lower, "lower", "", "lower deviation in mm")
	cmd.Flags().StringVar(&feature, "feature", "", "shaft or hole (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "save the result to design history")

	return cmd
}
