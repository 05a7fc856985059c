package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/limit-gauge/internal/tui"
	"github.com/Veraticus/limit-gauge/internal/tui/themes"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive gauge design form",
		Long: `Open a terminal form with nominal size, upper and lower deviation fields and a
shaft/hole selector. Results update on every keystroke.

Keys: tab/shift+tab move between fields, ctrl+f toggles shaft/hole,
ctrl+s saves the current design to history, esc quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			calc, err := newCalculator()
			if err != nil {
				return err
			}

			opts := []tui.Option{
				tui.WithCalculator(calc),
				tui.WithTheme(themes.GetTheme(settings.Theme)),
				tui.WithPlaceholder(settings.Placeholder),
				tui.WithFeature(settings.DefaultFeature),
			}

			if !noHistory {
				store, storeErr := initStorage(ctx)
				if storeErr != nil {
					slog.Warn("Design history unavailable, saving is disabled", "error", storeErr)
				} else {
					defer closeStorage(store)
					opts = append(opts, tui.WithStore(store))
				}
			}

			if err := tui.Run(ctx, opts...); err != nil {
				return fmt.Errorf("interactive form failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not open design history (disables saving)")

	return cmd
}
