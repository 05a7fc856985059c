package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved gauge designs",
		Long:  `List, show and delete designs saved with 'gauge calc --save' or ctrl+s in the form.`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyDeleteCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved designs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			designs, err := store.ListDesigns(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list designs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(designs) == 0 {
				_, err := fmt.Fprintln(out, cli.Status(cli.LevelInfo, "No saved designs. Use 'gauge calc --save' to save one."))
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer func() {
				if flushErr := w.Flush(); flushErr != nil {
					slog.Error("failed to flush table writer", "error", flushErr)
				}
			}()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Created"),
				headerStyle.Render("Feature"),
				headerStyle.Render("Nominal"),
				headerStyle.Render("Upper"),
				headerStyle.Render("Lower"),
				headerStyle.Render("Grade"),
			); err != nil {
				return err
			}

			for _, d := range designs {
				in := d.Result.Input
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID,
					d.CreatedAt.Local().Format(time.DateTime),
					in.Feature,
					viewmodel.FormatDecimal(in.Nominal),
					viewmodel.FormatDecimal(in.UpperDeviation),
					viewmodel.FormatDecimal(in.LowerDeviation),
					d.Result.GradeLabel(),
				); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "maximum number of designs to list")

	return cmd
}

func historyShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			design, err := store.GetDesign(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(design)
			}

			_, err = fmt.Fprintln(out, renderDesign(design))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored design as JSON")

	return cmd
}

func renderDesign(d *model.Design) string {
	in := d.Result.Input
	header := fmt.Sprintf("%s  %s\n%s %s mm, upper %s, lower %s",
		cli.BoldStyle.Render(d.ID),
		cli.MutedStyle.Render(d.CreatedAt.Local().Format(time.DateTime)),
		in.Feature,
		viewmodel.FormatDecimal(in.Nominal),
		viewmodel.FormatDecimal(in.UpperDeviation),
		viewmodel.FormatDecimal(in.LowerDeviation),
	)
	view := viewmodel.NewResultView(&d.Result, settings.Placeholder)
	return lipgloss.JoinVertical(lipgloss.Left, header, cli.RenderResult(view))
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			if err := store.DeleteDesign(ctx, args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.Status(cli.LevelSuccess, "Deleted design "+args[0]))
			return err
		},
	}
}
