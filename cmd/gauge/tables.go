package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/common"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/standards"
	"github.com/spf13/cobra"
)

// Table names accepted by --table.
const (
	tableT1Z1          = "t1z1"
	tableRa            = "ra"
	tableSettingPlugRa = "setting-plug-ra"
)

var tableNames = []string{tableT1Z1, tableRa, tableSettingPlugRa}

func tablesCmd() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the built-in GB/T 1957-2006 reference tables",
		Long: `Print the reference data the calculator uses:

  t1z1             gauge tolerance T1 and position Z1 by size and IT grade
  ra               working gauge roughness Ra by feature, grade and size
  setting-plug-ra  setting plug roughness Ra by grade and size`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := standards.Default()
			if err != nil {
				return err
			}

			selected := tableNames
			if table != "" {
				name := strings.ToLower(strings.TrimSpace(table))
				if !slices.Contains(tableNames, name) {
					return common.NewUserError(
						fmt.Sprintf("unknown table %q, expected one of %s", table, strings.Join(tableNames, ", ")), nil)
				}
				selected = []string{name}
			}

			var sections []string
			for _, name := range selected {
				switch name {
				case tableT1Z1:
					sections = append(sections,
						cli.Title("Gauge tolerance T1 and position Z1"),
						cli.RenderToleranceTable(tables.ToleranceBands()))
				case tableRa:
					for _, f := range model.Features {
						sections = append(sections,
							cli.Title(fmt.Sprintf("Working gauge roughness, %s", f)),
							cli.RenderRoughnessTable(tables.GaugeRoughness(f)))
					}
				case tableSettingPlugRa:
					sections = append(sections,
						cli.Title("Setting plug roughness"),
						cli.RenderRoughnessTable(tables.SettingPlugRoughness()))
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sections, "\n"))
			return err
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "only print one table (t1z1, ra, setting-plug-ra)")

	return cmd
}
