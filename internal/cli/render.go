package cli

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Footer names the standard all values are taken from.
const Footer = "Calculated per GB/T 1957-2006"

var resultHeaders = []string{"Gauge", "Code", "Nominal", "Upper dev.", "Lower dev.", "Wear limit", "Ra (μm)"}

// RenderResult renders a calculation as a boxed table.
func RenderResult(view viewmodel.ResultView) string {
	rows := make([][]string, 0, len(view.Gauges))
	applicable := make([]bool, 0, len(view.Gauges))
	for _, g := range view.Gauges {
		rows = append(rows, []string{
			g.Title, g.Code, g.Nominal, g.UpperDeviation, g.LowerDeviation, g.WearLimit, g.Ra,
		})
		applicable = append(applicable, g.Applicable)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(MutedStyle).
		Headers(resultHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCell
			case row >= 0 && row < len(applicable) && !applicable[row]:
				return mutedCell
			default:
				return bodyCell
			}
		})

	title := fmt.Sprintf("%s %s · %s", GaugeIcon, view.Feature, view.Grade)
	content := lipgloss.JoinVertical(lipgloss.Left, t.String(), MutedStyle.Render(Footer))
	return Box(title, content)
}

// RenderToleranceTable renders T1 and Z1 for every size bracket and grade.
func RenderToleranceTable(bands []model.ToleranceBand) string {
	headers := []string{"Size (mm)", "Grade", "Tolerance (μm)", "T1 (μm)", "Z1 (μm)"}
	var rows [][]string
	for _, b := range bands {
		for _, r := range b.Records {
			rows = append(rows, []string{
				b.Size.String(),
				"IT" + strconv.Itoa(r.ITGrade),
				viewmodel.FormatDecimal(r.Tolerance),
				viewmodel.FormatDecimal(r.T1),
				viewmodel.FormatDecimal(r.Z1),
			})
		}
	}
	return renderTable(headers, rows)
}

// RenderRoughnessTable renders Ra by grade bracket and size bracket.
func RenderRoughnessTable(bands []model.RoughnessBand) string {
	headers := []string{"Grades", "Size (mm)", "Ra (μm)"}
	var rows [][]string
	for _, b := range bands {
		for _, e := range b.Entries {
			rows = append(rows, []string{
				b.Grades.String(),
				e.Size.String(),
				viewmodel.FormatDecimal(e.Ra),
			})
		}
	}
	return renderTable(headers, rows)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(MutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		}).
		String()
}
