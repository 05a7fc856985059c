package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// wideLayout is the width from which gauge panels are laid out side by side.
const wideLayout = 100

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("Limit Gauge Designer"),
		m.renderInputs(),
		m.renderInfo(),
		m.renderPanels(),
	}
	if m.status != "" {
		sections = append(sections, m.renderStatus())
	}
	if m.view.ShowHelp {
		sections = append(sections, m.renderHelp())
	}
	sections = append(sections, m.theme.Footer.Render(cli.Footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInputs() string {
	rows := make([]string, 0, numFields+2)
	for i := Field(0); i < numFields; i++ {
		label := m.theme.Label.Render(fieldLabels[i])
		if i == m.focus {
			label = m.theme.Label.Foreground(m.theme.Primary).Render(fieldLabels[i])
		}
		rows = append(rows, label+m.inputs[i].View()+m.theme.Subtitle.Render(" mm"))
	}

	rows = append(rows, m.theme.Label.Render("Feature")+m.renderFeature())

	grade := m.view.Result.Grade
	gradeStyle := m.theme.Value
	if grade == m.placeholder {
		gradeStyle = m.theme.Placeholder
	}
	rows = append(rows, m.theme.Label.Render("IT grade")+gradeStyle.Render(grade))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderFeature() string {
	parts := make([]string, 0, len(model.Features))
	for _, f := range model.Features {
		style := m.theme.Unselected
		if f == m.feature {
			style = m.theme.Selected
		}
		parts = append(parts, style.Render(f.String()))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderInfo() string {
	info := m.view.Info
	if info == "" {
		return ""
	}
	if m.view.Width > 0 {
		info = viewmodel.TruncateString(info, m.view.Width)
	}
	if m.view.HasError() {
		return m.theme.StatusError.Render(info)
	}
	return m.theme.StatusWarning.Render(info)
}

func (m Model) renderPanels() string {
	var working, plugs []string
	for _, g := range m.view.Result.Gauges {
		if g.Role.IsSettingPlug() {
			plugs = append(plugs, m.renderPanel(g))
		} else {
			working = append(working, m.renderPanel(g))
		}
	}
	if len(working)+len(plugs) == 0 {
		return ""
	}

	if m.view.Width < wideLayout {
		return lipgloss.JoinVertical(lipgloss.Left, append(working, plugs...)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, working...),
		lipgloss.JoinHorizontal(lipgloss.Top, plugs...),
	)
}

func (m Model) renderPanel(g viewmodel.GaugeView) string {
	title := fmt.Sprintf("%s (%s)", g.Title, g.Code)

	rows := []string{
		m.theme.Bold.Render(title),
		m.renderValue("Nominal", g.Nominal),
		m.renderValue("Upper dev.", g.UpperDeviation),
		m.renderValue("Lower dev.", g.LowerDeviation),
	}
	if g.ShowWearLimit {
		rows = append(rows, m.renderValue("Wear limit", g.WearLimit))
	}
	rows = append(rows, m.renderValue("Ra (μm)", g.Ra))

	// A result kept through an input error is stale until the form is ready again.
	style := m.theme.Panel
	if !g.Applicable || !m.view.IsReady() {
		style = m.theme.PanelInactive
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderValue(label, value string) string {
	style := m.theme.Value
	if value == m.placeholder {
		style = m.theme.Placeholder
	}
	return m.theme.Label.Width(12).Render(label) + style.Render(value)
}

func (m Model) renderStatus() string {
	if m.statusError {
		return m.theme.StatusError.Render(m.status)
	}
	return m.theme.StatusSuccess.Render(m.status)
}

func (m Model) renderHelp() string {
	active := m.view.GetActiveKeyBindings()
	bindings := make([]key.Binding, 0, len(active))
	for _, kb := range active {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(kb.Key),
			key.WithHelp(kb.Key, kb.Description),
		))
	}
	return m.help.ShortHelpView(bindings)
}
