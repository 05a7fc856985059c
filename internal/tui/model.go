// Package tui implements the interactive gauge design form.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/limit-gauge/internal/cli"
	"github.com/Veraticus/limit-gauge/internal/engine"
	"github.com/Veraticus/limit-gauge/internal/model"
	"github.com/Veraticus/limit-gauge/internal/service"
	"github.com/Veraticus/limit-gauge/internal/tui/themes"
	"github.com/Veraticus/limit-gauge/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies one of the numeric inputs.
type Field int

const (
	FieldNominal Field = iota
	FieldUpper
	FieldLower
	numFields
)

var fieldLabels = [numFields]string{
	FieldNominal: "Nominal size",
	FieldUpper:   "Upper deviation",
	FieldLower:   "Lower deviation",
}

// Model holds the form state. Every input change re-runs the whole
// calculation and replaces the displayed result.
type Model struct {
	theme       themes.Theme
	calc        service.Calculator
	store       service.DesignStore
	result      *model.GaugeResult
	help        help.Model
	keymap      KeyMap
	placeholder string
	status      string
	view        viewmodel.AppView
	inputs      [numFields]textinput.Model
	feature     model.Feature
	focus       Field
	statusError bool
	quitting    bool
}

// New creates the form model.
func New(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	calc := cfg.Calculator
	if calc == nil {
		defaultCalc, err := engine.NewDefault()
		if err != nil {
			return Model{}, err
		}
		calc = defaultCalc
	}

	m := Model{
		theme:       cfg.Theme,
		calc:        calc,
		store:       cfg.Store,
		help:        help.New(),
		keymap:      DefaultKeyMap(),
		placeholder: cfg.Placeholder,
		feature:     cfg.Feature,
		view: viewmodel.AppView{
			Width:    cfg.Width,
			Height:   cfg.Height,
			ShowHelp: cfg.ShowHelp,
		},
	}

	values := [numFields]string{cfg.Nominal, cfg.Upper, cfg.Lower}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 24
		ti.Width = 16
		ti.Placeholder = "0"
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[FieldNominal].Focus()

	for _, b := range m.keymap.ShortHelp() {
		m.view.KeyBindings = append(m.view.KeyBindings, viewmodel.KeyBinding{
			Key:         b.Help().Key,
			Description: b.Help().Desc,
			IsActive:    m.store != nil || b.Help().Key != m.keymap.Save.Help().Key,
		})
	}

	m.recompute()
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case designSavedMsg:
		m.setStatus(fmt.Sprintf("Saved design %s", msg.design.ID), false)
		return m, nil

	case errorMsg:
		m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), true)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextField):
		return m, m.setFocus((m.focus + 1) % numFields)

	case key.Matches(msg, m.keymap.PrevField):
		return m, m.setFocus((m.focus + numFields - 1) % numFields)

	case key.Matches(msg, m.keymap.ToggleFeature):
		m.feature = m.feature.Toggle()
		m.recompute()
		return m, nil

	case key.Matches(msg, m.keymap.Save):
		return m.handleSave()
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.status = ""
		m.recompute()
	}
	return m, cmd
}

func (m Model) handleSave() (tea.Model, tea.Cmd) {
	switch {
	case m.store == nil:
		m.setStatus("History is not configured", true)
		return m, nil
	case !m.view.IsReady() || m.result == nil:
		m.setStatus("Nothing to save: complete the inputs first", true)
		return m, nil
	}
	m.setStatus("Saving...", false)
	return m, m.saveDesign(m.result)
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}

func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.statusError = isError
}

// recompute parses the fields, runs the calculator and rebuilds the view.
// Input errors leave the previous result on screen, drawn inactive, as long
// as the feature is unchanged; an out-of-range part clears it.
func (m *Model) recompute() {
	in, err := cli.ParseInputs(
		m.inputs[FieldNominal].Value(),
		m.inputs[FieldUpper].Value(),
		m.inputs[FieldLower].Value(),
		m.feature,
	)
	if err != nil {
		m.result = nil
		if cli.OnlyIncomplete(err) {
			m.view.State = viewmodel.StateIncomplete
		} else {
			m.view.State = viewmodel.StateInputError
		}
		m.view.Info = joinErrors(err)
		if len(m.view.Result.Gauges) == 0 || m.view.Result.Feature != m.feature.String() {
			m.view.Result = viewmodel.ClearedResultView(m.feature, m.placeholder)
		}
		return
	}

	res, err := m.calc.Compute(in)
	if err != nil {
		m.result = nil
		m.view.Result = viewmodel.ClearedResultView(m.feature, m.placeholder)
		m.view.Info = err.Error()
		if errors.Is(err, engine.ErrToleranceOutOfRange) {
			m.view.State = viewmodel.StateOutOfRange
			m.view.Info = engine.ErrToleranceOutOfRange.Error()
		} else {
			m.view.State = viewmodel.StateInputError
		}
		return
	}

	m.result = res
	m.view.State = viewmodel.StateReady
	m.view.Info = ""
	m.view.Result = viewmodel.NewResultView(res, m.placeholder)
}

func joinErrors(err error) string {
	fields := cli.FieldErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}
	msgs := make([]string, len(fields))
	for i, fe := range fields {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Result returns the last successful calculation, or nil.
func (m Model) Result() *model.GaugeResult {
	return m.result
}

// AppView returns the current view model.
func (m Model) AppView() viewmodel.AppView {
	return m.view
}

// Feature returns the selected feature.
func (m Model) Feature() model.Feature {
	return m.feature
}

// Focused returns the field that receives typed input.
func (m Model) Focused() Field {
	return m.focus
}

// Status returns the last save status message.
func (m Model) Status() string {
	return m.status
}
