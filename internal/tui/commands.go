package tui

import (
	"context"
	"time"

	"github.com/Veraticus/limit-gauge/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

const saveTimeout = 5 * time.Second

// saveDesign persists res to the configured store.
func (m Model) saveDesign(res *model.GaugeResult) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		design, err := store.SaveDesign(ctx, res)
		if err != nil {
			return errorMsg{err: err}
		}
		return designSavedMsg{design: design}
	}
}
