package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

// SettleMsg delivers a blur ticket back to the component that issued it.
type SettleMsg struct {
	ID     string
	Ticket field.Ticket
}

func settleCmd(id string, t field.Ticket) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return SettleMsg{ID: id, Ticket: t}
	})
}
