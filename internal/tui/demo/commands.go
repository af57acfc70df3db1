package demo

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped in tests; headless machines have no clipboard.
var (
	defaultClipboardWrite = clipboard.WriteAll
	clipboardWrite        = defaultClipboardWrite
)

func copyCmd(fieldID, value string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(value); err != nil {
			return copyFailedMsg{FieldID: fieldID, Err: fmt.Errorf("copy %s: %w", fieldID, err)}
		}
		return copiedMsg{FieldID: fieldID}
	}
}
