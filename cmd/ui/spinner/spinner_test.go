package spinner

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSpinnerCtrlC(t *testing.T) {
	t.Run("invokes the interrupt callback and quits", func(t *testing.T) {
		interrupted := false
		m := InitialModel("Counting directories...", func() { interrupted = true })

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

		if !interrupted {
			t.Error("Expected ctrl+c to invoke the interrupt callback")
		}
		if cmd == nil {
			t.Fatal("Expected a quit command after ctrl+c")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("Expected the command to be tea.Quit")
		}
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		interrupted := false
		m := InitialModel("Counting directories...", func() { interrupted = true })

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		if interrupted {
			t.Error("Expected plain keys not to interrupt")
		}
		if cmd != nil {
			t.Error("Expected plain keys to be ignored")
		}
	})

	t.Run("tolerates a nil callback", func(t *testing.T) {
		m := InitialModel("Counting directories...", nil)
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	})
}
