package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// termWindow realizes the cursor lock on a terminal. Locking hides the
// text cursor and captures all mouse motion; unlocking gives both back.
// Commands are queued until the host flushes them after a frame.
type termWindow struct {
	locked  bool
	known   bool
	pending []tea.Cmd
}

func newTermWindow() *termWindow {
	return &termWindow{}
}

// SetCursorLock queues the terminal commands for a lock change.
// Repeating the current state queues nothing.
func (w *termWindow) SetCursorLock(locked bool) {
	if w.known && w.locked == locked {
		return
	}
	w.known = true
	w.locked = locked
	if locked {
		w.pending = append(w.pending, tea.HideCursor, tea.EnableMouseAllMotion)
	} else {
		w.pending = append(w.pending, tea.ShowCursor, tea.DisableMouse)
	}
}

// Locked reports the last requested lock state.
func (w *termWindow) Locked() bool {
	return w.locked
}

// Flush returns the queued commands as one batch, or nil when there are none.
func (w *termWindow) Flush() tea.Cmd {
	if len(w.pending) == 0 {
		return nil
	}
	cmds := w.pending
	w.pending = nil
	return tea.Batch(cmds...)
}
