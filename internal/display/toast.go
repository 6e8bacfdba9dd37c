package display

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a transient status line stays visible.
const toastDuration = 3 * time.Second

// toast is a transient status line that dismisses itself. The id guards
// against an old expiry clearing a newer message.
type toast struct {
	id      int
	message string
	success bool
}

// show replaces the current toast and returns the expiry command.
func (t *toast) show(message string, success bool) tea.Cmd {
	t.id++
	t.message = message
	t.success = success
	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// expire clears the toast if the expiry matches the current message.
func (t *toast) expire(msg toastExpiredMsg) {
	if msg.id == t.id {
		t.message = ""
	}
}

// View renders the toast, or "" when nothing is showing.
func (t toast) View() string {
	if t.message == "" {
		return ""
	}
	if t.success {
		return successStyle.Render(t.message)
	}
	return urgentStyle.Render(t.message)
}
