package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// ── Form field helpers ───────────────────────────────────────────

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.CharLimit = 200
	return in
}

func newPassword(placeholder string) textinput.Model {
	in := newInput(placeholder)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetHeight(4)
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	return ta
}

// renderField renders a labeled input with an optional error line under
// it.
func renderField(label, view, errMsg string) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	b.WriteByte('\n')
	b.WriteString(view)
	b.WriteByte('\n')
	if errMsg != "" {
		b.WriteString(urgentStyle.Render(errMsg))
		b.WriteByte('\n')
	}
	return b.String()
}
