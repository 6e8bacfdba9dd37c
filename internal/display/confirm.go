package display

import "fmt"

// confirm is a yes/no modal guarding a destructive action. While open
// it captures the page's key input.
type confirm struct {
	open     bool
	question string
	arg      int // id of the thing being acted on
}

func (c *confirm) ask(question string, arg int) {
	c.open = true
	c.question = question
	c.arg = arg
}

func (c *confirm) close() {
	c.open = false
	c.question = ""
	c.arg = 0
}

// View renders the modal panel.
func (c confirm) View() string {
	body := fmt.Sprintf("%s\n\n%s",
		primaryStyle.Render(c.question),
		secondaryStyle.Render("y: yes    n/esc: no"))
	return panelStyle.Render(body)
}
