package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/api"
	"github.com/Anisah23/grubgrab/internal/form"
)

// loginPage collects credentials and signs the user in through the
// session store.
type loginPage struct {
	d deps

	username textinput.Model
	password textinput.Model
	focus    int

	errs       form.Errors
	serverErr  string
	submitting bool
}

func newLoginPage(d deps) *loginPage {
	p := &loginPage{
		d:        d,
		username: newInput("Enter your username"),
		password: newPassword("Enter your password"),
	}
	p.username.Focus()
	return p
}

func (p *loginPage) Init() tea.Cmd { return textinput.Blink }

func (p *loginPage) setFocus(i int) {
	p.focus = i
	p.username.Blur()
	p.password.Blur()
	if i == 0 {
		p.username.Focus()
	} else {
		p.password.Focus()
	}
}

func (p *loginPage) submit() tea.Cmd {
	f := form.Login{
		Username: strings.TrimSpace(p.username.Value()),
		Password: p.password.Value(),
	}
	p.errs = f.Validate()
	p.serverErr = ""
	if len(p.errs) > 0 {
		return nil
	}
	p.submitting = true

	d := p.d
	return func() tea.Msg {
		err := d.store.Login(d.ctx, f.Username, f.Password)
		return authDoneMsg{pageGen: pageGen{gen: d.gen}, err: err}
	}
}

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.submitting {
			return p, nil
		}
		switch msg.String() {
		case "esc":
			return p, navigate(RouteHome)
		case "tab", "down":
			p.setFocus((p.focus + 1) % 2)
			return p, nil
		case "shift+tab", "up":
			p.setFocus((p.focus + 1) % 2)
			return p, nil
		case "ctrl+s":
			return p, navigate(RouteSignup)
		case "enter":
			return p, p.submit()
		}

	case authDoneMsg:
		p.submitting = false
		if msg.err != nil {
			p.serverErr = api.ErrorMessage(msg.err, "Login failed")
			return p, nil
		}
		return p, navigate(RouteDashboard)
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.username, cmd = p.username.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return p, cmd
}

func (p *loginPage) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Login to Your Account"))
	b.WriteString("\n\n")

	if p.serverErr != "" {
		b.WriteString(urgentStyle.Render(p.serverErr))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Username", p.username.View(), p.errs.First("Username")))
	b.WriteByte('\n')
	b.WriteString(renderField("Password", p.password.View(), p.errs.First("Password")))
	b.WriteByte('\n')

	if p.submitting {
		b.WriteString(secondaryStyle.Render("Logging in..."))
	} else {
		b.WriteString(secondaryStyle.Render("enter: login    tab: next field    esc: back"))
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render("Don't have an account? ") + accentStyle.Render("ctrl+s: sign up"))
	}
	b.WriteByte('\n')

	return panelStyle.Render(b.String()) + "\n"
}
