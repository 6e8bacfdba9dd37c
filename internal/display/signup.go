package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/api"
	"github.com/Anisah23/grubgrab/internal/form"
)

const signupFields = 5

// signupPage registers a new account. A successful signup signs the
// user in immediately.
type signupPage struct {
	d deps

	username textinput.Model
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	bio      textarea.Model
	focus    int

	errs       form.Errors
	serverErr  string
	submitting bool
}

func newSignupPage(d deps) *signupPage {
	p := &signupPage{
		d:        d,
		username: newInput("Choose a username"),
		email:    newInput("Enter your email"),
		password: newPassword("Create a password"),
		confirm:  newPassword("Confirm your password"),
		bio:      newArea("Tell us about yourself..."),
	}
	p.bio.SetHeight(3)
	p.username.Focus()
	return p
}

func (p *signupPage) Init() tea.Cmd { return textinput.Blink }

func (p *signupPage) setFocus(i int) {
	p.focus = (i + signupFields) % signupFields
	p.username.Blur()
	p.email.Blur()
	p.password.Blur()
	p.confirm.Blur()
	p.bio.Blur()
	switch p.focus {
	case 0:
		p.username.Focus()
	case 1:
		p.email.Focus()
	case 2:
		p.password.Focus()
	case 3:
		p.confirm.Focus()
	case 4:
		p.bio.Focus()
	}
}

func (p *signupPage) submit() tea.Cmd {
	f := form.Signup{
		Username: strings.TrimSpace(p.username.Value()),
		Email:    strings.TrimSpace(p.email.Value()),
		Password: p.password.Value(),
		Confirm:  p.confirm.Value(),
		Bio:      strings.TrimSpace(p.bio.Value()),
	}
	p.errs = f.Validate()
	p.serverErr = ""
	if len(p.errs) > 0 {
		return nil
	}
	p.submitting = true

	d := p.d
	params := f.Params()
	return func() tea.Msg {
		err := d.store.Signup(d.ctx, params)
		return authDoneMsg{pageGen: pageGen{gen: d.gen}, err: err}
	}
}

func (p *signupPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.submitting {
			return p, nil
		}
		switch msg.String() {
		case "esc":
			return p, navigate(RouteHome)
		case "tab":
			p.setFocus(p.focus + 1)
			return p, nil
		case "shift+tab":
			p.setFocus(p.focus - 1)
			return p, nil
		case "ctrl+l":
			return p, navigate(RouteLogin)
		case "enter":
			// Bio is multi-line; enter inserts a newline there.
			if p.focus != signupFields-1 {
				return p, p.submit()
			}
		case "ctrl+s":
			return p, p.submit()
		}

	case authDoneMsg:
		p.submitting = false
		if msg.err != nil {
			p.serverErr = api.ErrorMessage(msg.err, "Signup failed")
			return p, nil
		}
		return p, navigate(RouteDashboard)
	}

	var cmd tea.Cmd
	switch p.focus {
	case 0:
		p.username, cmd = p.username.Update(msg)
	case 1:
		p.email, cmd = p.email.Update(msg)
	case 2:
		p.password, cmd = p.password.Update(msg)
	case 3:
		p.confirm, cmd = p.confirm.Update(msg)
	case 4:
		p.bio, cmd = p.bio.Update(msg)
	}
	return p, cmd
}

func (p *signupPage) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create Your Account"))
	b.WriteString("\n\n")

	if p.serverErr != "" {
		b.WriteString(urgentStyle.Render(p.serverErr))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Username", p.username.View(), p.errs.First("Username")))
	b.WriteByte('\n')
	b.WriteString(renderField("Email", p.email.View(), p.errs.First("Email")))
	b.WriteByte('\n')
	b.WriteString(renderField("Password", p.password.View(), p.errs.First("Password")))
	b.WriteByte('\n')
	b.WriteString(renderField("Confirm Password", p.confirm.View(), p.errs.First("Confirm")))
	b.WriteByte('\n')
	b.WriteString(renderField("Bio (optional)", p.bio.View(), p.errs.First("Bio")))
	b.WriteByte('\n')

	if p.submitting {
		b.WriteString(secondaryStyle.Render("Creating Account..."))
	} else {
		b.WriteString(secondaryStyle.Render("ctrl+s: sign up    tab: next field    esc: back"))
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render("Already have an account? ") + accentStyle.Render("ctrl+l: log in"))
	}
	b.WriteByte('\n')

	return panelStyle.Render(b.String()) + "\n"
}
