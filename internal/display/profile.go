package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/api"
	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/form"
)

const profileFields = 4

// profilePage shows the signed-in user's own profile and hosts the
// edit form. Saving pushes the server's updated record back into the
// session store so the whole app sees it.
type profilePage struct {
	d deps

	editing bool
	focus   int

	username textinput.Model
	email    textinput.Model
	picture  textinput.Model
	bio      textarea.Model

	errs       form.Errors
	message    string
	messageOK  bool
	submitting bool
}

func newProfilePage(d deps) *profilePage {
	return &profilePage{d: d}
}

func (p *profilePage) Init() tea.Cmd { return nil }

func (p *profilePage) startEditing() {
	user := p.d.store.Current()
	if user == nil {
		return
	}
	p.editing = true
	p.errs = nil
	p.message = ""

	p.username = newInput("Choose a username")
	p.email = newInput("Enter your email")
	p.picture = newInput("Path to an image file (optional)")
	p.bio = newArea("Tell us about yourself...")

	p.username.SetValue(user.Username)
	p.email.SetValue(user.Email)
	p.bio.SetValue(user.Bio)
	p.setFocus(0)
}

func (p *profilePage) setFocus(i int) {
	p.focus = (i + profileFields) % profileFields
	p.username.Blur()
	p.email.Blur()
	p.picture.Blur()
	p.bio.Blur()
	switch p.focus {
	case 0:
		p.username.Focus()
	case 1:
		p.email.Focus()
	case 2:
		p.picture.Focus()
	case 3:
		p.bio.Focus()
	}
}

func (p *profilePage) submit() tea.Cmd {
	user := p.d.store.Current()
	if user == nil {
		return nil
	}
	f := form.Profile{
		Username:    strings.TrimSpace(p.username.Value()),
		Email:       strings.TrimSpace(p.email.Value()),
		Bio:         strings.TrimSpace(p.bio.Value()),
		PicturePath: strings.TrimSpace(p.picture.Value()),
	}
	p.errs = f.Validate()
	p.message = ""
	if len(p.errs) > 0 {
		return nil
	}
	p.submitting = true

	d := p.d
	id := user.ID
	params := f.Params()
	return func() tea.Msg {
		updated, err := d.client.UpdateUser(d.ctx, id, params)
		return profileSavedMsg{pageGen: pageGen{gen: d.gen}, user: updated, err: err}
	}
}

func (p *profilePage) logout() tea.Cmd {
	d := p.d
	return func() tea.Msg {
		err := d.store.Logout(d.ctx)
		return loggedOutMsg{err: err}
	}
}

func (p *profilePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		p.submitting = false
		if msg.err != nil {
			p.message = api.ErrorMessage(msg.err, "Error updating profile")
			p.messageOK = false
			return p, nil
		}
		p.d.store.SetUser(msg.user)
		p.editing = false
		p.message = "Profile updated successfully!"
		p.messageOK = true
		return p, nil

	case tea.KeyMsg:
		if !p.d.store.SignedIn() {
			switch msg.String() {
			case "l":
				return p, navigate(RouteLogin)
			case "esc":
				return p, navigate(RouteDashboard)
			}
			return p, nil
		}
		if p.editing {
			return p.handleEditKey(msg)
		}

		switch msg.String() {
		case "esc":
			return p, navigate(RouteDashboard)
		case "e":
			p.startEditing()
		case "o":
			return p, p.logout()
		}
	}
	return p, nil
}

func (p *profilePage) handleEditKey(msg tea.KeyMsg) (page, tea.Cmd) {
	if p.submitting {
		return p, nil
	}
	switch msg.String() {
	case "esc":
		p.editing = false
		return p, nil
	case "tab":
		p.setFocus(p.focus + 1)
		return p, nil
	case "shift+tab":
		p.setFocus(p.focus - 1)
		return p, nil
	case "ctrl+s":
		return p, p.submit()
	case "enter":
		if p.focus != profileFields-1 {
			p.setFocus(p.focus + 1)
			return p, nil
		}
	}

	var cmd tea.Cmd
	switch p.focus {
	case 0:
		p.username, cmd = p.username.Update(msg)
	case 1:
		p.email, cmd = p.email.Update(msg)
	case 2:
		p.picture, cmd = p.picture.Update(msg)
	case 3:
		p.bio, cmd = p.bio.Update(msg)
	}
	return p, cmd
}

func (p *profilePage) View(width int) string {
	user := p.d.store.Current()
	if user == nil {
		body := titleStyle.Render("Please log in to view your profile") +
			"\n\n" + secondaryStyle.Render("l: log in    esc: back")
		return panelStyle.Render(body) + "\n"
	}

	if p.editing {
		return p.editView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("  My Profile"))
	b.WriteString("\n\n")

	if p.message != "" {
		style := urgentStyle
		if p.messageOK {
			style = successStyle
		}
		b.WriteString("  " + style.Render(p.message))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + accentStyle.Render(user.Username))
	b.WriteString("\n")
	b.WriteString("  " + secondaryStyle.Render(user.Email))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("  About Me"))
	b.WriteString("\n")
	if user.Bio != "" {
		b.WriteString("  " + primaryStyle.Render(user.Bio))
	} else {
		b.WriteString("  " + secondaryStyle.Render("No bio yet. Add one to tell the community about yourself!"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("  Stats"))
	b.WriteString("\n")
	b.WriteString("  " + primaryStyle.Render(fmt.Sprintf("Recipes: %d", user.RecipeCount)))
	b.WriteString("\n")
	b.WriteString("  " + primaryStyle.Render("Member since: "+domain.FormatDate(user.CreatedAt)))
	b.WriteString("\n")
	if user.ProfilePicture != "" {
		b.WriteString("  " + secondaryStyle.Render("Picture: "+user.ProfilePicture))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(secondaryStyle.Render("  e: edit profile    o: log out    esc: back"))
	b.WriteString("\n")
	return b.String()
}

func (p *profilePage) editView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit Profile"))
	b.WriteString("\n\n")

	if p.message != "" {
		b.WriteString(urgentStyle.Render(p.message))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Username", p.username.View(), p.errs.First("Username")))
	b.WriteByte('\n')
	b.WriteString(renderField("Email", p.email.View(), p.errs.First("Email")))
	b.WriteByte('\n')
	b.WriteString(renderField("Profile Picture", p.picture.View(), ""))
	b.WriteByte('\n')
	b.WriteString(renderField("Bio", p.bio.View(), p.errs.First("Bio")))
	b.WriteByte('\n')

	if p.submitting {
		b.WriteString(secondaryStyle.Render("Saving..."))
	} else {
		b.WriteString(secondaryStyle.Render("ctrl+s: save changes    tab: next field    esc: cancel"))
	}
	b.WriteByte('\n')

	return panelStyle.Render(b.String()) + "\n"
}
