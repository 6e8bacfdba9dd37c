package display

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// myRecipesPage manages the signed-in user's own recipes: create, edit,
// and delete behind a confirm modal.
type myRecipesPage struct {
	d deps

	list    cardList
	loading bool
	form    recipeForm
	confirm confirm
	toast   toast
}

func newMyRecipesPage(d deps) *myRecipesPage {
	return &myRecipesPage{d: d, loading: true}
}

func (p *myRecipesPage) Init() tea.Cmd {
	if !p.d.store.SignedIn() {
		p.loading = false
		return nil
	}
	return p.fetch()
}

func (p *myRecipesPage) fetch() tea.Cmd {
	user := p.d.store.Current()
	if user == nil {
		return nil
	}
	d := p.d
	uid := user.ID
	return func() tea.Msg {
		recipes, err := d.client.UserRecipes(d.ctx, uid)
		return myRecipesLoadedMsg{pageGen: pageGen{gen: d.gen}, recipes: recipes, err: err}
	}
}

func (p *myRecipesPage) deleteCmd(recipeID int) tea.Cmd {
	d := p.d
	return func() tea.Msg {
		err := d.client.DeleteRecipe(d.ctx, recipeID)
		return recipeDeletedMsg{pageGen: pageGen{gen: d.gen}, recipeID: recipeID, err: err}
	}
}

func (p *myRecipesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case myRecipesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.d.log.Error("my recipes: fetch failed: %v", msg.err)
			return p, nil
		}
		p.list.set(msg.recipes)
		return p, nil

	case recipeSavedMsg:
		if p.form.saved(msg) {
			p.loading = true
			return p, p.fetch()
		}
		return p, nil

	case recipeDeletedMsg:
		if msg.err != nil {
			p.d.log.Error("my recipes: delete failed: %v", msg.err)
			return p, p.toast.show("Error deleting recipe", false)
		}
		p.list.remove(msg.recipeID)
		return p, nil

	case toastExpiredMsg:
		p.toast.expire(msg)
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
		if p.form.open {
			return p, p.form.handleKey(msg, p.d)
		}
		if p.confirm.open {
			switch msg.String() {
			case "y":
				id := p.confirm.arg
				p.confirm.close()
				return p, p.deleteCmd(id)
			case "n", "esc":
				p.confirm.close()
			}
			return p, nil
		}

		switch msg.String() {
		case "esc":
			return p, navigate(RouteDashboard)
		case "up", "k":
			p.list.move(-1)
		case "down", "j":
			p.list.move(1)
		case "enter":
			if r := p.list.selected(); r != nil {
				return p, navigateTo(RouteRecipe, r.ID)
			}
		case "n":
			p.form.openFor(nil)
		case "e":
			if r := p.list.selected(); r != nil {
				p.form.openFor(r)
			}
		case "d":
			if r := p.list.selected(); r != nil {
				p.confirm.ask("Are you sure you want to delete this recipe?", r.ID)
			}
		}
	}
	return p, nil
}

func (p *myRecipesPage) View(width int) string {
	user := p.d.store.Current()
	if user == nil {
		body := titleStyle.Render("Please log in to view your recipes") +
			"\n\n" + secondaryStyle.Render("l: log in    esc: back")
		return panelStyle.Render(body) + "\n"
	}
	if p.loading {
		return secondaryStyle.Render("  Loading your recipes...") + "\n"
	}
	if p.form.open {
		return p.form.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("  My Recipes"))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  Manage your culinary creations"))
	b.WriteString("\n\n")

	if t := p.toast.View(); t != "" {
		b.WriteString("  " + t + "\n\n")
	}

	if p.confirm.open {
		b.WriteString(p.confirm.View())
		b.WriteString("\n")
		return b.String()
	}

	if len(p.list.recipes) == 0 {
		b.WriteString(primaryStyle.Render("  No recipes yet"))
		b.WriteString("\n")
		b.WriteString(secondaryStyle.Render("  Start sharing your culinary creations with the community!"))
		b.WriteString("\n\n")
		b.WriteString(accentStyle.Render("  n: create your first recipe"))
		b.WriteString("\n")
		b.WriteString(secondaryStyle.Render("  esc: back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(p.list.View(user.ID))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  enter: open    n: new    e: edit    d: delete    esc: back"))
	b.WriteString("\n")
	return b.String()
}
