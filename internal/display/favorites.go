package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/recipe"
)

// favoritesPage lists the signed-in user's saved recipes.
type favoritesPage struct {
	d deps

	list    cardList
	loading bool
}

func newFavoritesPage(d deps) *favoritesPage {
	return &favoritesPage{d: d, loading: true}
}

func (p *favoritesPage) Init() tea.Cmd {
	if !p.d.store.SignedIn() {
		p.loading = false
		return nil
	}
	return p.fetch()
}

func (p *favoritesPage) fetch() tea.Cmd {
	user := p.d.store.Current()
	if user == nil {
		return nil
	}
	d := p.d
	uid := user.ID
	return func() tea.Msg {
		entries, err := d.client.UserFavorites(d.ctx, uid)
		return favoritesLoadedMsg{pageGen: pageGen{gen: d.gen}, entries: entries, err: err}
	}
}

func (p *favoritesPage) removeCmd(recipeID int) tea.Cmd {
	d := p.d
	return func() tea.Msg {
		err := d.client.Unfavorite(d.ctx, recipeID)
		return favoriteRemovedMsg{pageGen: pageGen{gen: d.gen}, recipeID: recipeID, err: err}
	}
}

func (p *favoritesPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.d.log.Error("favorites: fetch failed: %v", msg.err)
			return p, nil
		}
		p.list.set(recipe.Recipes(msg.entries))
		return p, nil

	case favoriteRemovedMsg:
		if msg.err != nil {
			p.d.log.Error("favorites: remove failed: %v", msg.err)
			return p, nil
		}
		p.list.remove(msg.recipeID)
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
		case "x":
			if r := p.list.selected(); r != nil {
				return p, p.removeCmd(r.ID)
			}
		}
	}
	return p, nil
}

func (p *favoritesPage) View(width int) string {
	user := p.d.store.Current()
	if user == nil {
		body := titleStyle.Render("Please log in to view your favorites") +
			"\n\n" + secondaryStyle.Render("l: log in    esc: back")
		return panelStyle.Render(body) + "\n"
	}
	if p.loading {
		return secondaryStyle.Render("  Loading your favorites...") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("  My Favorite Recipes"))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  Recipes you've saved for later"))
	b.WriteString("\n\n")

	if len(p.list.recipes) == 0 {
		b.WriteString(primaryStyle.Render("  No favorites yet"))
		b.WriteString("\n")
		b.WriteString(secondaryStyle.Render("  Start exploring recipes and add them to your favorites!"))
		b.WriteString("\n\n")
		b.WriteString(secondaryStyle.Render("  esc: explore recipes"))
		b.WriteString("\n")
		return b.String()
	}

	word := "favorites"
	if len(p.list.recipes) == 1 {
		word = "favorite"
	}
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %d %s", len(p.list.recipes), word)))
	b.WriteString("\n\n")
	b.WriteString(p.list.View(user.ID))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  enter: open    x: remove from favorites    esc: back"))
	b.WriteString("\n")
	return b.String()
}
