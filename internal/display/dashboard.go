package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/recipe"
)

// timeCeilings are the selectable cooking-time filters, in minutes.
// Zero means no ceiling.
var timeCeilings = []int{0, 15, 30, 60, 120}

// dashboardPage is the browse view: every recipe, filtered client-side
// by search term and cooking time.
type dashboardPage struct {
	d deps

	all     []domain.Recipe
	list    cardList
	loading bool

	search    textinput.Model
	searching bool
	ceiling   int // index into timeCeilings
}

func newDashboardPage(d deps) *dashboardPage {
	p := &dashboardPage{
		d:       d,
		loading: true,
		search:  newInput("Search recipes, ingredients, or authors..."),
	}
	return p
}

func (p *dashboardPage) Init() tea.Cmd { return p.fetch() }

func (p *dashboardPage) fetch() tea.Cmd {
	d := p.d
	return func() tea.Msg {
		recipes, err := d.client.ListRecipes(d.ctx)
		return recipesLoadedMsg{pageGen: pageGen{gen: d.gen}, recipes: recipes, err: err}
	}
}

// refilter rebuilds the visible card list from the full set.
func (p *dashboardPage) refilter() {
	p.list.set(recipe.Filter(p.all, p.search.Value(), timeCeilings[p.ceiling]))
}

func (p *dashboardPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.d.log.Error("dashboard: fetching recipes failed: %v", msg.err)
			p.all = nil
		} else {
			p.all = msg.recipes
		}
		p.refilter()
		return p, nil

	case likeToggledMsg:
		if msg.err != nil {
			p.d.log.Error("dashboard: toggling like failed: %v", msg.err)
		}
		return p, nil

	case tea.KeyMsg:
		if p.searching {
			switch msg.String() {
			case "esc", "enter":
				p.searching = false
				p.search.Blur()
				return p, nil
			}
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			p.refilter()
			return p, cmd
		}

		switch msg.String() {
		case "/":
			p.searching = true
			return p, p.search.Focus()
		case "t":
			p.ceiling = (p.ceiling + 1) % len(timeCeilings)
			p.refilter()
			return p, nil
		case "r":
			p.loading = true
			return p, p.fetch()
		case "up", "k":
			p.list.move(-1)
			return p, nil
		case "down", "j":
			p.list.move(1)
			return p, nil
		case "enter":
			if r := p.list.selected(); r != nil {
				return p, navigateTo(RouteRecipe, r.ID)
			}
		case "u":
			if r := p.list.selected(); r != nil && r.OwnerID() != 0 {
				return p, navigateTo(RouteUser, r.OwnerID())
			}
		case "l":
			return p, p.toggleLike()
		case "esc", "h":
			return p, navigate(RouteHome)
		case "m":
			if p.d.store.SignedIn() {
				return p, navigate(RouteMyRecipes)
			}
		case "f":
			if p.d.store.SignedIn() {
				return p, navigate(RouteFavorites)
			}
		case "p":
			if p.d.store.SignedIn() {
				return p, navigate(RouteProfile)
			}
		}
	}
	return p, nil
}

// toggleLike applies the flip locally before the server answers and
// never rolls it back; the next refetch reconciles any drift.
func (p *dashboardPage) toggleLike() tea.Cmd {
	r := p.list.selected()
	if r == nil {
		return nil
	}
	user := p.d.store.Current()
	if user == nil {
		return navigate(RouteLogin)
	}

	liked := !r.LikedBy(user.ID)
	applyLike(p.all, r.ID, user.ID, liked)
	p.refilter()

	d := p.d
	recipeID := r.ID
	return func() tea.Msg {
		var err error
		if liked {
			err = d.client.Like(d.ctx, recipeID)
		} else {
			err = d.client.Unlike(d.ctx, recipeID)
		}
		d.signal.Trigger()
		return likeToggledMsg{pageGen: pageGen{gen: d.gen}, recipeID: recipeID, liked: liked, err: err}
	}
}

func (p *dashboardPage) View(width int) string {
	if p.loading {
		return secondaryStyle.Render("  Loading recipes...") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("  Explore Recipes"))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  Discover amazing recipes from our community"))
	b.WriteString("\n\n")

	searchLine := "  " + labelStyle.Render("Search: ") + p.search.View()
	b.WriteString(searchLine)
	b.WriteString("\n")

	ceiling := timeCeilings[p.ceiling]
	ceilingLabel := "All Cooking Times"
	if ceiling > 0 {
		ceilingLabel = fmt.Sprintf("%d minutes or less", ceiling)
	}
	b.WriteString("  " + labelStyle.Render("Time: ") + primaryStyle.Render(ceilingLabel))
	b.WriteString("\n\n")

	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  Showing %d of %d recipes", len(p.list.recipes), len(p.all))))
	b.WriteString("\n\n")

	if len(p.list.recipes) == 0 {
		b.WriteString(primaryStyle.Render("  No recipes found"))
		b.WriteString("\n")
		b.WriteString(secondaryStyle.Render("  Try adjusting your search terms or filters"))
		b.WriteString("\n")
	} else {
		b.WriteString(p.list.View(p.userID()))
	}

	b.WriteString("\n")
	if p.searching {
		b.WriteString(secondaryStyle.Render("  typing search    enter/esc: done"))
	} else {
		b.WriteString(secondaryStyle.Render("  enter: open    l: like    u: author    /: search    t: time filter    r: refresh    esc: home"))
	}
	b.WriteString("\n")
	return b.String()
}

func (p *dashboardPage) userID() int {
	if user := p.d.store.Current(); user != nil {
		return user.ID
	}
	return 0
}
