package display

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// homePage is the static landing view.
type homePage struct {
	d deps
}

func newHomePage(d deps) *homePage { return &homePage{d: d} }

func (p *homePage) Init() tea.Cmd { return nil }

func (p *homePage) Update(msg tea.Msg) (page, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "d", "enter":
		return p, navigate(RouteDashboard)
	case "l":
		if !p.d.store.SignedIn() {
			return p, navigate(RouteLogin)
		}
	case "s":
		if !p.d.store.SignedIn() {
			return p, navigate(RouteSignup)
		}
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
	return p, nil
}

func (p *homePage) View(width int) string {
	var b strings.Builder
	b.WriteString(RenderBanner())
	b.WriteByte('\n')
	b.WriteString(titleStyle.Render("  Discover & Share Amazing Recipes"))
	b.WriteString("\n")
	b.WriteString(primaryStyle.Render("  Join our community of food lovers and explore delicious recipes\n  from around the world."))
	b.WriteString("\n\n")

	b.WriteString(secondaryStyle.Render("  Share your culinary creations · Keep track of your favorites ·\n  Receive comments and likes on your recipes"))
	b.WriteString("\n\n")

	if p.d.store.SignedIn() {
		b.WriteString(accentStyle.Render("  d: explore recipes    m: my recipes    f: favorites    p: profile"))
	} else {
		b.WriteString(accentStyle.Render("  d: explore recipes    s: get started    l: log in"))
	}
	b.WriteByte('\n')
	return b.String()
}
