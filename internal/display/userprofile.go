package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// userProfilePage is another member's public profile: their details and
// their recipes, fetched together.
type userProfilePage struct {
	d      deps
	userID int

	user           *domain.User
	list           cardList
	userPending    bool
	recipesPending bool
	failed         bool
}

func newUserProfilePage(d deps, userID int) *userProfilePage {
	return &userProfilePage{
		d:              d,
		userID:         userID,
		userPending:    true,
		recipesPending: true,
	}
}

func (p *userProfilePage) Init() tea.Cmd {
	d := p.d
	id := p.userID
	return tea.Batch(
		func() tea.Msg {
			user, err := d.client.GetUser(d.ctx, id)
			return profileUserFetchedMsg{pageGen: pageGen{gen: d.gen}, user: user, err: err}
		},
		func() tea.Msg {
			recipes, err := d.client.UserRecipes(d.ctx, id)
			return profileRecipesFetchedMsg{pageGen: pageGen{gen: d.gen}, recipes: recipes, err: err}
		},
	)
}

func (p *userProfilePage) loading() bool { return p.userPending || p.recipesPending }

func (p *userProfilePage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case profileUserFetchedMsg:
		p.userPending = false
		if msg.err != nil {
			p.d.log.Error("user profile: fetch failed: %v", msg.err)
			p.failed = true
			return p, nil
		}
		p.user = msg.user
		return p, nil

	case profileRecipesFetchedMsg:
		p.recipesPending = false
		if msg.err != nil {
			p.d.log.Error("user profile: recipes fetch failed: %v", msg.err)
			p.failed = true
			return p, nil
		}
		p.list.set(msg.recipes)
		return p, nil

	case likeToggledMsg:
		if msg.err != nil {
			p.d.log.Error("user profile: toggling like failed: %v", msg.err)
		}
		return p, nil

	case tea.KeyMsg:
		if p.loading() {
			return p, nil
		}
		if p.failed || p.user == nil {
			if msg.String() == "esc" || msg.String() == "enter" {
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
		case "l":
			return p, p.toggleLike()
		}
	}
	return p, nil
}

func (p *userProfilePage) toggleLike() tea.Cmd {
	r := p.list.selected()
	if r == nil {
		return nil
	}
	user := p.d.store.Current()
	if user == nil {
		return navigate(RouteLogin)
	}

	liked := !r.LikedBy(user.ID)
	applyLike(p.list.recipes, r.ID, user.ID, liked)

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

func (p *userProfilePage) View(width int) string {
	if p.loading() {
		return secondaryStyle.Render("  Loading profile...") + "\n"
	}
	if p.failed || p.user == nil {
		body := titleStyle.Render("User not found") +
			"\n\n" + secondaryStyle.Render("esc: back to recipes")
		return panelStyle.Render(body) + "\n"
	}

	u := p.user
	var b strings.Builder
	b.WriteString(titleStyle.Render("  " + u.Username))
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  " + u.Email))
	b.WriteString("\n")
	if u.Bio != "" {
		b.WriteString(primaryStyle.Render("  " + u.Bio))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %d recipes · %d likes received · member since %s",
		len(p.list.recipes), u.LikesReceived, domain.FormatDate(u.CreatedAt))))
	b.WriteString("\n\n")

	if len(p.list.recipes) == 0 {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %s hasn't shared any recipes yet.", u.Username)))
		b.WriteString("\n")
	} else {
		uid := 0
		if user := p.d.store.Current(); user != nil {
			uid = user.ID
		}
		b.WriteString(p.list.View(uid))
	}

	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("  enter: open    l: like    esc: back"))
	b.WriteString("\n")
	return b.String()
}
