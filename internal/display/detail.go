package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/api"
	"github.com/Anisah23/grubgrab/internal/domain"
)

// detailPage shows a single recipe with its comments. The recipe and
// the comment list are fetched together; the page stays loading until
// both land, and either failing renders the not-found state.
type detailPage struct {
	d        deps
	recipeID int

	recipe          *domain.Recipe
	comments        []domain.Comment
	recipePending   bool
	commentsPending bool
	failed          bool

	liked     bool
	likeCount int
	favorited bool

	input   textarea.Model
	writing bool
	posting bool
	cursor  int
	toast   toast
}

func newDetailPage(d deps, recipeID int) *detailPage {
	p := &detailPage{
		d:               d,
		recipeID:        recipeID,
		recipePending:   true,
		commentsPending: true,
		input:           newArea("Share your thoughts about this recipe..."),
	}
	p.input.SetHeight(3)
	return p
}

func (p *detailPage) Init() tea.Cmd {
	d := p.d
	id := p.recipeID
	return tea.Batch(
		func() tea.Msg {
			r, err := d.client.GetRecipe(d.ctx, id)
			return recipeFetchedMsg{pageGen: pageGen{gen: d.gen}, recipe: r, err: err}
		},
		func() tea.Msg {
			comments, err := d.client.RecipeComments(d.ctx, id)
			return commentsFetchedMsg{pageGen: pageGen{gen: d.gen}, comments: comments, err: err}
		},
	)
}

func (p *detailPage) loading() bool { return p.recipePending || p.commentsPending }

func (p *detailPage) userID() int {
	if user := p.d.store.Current(); user != nil {
		return user.ID
	}
	return 0
}

func (p *detailPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case recipeFetchedMsg:
		p.recipePending = false
		if msg.err != nil {
			p.d.log.Error("recipe detail: fetch failed: %v", msg.err)
			p.failed = true
			return p, nil
		}
		p.recipe = msg.recipe
		p.likeCount = msg.recipe.LikeCount()
		if uid := p.userID(); uid != 0 {
			p.liked = msg.recipe.LikedBy(uid)
			p.favorited = msg.recipe.FavoritedBy(uid)
		}
		return p, nil

	case commentsFetchedMsg:
		p.commentsPending = false
		if msg.err != nil {
			p.d.log.Error("recipe detail: comments fetch failed: %v", msg.err)
			p.failed = true
			return p, nil
		}
		p.comments = msg.comments
		return p, nil

	case likeToggledMsg:
		if msg.err != nil {
			return p, p.toast.show(api.ErrorMessage(msg.err, "Failed to update like. Please try again."), false)
		}
		return p, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			return p, p.toast.show(api.ErrorMessage(msg.err, "Failed to update favorite. Please try again."), false)
		}
		return p, nil

	case commentPostedMsg:
		p.posting = false
		if msg.err != nil || msg.comment == nil {
			return p, p.toast.show(api.ErrorMessage(msg.err, "Failed to post comment"), false)
		}
		p.comments = append([]domain.Comment{*msg.comment}, p.comments...)
		p.input.Reset()
		p.writing = false
		p.input.Blur()
		return p, p.toast.show("Comment posted successfully!", true)

	case commentDeletedMsg:
		if msg.err != nil {
			p.d.log.Error("recipe detail: deleting comment failed: %v", msg.err)
			return p, p.toast.show("Failed to delete comment", false)
		}
		kept := p.comments[:0]
		for _, c := range p.comments {
			if c.ID != msg.commentID {
				kept = append(kept, c)
			}
		}
		p.comments = kept
		if p.cursor >= len(p.comments) {
			p.cursor = 0
		}
		return p, p.toast.show("Comment deleted successfully", true)

	case toastExpiredMsg:
		p.toast.expire(msg)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *detailPage) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	if p.loading() {
		return p, nil
	}
	if p.failed || p.recipe == nil {
		if msg.String() == "esc" || msg.String() == "enter" {
			return p, navigate(RouteDashboard)
		}
		return p, nil
	}

	if p.writing {
		switch msg.String() {
		case "esc":
			p.writing = false
			p.input.Blur()
			return p, nil
		case "ctrl+s":
			return p, p.postComment()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	switch msg.String() {
	case "esc":
		return p, navigate(RouteDashboard)
	case "l":
		return p, p.toggleLike()
	case "f":
		return p, p.toggleFavorite()
	case "u":
		if id := p.recipe.OwnerID(); id != 0 {
			return p, navigateTo(RouteUser, id)
		}
	case "c":
		if !p.d.store.SignedIn() {
			return p, navigate(RouteLogin)
		}
		p.writing = true
		return p, p.input.Focus()
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.comments)-1 {
			p.cursor++
		}
	case "d":
		return p, p.deleteComment()
	}
	return p, nil
}

// toggleLike flips local state before the request resolves and does not
// roll back on failure; only a later refetch reconciles drift.
func (p *detailPage) toggleLike() tea.Cmd {
	user := p.d.store.Current()
	if user == nil {
		return navigate(RouteLogin)
	}

	p.liked = !p.liked
	if p.liked {
		p.likeCount++
	} else {
		p.likeCount--
	}

	d := p.d
	id := p.recipeID
	liked := p.liked
	return func() tea.Msg {
		var err error
		if liked {
			err = d.client.Like(d.ctx, id)
		} else {
			err = d.client.Unlike(d.ctx, id)
		}
		d.signal.Trigger()
		return likeToggledMsg{pageGen: pageGen{gen: d.gen}, recipeID: id, liked: liked, err: err}
	}
}

func (p *detailPage) toggleFavorite() tea.Cmd {
	user := p.d.store.Current()
	if user == nil {
		return navigate(RouteLogin)
	}

	p.favorited = !p.favorited

	d := p.d
	id := p.recipeID
	favorited := p.favorited
	return func() tea.Msg {
		var err error
		if favorited {
			err = d.client.Favorite(d.ctx, id)
		} else {
			err = d.client.Unfavorite(d.ctx, id)
		}
		return favoriteToggledMsg{pageGen: pageGen{gen: d.gen}, recipeID: id, favorited: favorited, err: err}
	}
}

func (p *detailPage) postComment() tea.Cmd {
	content := strings.TrimSpace(p.input.Value())
	if content == "" {
		return p.toast.show("Please enter a comment", false)
	}
	p.posting = true

	d := p.d
	id := p.recipeID
	return func() tea.Msg {
		comment, err := d.client.PostComment(d.ctx, id, content)
		d.signal.Trigger()
		return commentPostedMsg{pageGen: pageGen{gen: d.gen}, comment: comment, err: err}
	}
}

func (p *detailPage) deleteComment() tea.Cmd {
	user := p.d.store.Current()
	if user == nil || p.cursor >= len(p.comments) {
		return nil
	}
	c := p.comments[p.cursor]
	if !c.DeletableBy(user.ID, p.recipe.OwnerID()) {
		return nil
	}

	d := p.d
	id := c.ID
	return func() tea.Msg {
		err := d.client.DeleteComment(d.ctx, id)
		d.signal.Trigger()
		return commentDeletedMsg{pageGen: pageGen{gen: d.gen}, commentID: id, err: err}
	}
}

func (p *detailPage) View(width int) string {
	if p.loading() {
		return secondaryStyle.Render("  Loading recipe...") + "\n"
	}
	if p.failed || p.recipe == nil {
		body := titleStyle.Render("Recipe not found") +
			"\n\n" + secondaryStyle.Render("esc: back to recipes")
		return panelStyle.Render(body) + "\n"
	}

	r := p.recipe
	var b strings.Builder

	b.WriteString(secondaryStyle.Render("  Recipes / ") + primaryStyle.Render(r.Title))
	b.WriteString("\n\n")

	if t := p.toast.View(); t != "" {
		b.WriteString("  " + t + "\n\n")
	}

	b.WriteString(titleStyle.Render("  " + r.Title))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(primaryStyle.Render("  " + r.Description))
		b.WriteString("\n")
	}
	if name := r.AuthorName(); name != "" {
		b.WriteString(secondaryStyle.Render("  By ") + accentStyle.Render(name))
		b.WriteString("\n")
	}
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %d minutes · %s", r.CookingTime, domain.FormatDate(r.CreatedAt))))
	b.WriteString("\n\n")

	likeLine := fmt.Sprintf("♥ %d Likes", p.likeCount)
	if p.liked {
		b.WriteString("  " + likedStyle.Render(likeLine+" (liked)"))
	} else {
		b.WriteString("  " + primaryStyle.Render(likeLine))
	}
	if p.favorited {
		b.WriteString(likedStyle.Render("    ★ Favorited"))
	} else {
		b.WriteString(secondaryStyle.Render("    ☆ Add to Favorites"))
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("  Ingredients"))
	b.WriteString("\n")
	for _, line := range domain.SplitLines(r.Ingredients) {
		b.WriteString(primaryStyle.Render("  · " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("  Instructions"))
	b.WriteString("\n")
	for i, line := range domain.SplitLines(r.Instructions) {
		b.WriteString(accentStyle.Render(fmt.Sprintf("  %d. ", i+1)) + primaryStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(p.commentsView())

	b.WriteString("\n")
	if p.writing {
		if p.posting {
			b.WriteString(secondaryStyle.Render("  Posting..."))
		} else {
			b.WriteString(secondaryStyle.Render("  ctrl+s: post comment    esc: cancel"))
		}
	} else {
		hints := "  l: like    f: favorite    c: comment    u: author    esc: back"
		if len(p.comments) > 0 {
			hints += "    d: delete comment"
		}
		b.WriteString(secondaryStyle.Render(hints))
	}
	b.WriteString("\n")
	return b.String()
}

func (p *detailPage) commentsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Comments (%d)", len(p.comments))))
	b.WriteString("\n")

	if p.writing {
		b.WriteString(p.input.View())
		b.WriteString("\n")
	} else if !p.d.store.SignedIn() {
		b.WriteString(secondaryStyle.Render("  Log in to leave a comment"))
		b.WriteString("\n")
	}

	if len(p.comments) == 0 {
		b.WriteString(secondaryStyle.Render("  No comments yet. Be the first to comment!"))
		b.WriteString("\n")
		return b.String()
	}

	uid := p.userID()
	for i, c := range p.comments {
		author := "unknown"
		if c.User != nil {
			author = c.User.Username
		}
		cursor := "  "
		if i == p.cursor && !p.writing {
			cursor = cursorStyle.Render("> ")
		}
		head := accentStyle.Render(author) + secondaryStyle.Render("  "+domain.FormatDate(c.CreatedAt))
		if uid != 0 && p.recipe != nil && c.DeletableBy(uid, p.recipe.OwnerID()) {
			head += secondaryStyle.Render("  [d: delete]")
		}
		b.WriteString(cursor + head + "\n")
		b.WriteString("    " + primaryStyle.Render(c.Content) + "\n")
	}
	return b.String()
}
