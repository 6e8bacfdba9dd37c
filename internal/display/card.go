package display

import (
	"fmt"
	"strings"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// descriptionLimit matches the card's truncated description length.
const descriptionLimit = 100

// renderCard renders one recipe as a compact card. userID drives the
// liked marker; 0 means signed out.
func renderCard(r domain.Recipe, userID int, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}

	desc := strings.ReplaceAll(r.Description, "\n", " ")
	if runes := []rune(desc); len(runes) > descriptionLimit {
		desc = string(runes[:descriptionLimit]) + "..."
	}

	title := titleStyle.Render(r.Title)
	meta := secondaryStyle.Render(fmt.Sprintf("%d min", r.CookingTime))
	if name := r.AuthorName(); name != "" {
		meta += secondaryStyle.Render("  ·  by ") + accentStyle.Render(name)
	}

	likeMark := "♥"
	likeLine := fmt.Sprintf("%s %d", likeMark, r.LikeCount())
	if userID != 0 && r.LikedBy(userID) {
		likeLine = likedStyle.Render(likeLine + " liked")
	} else {
		likeLine = secondaryStyle.Render(likeLine)
	}
	likeLine += secondaryStyle.Render(fmt.Sprintf("   %d comment(s)", r.CommentCount()))

	lines := []string{title + "  " + meta}
	if desc != "" {
		lines = append(lines, primaryStyle.Render(desc))
	}
	lines = append(lines, likeLine)

	return style.Render(strings.Join(lines, "\n"))
}

// cardList is a vertically navigable list of recipe cards shared by the
// list pages.
type cardList struct {
	recipes []domain.Recipe
	cursor  int
}

func (l *cardList) set(recipes []domain.Recipe) {
	l.recipes = recipes
	if l.cursor >= len(recipes) {
		l.cursor = len(recipes) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *cardList) move(delta int) {
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.recipes) {
		l.cursor = len(l.recipes) - 1
	}
}

// selected returns the recipe under the cursor, or nil on an empty list.
func (l *cardList) selected() *domain.Recipe {
	if len(l.recipes) == 0 {
		return nil
	}
	return &l.recipes[l.cursor]
}

// applyLike flips the embedded like state for one recipe in place so
// the cards re-render with the new count. The server call runs
// separately; this is the optimistic half.
func applyLike(recipes []domain.Recipe, recipeID, userID int, liked bool) {
	for i := range recipes {
		r := &recipes[i]
		if r.ID != recipeID {
			continue
		}
		if liked {
			if !r.LikedBy(userID) {
				r.Likes = append(r.Likes, domain.Like{UserID: userID, RecipeID: r.ID})
			}
			return
		}
		kept := r.Likes[:0]
		for _, like := range r.Likes {
			if like.UserID != userID {
				kept = append(kept, like)
			}
		}
		r.Likes = kept
		return
	}
}

// remove drops the recipe with the given id from the list.
func (l *cardList) remove(recipeID int) {
	kept := l.recipes[:0]
	for _, r := range l.recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	l.set(kept)
}

// View renders the cards with the cursor marked.
func (l cardList) View(userID int) string {
	if len(l.recipes) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range l.recipes {
		b.WriteString(renderCard(r, userID, i == l.cursor))
		b.WriteByte('\n')
	}
	return b.String()
}
