package domain

import "strings"

// Recipe is a shared cooking record. Ingredients and instructions are
// newline-delimited free text; the embedded like/favorite/comment
// collections carry whatever the endpoint chose to include, so treat
// them as possibly stale snapshots.
type Recipe struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Ingredients  string     `json:"ingredients"`
	Instructions string     `json:"instructions"`
	CookingTime  int        `json:"cooking_time"`
	ImageURL     string     `json:"image_url,omitempty"`
	UserID       int        `json:"user_id,omitempty"`
	User         *User      `json:"user,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"`
	Likes        []Like     `json:"likes,omitempty"`
	Favorites    []Favorite `json:"favorites,omitempty"`
	Comments     []Comment  `json:"comments,omitempty"`
}

// Like is an existence-only (user, recipe) association.
type Like struct {
	ID       int `json:"id,omitempty"`
	UserID   int `json:"user_id"`
	RecipeID int `json:"recipe_id,omitempty"`
}

// Favorite has the same toggle shape as Like, independent of it.
type Favorite struct {
	ID       int `json:"id,omitempty"`
	UserID   int `json:"user_id"`
	RecipeID int `json:"recipe_id,omitempty"`
}

// FavoriteEntry is the element shape of GET /api/favorites/user/:id,
// which wraps each favorited recipe.
type FavoriteEntry struct {
	ID     int    `json:"id,omitempty"`
	Recipe Recipe `json:"recipe"`
}

// Comment is a user comment on a recipe. Depending on the endpoint the
// author arrives embedded, as a bare user_id, or both.
type Comment struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	UserID    int    `json:"user_id,omitempty"`
	User      *User  `json:"user,omitempty"`
	RecipeID  int    `json:"recipe_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// AuthorID returns the comment author's id from whichever field the
// endpoint populated.
func (c Comment) AuthorID() int {
	if c.UserID != 0 {
		return c.UserID
	}
	if c.User != nil {
		return c.User.ID
	}
	return 0
}

// DeletableBy reports whether the given user may delete this comment:
// the comment's author or the recipe's owner. This mirrors the server's
// authorization check for visibility only; the server remains the
// system of record.
func (c Comment) DeletableBy(userID, recipeOwnerID int) bool {
	if userID == 0 {
		return false
	}
	return c.AuthorID() == userID || recipeOwnerID == userID
}

// LikedBy reports whether the recipe's embedded likes contain the user.
func (r Recipe) LikedBy(userID int) bool {
	for _, l := range r.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// FavoritedBy reports whether the embedded favorites contain the user.
func (r Recipe) FavoritedBy(userID int) bool {
	for _, f := range r.Favorites {
		if f.UserID == userID {
			return true
		}
	}
	return false
}

// LikeCount returns the embedded like count.
func (r Recipe) LikeCount() int { return len(r.Likes) }

// CommentCount returns the embedded comment count.
func (r Recipe) CommentCount() int { return len(r.Comments) }

// OwnerID returns the owning user's id from whichever field the
// endpoint populated, or 0 when neither is present.
func (r Recipe) OwnerID() int {
	if r.User != nil {
		return r.User.ID
	}
	return r.UserID
}

// AuthorName returns the owning user's username, or "" when absent.
func (r Recipe) AuthorName() string {
	if r.User == nil {
		return ""
	}
	return r.User.Username
}

// SplitLines splits newline-delimited recipe text into ordered display
// lines. Lines are trimmed and blank lines dropped; instruction numbers
// come from position, not from any leading numeral in the text.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
