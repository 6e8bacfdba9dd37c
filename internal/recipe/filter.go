// Package recipe holds pure list operations over recipes: the dashboard
// search filter and favorites unwrapping. Filtering is re-derived from
// its inputs every time; nothing here persists state.
package recipe

import (
	"strings"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// Filter returns the recipes matching both the search term and the
// cooking-time ceiling.
//
// The term matches case-insensitively as a substring of the title,
// ingredients text, description, or author username — a hit in any
// field retains the item. An empty (or all-whitespace) term keeps
// everything. A maxMinutes of 0 or less disables the ceiling; otherwise
// items with cooking_time above it are dropped.
func Filter(list []domain.Recipe, term string, maxMinutes int) []domain.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.Recipe, 0, len(list))
	for _, r := range list {
		if term != "" && !matches(r, term) {
			continue
		}
		if maxMinutes > 0 && r.CookingTime > maxMinutes {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r domain.Recipe, term string) bool {
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Ingredients), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.AuthorName()), term)
}

// Recipes unwraps a favorites listing into its recipes, in order.
func Recipes(entries []domain.FavoriteEntry) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Recipe)
	}
	return out
}
