package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// recipeRef is the body of like/favorite toggles. The DELETE variants
// also carry it — the backend identifies the association by recipe, not
// by its own id.
type recipeRef struct {
	RecipeID int `json:"recipe_id"`
}

// Like records the signed-in user's like on a recipe.
func (c *Client) Like(ctx context.Context, recipeID int) error {
	return c.do(ctx, http.MethodPost, "/api/likes", recipeRef{RecipeID: recipeID}, nil)
}

// Unlike removes the signed-in user's like from a recipe.
func (c *Client) Unlike(ctx context.Context, recipeID int) error {
	return c.do(ctx, http.MethodDelete, "/api/likes", recipeRef{RecipeID: recipeID}, nil)
}

// Favorite records the signed-in user's favorite on a recipe.
func (c *Client) Favorite(ctx context.Context, recipeID int) error {
	return c.do(ctx, http.MethodPost, "/api/favorites", recipeRef{RecipeID: recipeID}, nil)
}

// Unfavorite removes the signed-in user's favorite from a recipe.
func (c *Client) Unfavorite(ctx context.Context, recipeID int) error {
	return c.do(ctx, http.MethodDelete, "/api/favorites", recipeRef{RecipeID: recipeID}, nil)
}

// UserFavorites fetches a user's favorites, each wrapping its recipe.
func (c *Client) UserFavorites(ctx context.Context, userID int) ([]domain.FavoriteEntry, error) {
	var entries []domain.FavoriteEntry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/favorites/user/%d", userID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RecipeComments fetches the comments on a recipe, newest first.
func (c *Client) RecipeComments(ctx context.Context, recipeID int) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/comments/recipe/%d", recipeID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

type postCommentParams struct {
	Content  string `json:"content"`
	RecipeID int    `json:"recipe_id"`
}

// PostComment creates a comment and returns the server's copy, which
// callers prepend to their displayed list.
func (c *Client) PostComment(ctx context.Context, recipeID int, content string) (*domain.Comment, error) {
	var comment domain.Comment
	err := c.do(ctx, http.MethodPost, "/api/comments", postCommentParams{Content: content, RecipeID: recipeID}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

type deleteCommentParams struct {
	CommentID int `json:"comment_id"`
}

// DeleteComment removes a comment. The server authorizes: author or
// recipe owner.
func (c *Client) DeleteComment(ctx context.Context, commentID int) error {
	return c.do(ctx, http.MethodDelete, "/api/comments", deleteCommentParams{CommentID: commentID}, nil)
}
