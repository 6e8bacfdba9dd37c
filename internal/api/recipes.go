package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// ListRecipes fetches every recipe on the platform.
func (c *Client) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe fetches a single recipe with its embedded likes, favorites
// and comments.
func (c *Client) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/recipes/%d", id), nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UserRecipes fetches the recipes owned by a user.
func (c *Client) UserRecipes(ctx context.Context, userID int) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/recipes/user/%d", userID), nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// CreateRecipe publishes a new recipe owned by the signed-in user.
func (c *Client) CreateRecipe(ctx context.Context, params domain.RecipeParams) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.do(ctx, http.MethodPost, "/api/recipes", params, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe issues a partial update against an existing recipe.
func (c *Client) UpdateRecipe(ctx context.Context, id int, params domain.RecipeParams) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/recipes/%d", id), params, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe the signed-in user owns.
func (c *Client) DeleteRecipe(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/recipes/%d", id), nil, nil)
}
