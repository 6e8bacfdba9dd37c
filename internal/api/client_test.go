package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, logger.New(logger.LevelOff, nil))
}

func TestLogin(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "chef", body["username"])
		assert.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(domain.User{ID: 7, Username: "chef"})
	}))

	user, err := client.Login(context.Background(), "chef", "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, "chef", user.Username)
}

func TestSessionCookieCarriedAcrossCalls(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
			json.NewEncoder(w).Encode(domain.User{ID: 7, Username: "chef"})
		case "/api/check_session":
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "abc123" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Not authorized"})
				return
			}
			json.NewEncoder(w).Encode(domain.User{ID: 7, Username: "chef"})
		}
	}))
	ctx := context.Background()

	// Without the login cookie the session check is rejected.
	_, err := client.CheckSession(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = client.Login(ctx, "chef", "secret")
	require.NoError(t, err)

	user, err := client.CheckSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "chef", user.Username)
}

func TestErrorEnvelope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "Username already taken"})
	}))

	_, err := client.Signup(context.Background(), domain.SignupParams{Username: "chef"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Username already taken", apiErr.Message)

	assert.Equal(t, "Username already taken", ErrorMessage(err, "Signup failed"))
	// A wrapped error still surfaces the server message.
	assert.Equal(t, "Username already taken", ErrorMessage(fmt.Errorf("signup: %w", err), "Signup failed"))
}

func TestErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", ErrorMessage(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(&Error{Status: 500}, "fallback"))
}

func TestStatusSentinels(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			_, err := client.GetRecipe(context.Background(), 42)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestToggleRequestsCarryBody(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	tests := []struct {
		name string
		call func(*Client, context.Context) error
		want call
	}{
		{"like", func(c *Client, ctx context.Context) error { return c.Like(ctx, 42) }, call{http.MethodPost, "/api/likes"}},
		{"unlike", func(c *Client, ctx context.Context) error { return c.Unlike(ctx, 42) }, call{http.MethodDelete, "/api/likes"}},
		{"favorite", func(c *Client, ctx context.Context) error { return c.Favorite(ctx, 42) }, call{http.MethodPost, "/api/favorites"}},
		{"unfavorite", func(c *Client, ctx context.Context) error { return c.Unfavorite(ctx, 42) }, call{http.MethodDelete, "/api/favorites"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got call
			var body map[string]int
			client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = call{r.Method, r.URL.Path}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				w.WriteHeader(http.StatusNoContent)
			}))

			require.NoError(t, tt.call(client, context.Background()))
			assert.Equal(t, tt.want, got)
			// DELETE variants identify the association by recipe, not id.
			assert.Equal(t, 42, body["recipe_id"])
		})
	}
}

func TestPostComment(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/comments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Delicious!", body["content"])
		assert.EqualValues(t, 42, body["recipe_id"])

		json.NewEncoder(w).Encode(domain.Comment{ID: 9, Content: "Delicious!", UserID: 7})
	}))

	comment, err := client.PostComment(context.Background(), 42, "Delicious!")
	require.NoError(t, err)
	assert.Equal(t, 9, comment.ID)
	assert.Equal(t, "Delicious!", comment.Content)
}

func TestDeleteComment(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/comments", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 9, body["comment_id"])
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteComment(context.Background(), 9))
}

func TestResourcePaths(t *testing.T) {
	var gotPath, gotMethod string
	var respBody string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(respBody))
	}))
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() error
		resp       string
		wantMethod string
		wantPath   string
	}{
		{"get recipe", func() error { _, err := client.GetRecipe(ctx, 5); return err }, `{}`, http.MethodGet, "/api/recipes/5"},
		{"list recipes", func() error { _, err := client.ListRecipes(ctx); return err }, `[]`, http.MethodGet, "/api/recipes"},
		{"user recipes", func() error { _, err := client.UserRecipes(ctx, 3); return err }, `[]`, http.MethodGet, "/api/recipes/user/3"},
		{"user favorites", func() error { _, err := client.UserFavorites(ctx, 3); return err }, `[]`, http.MethodGet, "/api/favorites/user/3"},
		{"recipe comments", func() error { _, err := client.RecipeComments(ctx, 5); return err }, `[]`, http.MethodGet, "/api/comments/recipe/5"},
		{"delete recipe", func() error { return client.DeleteRecipe(ctx, 5) }, ``, http.MethodDelete, "/api/recipes/5"},
		{"get user", func() error { _, err := client.GetUser(ctx, 3); return err }, `{}`, http.MethodGet, "/api/users/3"},
		{"notifications", func() error { _, err := client.UserNotifications(ctx, 3); return err }, `[]`, http.MethodGet, "/api/notifications/user/3"},
		{"mark read", func() error { return client.MarkNotificationRead(ctx, 8) }, ``, http.MethodPatch, "/api/notifications/8/mark_read"},
		{"logout", func() error { return client.Logout(ctx) }, ``, http.MethodDelete, "/api/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			respBody = tt.resp
			require.NoError(t, tt.call())
			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestBaseURLTrimmed(t *testing.T) {
	c := New("http://example.com/", logger.New(logger.LevelOff, nil))
	assert.Equal(t, "http://example.com", c.BaseURL())

	c = New("", logger.New(logger.LevelOff, nil))
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListRecipes(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
