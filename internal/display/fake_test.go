package display

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
	"github.com/Anisah23/grubgrab/internal/refresh"
	"github.com/Anisah23/grubgrab/internal/session"
)

// fakeAPI is an in-memory backend for page tests. It records mutation
// calls so tests can assert what went over the wire.
type fakeAPI struct {
	mu sync.Mutex

	user          *domain.User
	recipes       []domain.Recipe
	comments      []domain.Comment
	notifications []domain.Notification

	err error // returned by every call when set

	likeCalls       []int
	unlikeCalls     []int
	favoriteCalls   []int
	unfavoriteCalls []int
	deletedRecipes  []int
	deletedComments []int
	readMarked      []int
	postedComments  []string
}

var _ domain.API = (*fakeAPI)(nil)

func (f *fakeAPI) CheckSession(ctx context.Context) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeAPI) Signup(ctx context.Context, params domain.SignupParams) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeAPI) Logout(ctx context.Context) error { return f.err }

func (f *fakeAPI) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return f.recipes, f.err
}

func (f *fakeAPI) GetRecipe(ctx context.Context, id int) (*domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			return &f.recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAPI) UserRecipes(ctx context.Context, userID int) ([]domain.Recipe, error) {
	return f.recipes, f.err
}

func (f *fakeAPI) CreateRecipe(ctx context.Context, params domain.RecipeParams) (*domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := domain.Recipe{ID: 99, Title: params.Title}
	return &r, nil
}

func (f *fakeAPI) UpdateRecipe(ctx context.Context, id int, params domain.RecipeParams) (*domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := domain.Recipe{ID: id, Title: params.Title}
	return &r, nil
}

func (f *fakeAPI) DeleteRecipe(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedRecipes = append(f.deletedRecipes, id)
	return f.err
}

func (f *fakeAPI) Like(ctx context.Context, recipeID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.likeCalls = append(f.likeCalls, recipeID)
	return f.err
}

func (f *fakeAPI) Unlike(ctx context.Context, recipeID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlikeCalls = append(f.unlikeCalls, recipeID)
	return f.err
}

func (f *fakeAPI) Favorite(ctx context.Context, recipeID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favoriteCalls = append(f.favoriteCalls, recipeID)
	return f.err
}

func (f *fakeAPI) Unfavorite(ctx context.Context, recipeID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unfavoriteCalls = append(f.unfavoriteCalls, recipeID)
	return f.err
}

func (f *fakeAPI) UserFavorites(ctx context.Context, userID int) ([]domain.FavoriteEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.FavoriteEntry
	for _, r := range f.recipes {
		out = append(out, domain.FavoriteEntry{ID: r.ID, Recipe: r})
	}
	return out, nil
}

func (f *fakeAPI) RecipeComments(ctx context.Context, recipeID int) ([]domain.Comment, error) {
	return f.comments, f.err
}

func (f *fakeAPI) PostComment(ctx context.Context, recipeID int, content string) (*domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.postedComments = append(f.postedComments, content)
	return &domain.Comment{ID: 1000 + len(f.postedComments), Content: content, RecipeID: recipeID}, nil
}

func (f *fakeAPI) DeleteComment(ctx context.Context, commentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedComments = append(f.deletedComments, commentID)
	return f.err
}

func (f *fakeAPI) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeAPI) UpdateUser(ctx context.Context, id int, params domain.UserParams) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id, Username: params.Username, Email: params.Email, Bio: params.Bio}, nil
}

func (f *fakeAPI) UserNotifications(ctx context.Context, userID int) ([]domain.Notification, error) {
	return f.notifications, f.err
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readMarked = append(f.readMarked, id)
	return f.err
}

// testDeps builds page dependencies over the fake, optionally signed in.
func testDeps(t *testing.T, api domain.API, user *domain.User) deps {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := session.NewStore(api, log)
	if user != nil {
		store.SetUser(user)
	}
	return deps{
		ctx:    context.Background(),
		gen:    1,
		client: api,
		store:  store,
		signal: &refresh.Signal{},
		log:    log,
	}
}

// key builds a KeyMsg for plain keys and the specials pages care about.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes a command tree and returns the flattened messages.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
