package display

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// ── Routes ───────────────────────────────────────────────────────

// RouteName identifies a client-visible page.
type RouteName string

const (
	RouteHome      RouteName = "home"
	RouteLogin     RouteName = "login"
	RouteSignup    RouteName = "signup"
	RouteDashboard RouteName = "dashboard"
	RouteMyRecipes RouteName = "my-recipes"
	RouteFavorites RouteName = "favorites"
	RouteProfile   RouteName = "profile"
	RouteRecipe    RouteName = "recipe"
	RouteUser      RouteName = "user"
)

// Route is a navigation target; Arg carries the recipe or user id for
// the detail routes.
type Route struct {
	Name RouteName
	Arg  int
}

type navigateMsg struct {
	route Route
}

// navigate produces a command that moves the app to the given route.
func navigate(name RouteName) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: Route{Name: name}} }
}

// navigateTo is navigate with a route argument (recipe/user id).
func navigateTo(name RouteName, arg int) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: Route{Name: name, Arg: arg}} }
}

// ── Page lifecycle ───────────────────────────────────────────────

// genMsg is implemented by every page-scoped fetch result. The app
// drops results whose generation predates the current page, so a view
// navigated away from can never update its successor.
type genMsg interface {
	generation() int
}

// pageGen is embedded in page-scoped messages.
type pageGen struct {
	gen int
}

func (p pageGen) generation() int { return p.gen }

// ── Session ──────────────────────────────────────────────────────

// sessionCheckedMsg ends the startup loading state.
type sessionCheckedMsg struct{}

// loggedOutMsg reports the logout call's outcome.
type loggedOutMsg struct {
	err error
}

// ── Page fetch results ───────────────────────────────────────────

type recipesLoadedMsg struct {
	pageGen
	recipes []domain.Recipe
	err     error
}

type myRecipesLoadedMsg struct {
	pageGen
	recipes []domain.Recipe
	err     error
}

type favoritesLoadedMsg struct {
	pageGen
	entries []domain.FavoriteEntry
	err     error
}

type recipeFetchedMsg struct {
	pageGen
	recipe *domain.Recipe
	err    error
}

type commentsFetchedMsg struct {
	pageGen
	comments []domain.Comment
	err      error
}

type profileUserFetchedMsg struct {
	pageGen
	user *domain.User
	err  error
}

type profileRecipesFetchedMsg struct {
	pageGen
	recipes []domain.Recipe
	err     error
}

// ── Mutation results ─────────────────────────────────────────────

type authDoneMsg struct {
	pageGen
	err error
}

type likeToggledMsg struct {
	pageGen
	recipeID int
	liked    bool
	err      error
}

type favoriteToggledMsg struct {
	pageGen
	recipeID  int
	favorited bool
	err       error
}

type commentPostedMsg struct {
	pageGen
	comment *domain.Comment
	err     error
}

type commentDeletedMsg struct {
	pageGen
	commentID int
	err       error
}

type recipeSavedMsg struct {
	pageGen
	err error
}

type recipeDeletedMsg struct {
	pageGen
	recipeID int
	err      error
}

type favoriteRemovedMsg struct {
	pageGen
	recipeID int
	err      error
}

type profileSavedMsg struct {
	pageGen
	user *domain.User
	err  error
}

// ── Notifications ────────────────────────────────────────────────

type bellFetchedMsg struct {
	seq    int64
	userID int
	list   []domain.Notification
	err    error
}

type bellReadMsg struct {
	id       int
	recipeID int
	navigate bool
	err      error
}

// ── Toast ────────────────────────────────────────────────────────

type toastExpiredMsg struct {
	id int
}
