// Package display is the terminal UI. The [App] model is the
// composition root: it owns the route table, the session store and
// refresh signal handed to it by main, and the lifecycle of the current
// page. Pages fetch their own data on mount and issue mutations on user
// action; the App only routes messages and guards page lifecycles.
package display

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
	"github.com/Anisah23/grubgrab/internal/refresh"
	"github.com/Anisah23/grubgrab/internal/session"
)

// deps is everything a page needs, injected at construction. The ctx is
// cancelled when the app navigates away, and gen stamps every fetch
// result so late deliveries can be dropped.
type deps struct {
	ctx    context.Context
	gen    int
	client domain.API
	store  *session.Store
	signal *refresh.Signal
	log    *logger.Logger
}

// page is one screen of the client. Update returns the (possibly
// replaced) page and any follow-up command; navigation happens by
// returning a navigate command, never by touching the App directly.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View(width int) string
}

// App is the root Bubble Tea model.
type App struct {
	client domain.API
	store  *session.Store
	signal *refresh.Signal
	log    *logger.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
	gen     int

	route    Route
	page     page
	bell     bell
	checking bool
	width    int
	height   int
}

// NewApp wires the client, session store, and refresh signal into the
// root model. The ctx bounds every request the UI issues.
func NewApp(ctx context.Context, client domain.API, store *session.Store, signal *refresh.Signal, log *logger.Logger) App {
	return App{
		client:   client,
		store:    store,
		signal:   signal,
		log:      log,
		baseCtx:  ctx,
		checking: true,
		route:    Route{Name: RouteHome},
	}
}

// Init kicks off the startup session check. Route rendering stays
// suspended behind the loading view until it resolves.
func (a App) Init() tea.Cmd {
	store := a.store
	ctx := a.baseCtx
	return func() tea.Msg {
		store.CheckSession(ctx)
		return sessionCheckedMsg{}
	}
}

// open replaces the current page: the old page's context is cancelled
// and the generation bumped so its in-flight results are ignored.
func (a *App) open(route Route) tea.Cmd {
	if a.cancel != nil {
		a.cancel()
	}
	ctx, cancel := context.WithCancel(a.baseCtx)
	a.cancel = cancel
	a.gen++
	a.route = route

	d := deps{
		ctx:    ctx,
		gen:    a.gen,
		client: a.client,
		store:  a.store,
		signal: a.signal,
		log:    a.log,
	}

	switch route.Name {
	case RouteLogin:
		a.page = newLoginPage(d)
	case RouteSignup:
		a.page = newSignupPage(d)
	case RouteDashboard:
		a.page = newDashboardPage(d)
	case RouteMyRecipes:
		a.page = newMyRecipesPage(d)
	case RouteFavorites:
		a.page = newFavoritesPage(d)
	case RouteProfile:
		a.page = newProfilePage(d)
	case RouteRecipe:
		a.page = newDetailPage(d, route.Arg)
	case RouteUser:
		a.page = newUserProfilePage(d, route.Arg)
	default:
		a.page = newHomePage(d)
	}
	return a.page.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if a.cancel != nil {
				a.cancel()
			}
			return a, tea.Quit
		}
		if a.checking {
			return a, nil
		}
		if msg.String() == "ctrl+b" && a.store.SignedIn() {
			a.bell.open = !a.bell.open
			return a, a.bellMaybeRefetch()
		}
		if a.bell.open {
			cmd := a.bellKey(msg)
			return a, cmd
		}

	case sessionCheckedMsg:
		a.checking = false
		cmd := a.open(Route{Name: RouteHome})
		return a, tea.Batch(cmd, a.bellMaybeRefetch())

	case navigateMsg:
		cmd := a.open(msg.route)
		return a, tea.Batch(cmd, a.bellMaybeRefetch())

	case loggedOutMsg:
		if msg.err != nil {
			a.log.Error("logout failed: %v", msg.err)
			return a, nil
		}
		a.bell = bell{}
		return a, a.open(Route{Name: RouteHome})

	case bellFetchedMsg:
		a.bell.apply(msg, a.log)
		return a, nil

	case bellReadMsg:
		cmd := a.bellRead(msg)
		return a, cmd
	}

	if a.checking || a.page == nil {
		return a, nil
	}

	// Results from a page that has since been navigated away from are
	// dropped here; their context is already cancelled.
	if gm, ok := msg.(genMsg); ok && gm.generation() != a.gen {
		a.log.Debug("display: dropping stale message (gen %d, current %d)", gm.generation(), a.gen)
		return a, nil
	}

	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, tea.Batch(cmd, a.bellMaybeRefetch())
}

func (a App) View() string {
	if a.checking {
		return "\n" + RenderBanner() + "\n" + secondaryStyle.Render("  Loading...") + "\n"
	}

	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n\n")

	if a.bell.open {
		b.WriteString(a.bell.View())
	} else if a.page != nil {
		b.WriteString(a.page.View(a.contentWidth()))
	}
	return b.String()
}

func (a App) contentWidth() int {
	if a.width > 0 {
		return a.width
	}
	return 80
}

func (a App) headerView() string {
	left := brandStyle.Render(" Grab a Grub ")

	var right string
	if user := a.store.Current(); user != nil {
		right = accentStyle.Render(user.Username)
		if n := domain.UnreadCount(a.bell.list); n > 0 {
			right += badgeStyle.Render(fmt.Sprintf("  ●%d", n))
		}
		right += secondaryStyle.Render("  ctrl+b: notifications ")
	} else {
		right = secondaryStyle.Render("signed out ")
	}

	gap := a.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return barStyle.Width(a.contentWidth()).Render(left + strings.Repeat(" ", gap) + right)
}
