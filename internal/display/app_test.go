package display

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
	"github.com/Anisah23/grubgrab/internal/refresh"
	"github.com/Anisah23/grubgrab/internal/session"
)

func newTestApp(t *testing.T, api *fakeAPI) App {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := session.NewStore(api, log)
	return NewApp(context.Background(), api, store, &refresh.Signal{}, log)
}

// apply feeds one message through the app and executes the resulting
// command tree.
func apply(t *testing.T, a App, msg tea.Msg) (App, []tea.Msg) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), run(t, cmd)
}

// pump delivers messages until the app settles.
func pump(t *testing.T, a App, msgs []tea.Msg) App {
	t.Helper()
	for len(msgs) > 0 {
		var next []tea.Msg
		for _, m := range msgs {
			var out []tea.Msg
			a, out = apply(t, a, m)
			next = append(next, out...)
		}
		msgs = next
	}
	return a
}

// startApp runs the startup session check to completion.
func startApp(t *testing.T, api *fakeAPI) App {
	t.Helper()
	a := newTestApp(t, api)
	a = pump(t, a, run(t, a.Init()))
	if a.checking {
		t.Fatal("session check should have completed")
	}
	return a
}

func signedInAPI() *fakeAPI {
	return &fakeAPI{
		user: &domain.User{ID: 7, Username: "ayesha"},
		recipes: []domain.Recipe{
			{ID: 3, Title: "Biryani", CookingTime: 90, UserID: 7},
		},
		notifications: []domain.Notification{
			{
				ID:     11,
				Type:   domain.NotifyLike,
				Actor:  domain.User{ID: 10, Username: "marco"},
				Recipe: &domain.Recipe{ID: 3, Title: "Biryani"},
			},
		},
	}
}

func TestAppShowsHomeAfterSessionCheck(t *testing.T) {
	a := startApp(t, &fakeAPI{})
	if a.route.Name != RouteHome {
		t.Fatalf("route = %q, want home", a.route.Name)
	}
	view := a.View()
	if !strings.Contains(view, "Grab a Grub") || !strings.Contains(view, "signed out") {
		t.Fatal("header should show the brand and signed-out state")
	}
}

func TestAppRestoresSession(t *testing.T) {
	a := startApp(t, signedInAPI())
	if !a.store.SignedIn() {
		t.Fatal("session check should restore the user")
	}
	if !strings.Contains(a.View(), "ayesha") {
		t.Fatal("header should show the username")
	}
}

func TestAppDropsStaleResults(t *testing.T) {
	nav := navigateMsg{route: Route{Name: RouteDashboard}}

	a := startApp(t, &fakeAPI{recipes: []domain.Recipe{{ID: 1, Title: "Pho"}}})
	a, stale := apply(t, a, nav)
	a, fresh := apply(t, a, nav)

	a, _ = apply(t, a, stale[0])
	if !a.page.(*dashboardPage).loading {
		t.Fatal("a result from the replaced page must be dropped")
	}

	a, _ = apply(t, a, fresh[0])
	if a.page.(*dashboardPage).loading {
		t.Fatal("the current page's result must be delivered")
	}
}

func TestAppCancelsOldPageContext(t *testing.T) {
	a := startApp(t, &fakeAPI{})
	a, _ = apply(t, a, navigateMsg{route: Route{Name: RouteDashboard}})
	old := a.page.(*dashboardPage).d

	a, _ = apply(t, a, navigateMsg{route: Route{Name: RouteHome}})
	if !errors.Is(old.ctx.Err(), context.Canceled) {
		t.Fatal("navigating away must cancel the old page's context")
	}
}

func TestAppCtrlCQuits(t *testing.T) {
	a := startApp(t, &fakeAPI{})
	_, msgs := apply(t, a, tea.KeyMsg{Type: tea.KeyCtrlC})
	if len(msgs) != 1 {
		t.Fatalf("messages = %v", msgs)
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Fatalf("expected quit, got %#v", msgs[0])
	}
}

func TestAppBellBadge(t *testing.T) {
	a := startApp(t, signedInAPI())
	if !a.bell.fetched {
		t.Fatal("startup should fetch notifications for a signed-in user")
	}
	if !strings.Contains(a.View(), "●1") {
		t.Fatal("header should show the unread badge")
	}
}

func TestAppBellOpenAndMarkRead(t *testing.T) {
	api := signedInAPI()
	a := startApp(t, api)

	a, _ = apply(t, a, key("ctrl+b"))
	if !a.bell.open {
		t.Fatal("ctrl+b should open the panel")
	}
	if !strings.Contains(a.View(), "marco liked your recipe") {
		t.Fatal("panel should list the unread notification")
	}

	a, msgs := apply(t, a, key("enter"))
	if len(api.readMarked) != 1 || api.readMarked[0] != 11 {
		t.Fatalf("marked read = %v, want [11]", api.readMarked)
	}

	a = pump(t, a, msgs)
	if a.bell.open {
		t.Fatal("a read notification should close the panel")
	}
	if a.route.Name != RouteRecipe || a.route.Arg != 3 {
		t.Fatalf("route = %+v, want the notification's recipe", a.route)
	}
}

func TestAppBellMarkReadFailureKeepsPanel(t *testing.T) {
	api := signedInAPI()
	a := startApp(t, api)
	a, _ = apply(t, a, key("ctrl+b"))

	a, msgs := apply(t, a, key("enter"))
	read := msgs[0].(bellReadMsg)
	read.err = errors.New("boom")
	a, _ = apply(t, a, read)
	if !a.bell.open {
		t.Fatal("a failed mark-read should leave the panel open")
	}
}

func TestAppBellSignedOutIgnoresToggle(t *testing.T) {
	a := startApp(t, &fakeAPI{})
	a, _ = apply(t, a, key("ctrl+b"))
	if a.bell.open {
		t.Fatal("the bell is only available when signed in")
	}
}

func TestAppSignalTriggersBellRefetch(t *testing.T) {
	a := startApp(t, signedInAPI())
	a.signal.Trigger()

	a, msgs := apply(t, a, key("x"))
	a = pump(t, a, msgs)
	if a.bell.seq != a.signal.Current() {
		t.Fatal("a refresh trigger should make the bell refetch")
	}
}

func TestAppLogoutResetsBellAndRoute(t *testing.T) {
	a := startApp(t, signedInAPI())
	a, _ = apply(t, a, navigateMsg{route: Route{Name: RouteDashboard}})

	a, msgs := apply(t, a, loggedOutMsg{})
	a = pump(t, a, msgs)
	if a.route.Name != RouteHome {
		t.Fatalf("route = %q, want home", a.route.Name)
	}
	if a.bell.fetched || a.bell.open || len(a.bell.list) != 0 {
		t.Fatalf("bell should be reset, got %+v", a.bell)
	}
}
