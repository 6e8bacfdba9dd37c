package display

import (
	"strings"
	"testing"

	"github.com/Anisah23/grubgrab/internal/domain"
)

func loadedUserProfile(t *testing.T, api *fakeAPI, viewer *domain.User) *userProfilePage {
	t.Helper()
	p := newUserProfilePage(testDeps(t, api, viewer), 10)
	for _, m := range run(t, p.Init()) {
		page, _ := p.Update(m)
		p = page.(*userProfilePage)
	}
	return p
}

func TestUserProfileLoads(t *testing.T) {
	api := &fakeAPI{
		user: &domain.User{ID: 10, Username: "marco", Email: "marco@example.com", LikesReceived: 12},
		recipes: []domain.Recipe{
			{ID: 1, Title: "Carbonara", UserID: 10},
			{ID: 2, Title: "Cacio e Pepe", UserID: 10},
		},
	}
	p := loadedUserProfile(t, api, nil)
	if p.loading() || p.failed {
		t.Fatalf("loading=%v failed=%v", p.loading(), p.failed)
	}

	view := p.View(80)
	for _, want := range []string{"marco", "2 recipes", "12 likes received", "Carbonara"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestUserProfileFetchFailure(t *testing.T) {
	api := &fakeAPI{err: domain.ErrNotFound}
	p := loadedUserProfile(t, api, nil)
	if !p.failed {
		t.Fatal("expected the not-found state")
	}
	if !strings.Contains(p.View(80), "User not found") {
		t.Fatal("view should render the not-found state")
	}
}

func TestUserProfileLikeMutatesList(t *testing.T) {
	api := &fakeAPI{
		user:    &domain.User{ID: 10, Username: "marco"},
		recipes: []domain.Recipe{{ID: 1, Title: "Carbonara", UserID: 10}},
	}
	p := loadedUserProfile(t, api, &domain.User{ID: 7})

	page, cmd := p.Update(key("l"))
	p = page.(*userProfilePage)
	if !p.list.recipes[0].LikedBy(7) {
		t.Fatal("like should apply to the list before the request resolves")
	}
	run(t, cmd)
	if len(api.likeCalls) != 1 || api.likeCalls[0] != 1 {
		t.Fatalf("like calls = %v, want [1]", api.likeCalls)
	}
}

func TestUserProfileLikeSignedOut(t *testing.T) {
	api := &fakeAPI{
		user:    &domain.User{ID: 10, Username: "marco"},
		recipes: []domain.Recipe{{ID: 1, Title: "Carbonara", UserID: 10}},
	}
	p := loadedUserProfile(t, api, nil)

	_, cmd := p.Update(key("l"))
	msgs := run(t, cmd)
	nav, ok := msgs[0].(navigateMsg)
	if !ok || nav.route.Name != RouteLogin {
		t.Fatalf("expected navigation to login, got %#v", msgs[0])
	}
	if len(api.likeCalls) != 0 {
		t.Fatal("signed-out like must not hit the API")
	}
}
