package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
)

// bell is the notification indicator. It keeps the full list the server
// returned so the unread badge stays accurate, but the open panel shows
// unread entries only. seq remembers which refresh-signal value the
// list corresponds to; a trigger or a user change makes it stale.
type bell struct {
	open    bool
	cursor  int
	list    []domain.Notification
	fetched bool
	pending bool
	seq     int64
	userID  int
}

func (b *bell) apply(msg bellFetchedMsg, log *logger.Logger) {
	b.pending = false
	b.fetched = true
	b.seq = msg.seq
	b.userID = msg.userID
	if msg.err != nil {
		log.Error("notifications: fetch failed: %v", msg.err)
		return
	}
	b.list = msg.list
	if b.cursor >= len(b.unread()) {
		b.cursor = 0
	}
}

func (b bell) unread() []domain.Notification {
	return domain.Unread(b.list)
}

// bellMaybeRefetch issues a notification fetch whenever the cached list
// no longer matches the signed-in user or the refresh signal. Called
// after every message so mutations elsewhere in the app (a like posted,
// a comment deleted) are picked up without the bell knowing about them.
func (a *App) bellMaybeRefetch() tea.Cmd {
	user := a.store.Current()
	if user == nil || a.bell.pending {
		return nil
	}
	seq := a.signal.Current()
	if a.bell.fetched && a.bell.userID == user.ID && a.bell.seq == seq {
		return nil
	}
	a.bell.pending = true

	client := a.client
	ctx := a.baseCtx
	uid := user.ID
	return func() tea.Msg {
		list, err := client.UserNotifications(ctx, uid)
		return bellFetchedMsg{seq: seq, userID: uid, list: list, err: err}
	}
}

func (a *App) bellKey(msg tea.KeyMsg) tea.Cmd {
	unread := a.bell.unread()
	switch msg.String() {
	case "esc", "q":
		a.bell.open = false
	case "up", "k":
		if a.bell.cursor > 0 {
			a.bell.cursor--
		}
	case "down", "j":
		if a.bell.cursor < len(unread)-1 {
			a.bell.cursor++
		}
	case "enter":
		if a.bell.cursor >= len(unread) {
			return nil
		}
		n := unread[a.bell.cursor]
		client := a.client
		ctx := a.baseCtx
		id := n.ID
		nav := n.Navigable()
		rid := 0
		if n.Recipe != nil {
			rid = n.Recipe.ID
		}
		return func() tea.Msg {
			err := client.MarkNotificationRead(ctx, id)
			return bellReadMsg{id: id, recipeID: rid, navigate: nav, err: err}
		}
	}
	return nil
}

func (a *App) bellRead(msg bellReadMsg) tea.Cmd {
	if msg.err != nil {
		a.log.Error("notifications: mark read failed: %v", msg.err)
		return nil
	}
	a.bell.open = false
	a.bell.fetched = false // force a refetch so the badge updates
	refetch := a.bellMaybeRefetch()
	if msg.navigate {
		return tea.Batch(refetch, navigateTo(RouteRecipe, msg.recipeID))
	}
	return refetch
}

func (b bell) View() string {
	unread := b.unread()

	var body strings.Builder
	body.WriteString(titleStyle.Render("Notifications"))
	body.WriteString("\n\n")

	if !b.fetched {
		body.WriteString(secondaryStyle.Render("Loading..."))
	} else if len(unread) == 0 {
		body.WriteString(secondaryStyle.Render("No new notifications"))
	} else {
		for i, n := range unread {
			cursor := "  "
			line := primaryStyle.Render(n.Message())
			if i == b.cursor {
				cursor = cursorStyle.Render("> ")
				line = accentStyle.Render(n.Message())
			}
			body.WriteString(cursor + line + "\n")
			meta := domain.FormatDate(n.CreatedAt)
			if n.Recipe != nil {
				meta = n.Recipe.Title + "  " + meta
			}
			body.WriteString("  " + secondaryStyle.Render(meta) + "\n")
		}
	}

	body.WriteString("\n")
	body.WriteString(secondaryStyle.Render(fmt.Sprintf("%d unread    enter: open    esc: close", len(unread))))
	return panelStyle.Render(body.String()) + "\n"
}
