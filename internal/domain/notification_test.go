package domain

import "testing"

func TestNotificationMessage(t *testing.T) {
	actor := User{Username: "ayesha"}

	tests := []struct {
		name string
		n    Notification
		want string
	}{
		{"like", Notification{Type: NotifyLike, Actor: actor}, "ayesha liked your recipe"},
		{"comment", Notification{Type: NotifyComment, Actor: actor}, "ayesha commented on your recipe"},
		{"comment deleted", Notification{Type: NotifyCommentDeleted, Actor: actor}, "ayesha deleted your comment"},
		{"follow", Notification{Type: NotifyFollow, Actor: actor}, "ayesha started following you"},
		{"unknown type", Notification{Type: "mention", Actor: actor}, "New notification"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.Message(); got != tt.want {
				t.Fatalf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotificationNavigable(t *testing.T) {
	recipe := &Recipe{ID: 3}

	tests := []struct {
		name string
		n    Notification
		want bool
	}{
		{"like with recipe", Notification{Type: NotifyLike, Recipe: recipe}, true},
		{"comment with recipe", Notification{Type: NotifyComment, Recipe: recipe}, true},
		{"like without recipe", Notification{Type: NotifyLike}, false},
		{"comment_deleted never navigates", Notification{Type: NotifyCommentDeleted, Recipe: recipe}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.Navigable(); got != tt.want {
				t.Fatalf("Navigable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnread(t *testing.T) {
	list := []Notification{
		{ID: 1, ReadStatus: true},
		{ID: 2},
		{ID: 3},
		{ID: 4, ReadStatus: true},
	}

	if got := UnreadCount(list); got != 2 {
		t.Fatalf("UnreadCount = %d, want 2", got)
	}

	unread := Unread(list)
	if len(unread) != 2 || unread[0].ID != 2 || unread[1].ID != 3 {
		t.Fatalf("Unread returned %v, want ids 2 and 3 in order", unread)
	}

	if UnreadCount(nil) != 0 {
		t.Fatal("UnreadCount(nil) should be 0")
	}
}
