package domain

import "fmt"

// Notification types generated by the server.
const (
	NotifyLike           = "like"
	NotifyComment        = "comment"
	NotifyCommentDeleted = "comment_deleted"
	NotifyFollow         = "follow"
)

// Notification is a server-generated record of an event relevant to the
// current user. The client only reads these and marks them read.
type Notification struct {
	ID         int     `json:"id"`
	Type       string  `json:"type"`
	Actor      User    `json:"actor"`
	Recipe     *Recipe `json:"recipe,omitempty"`
	ReadStatus bool    `json:"read_status"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// Message renders the notification as a human-readable line.
func (n Notification) Message() string {
	switch n.Type {
	case NotifyLike:
		return fmt.Sprintf("%s liked your recipe", n.Actor.Username)
	case NotifyComment:
		return fmt.Sprintf("%s commented on your recipe", n.Actor.Username)
	case NotifyCommentDeleted:
		return fmt.Sprintf("%s deleted your comment", n.Actor.Username)
	case NotifyFollow:
		return fmt.Sprintf("%s started following you", n.Actor.Username)
	default:
		return "New notification"
	}
}

// Navigable reports whether selecting the notification should open its
// recipe. comment_deleted items reference a recipe but are
// informational only.
func (n Notification) Navigable() bool {
	return n.Recipe != nil && n.Type != NotifyCommentDeleted
}

// UnreadCount counts notifications not yet marked read.
func UnreadCount(list []Notification) int {
	count := 0
	for _, n := range list {
		if !n.ReadStatus {
			count++
		}
	}
	return count
}

// Unread returns the unread notifications, preserving order.
func Unread(list []Notification) []Notification {
	var out []Notification
	for _, n := range list {
		if !n.ReadStatus {
			out = append(out, n)
		}
	}
	return out
}
