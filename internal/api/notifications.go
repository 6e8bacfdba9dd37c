package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// UserNotifications fetches a user's notifications.
func (c *Client) UserNotifications(ctx context.Context, userID int) ([]domain.Notification, error) {
	var list []domain.Notification
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/notifications/user/%d", userID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MarkNotificationRead flips a notification's read status server-side.
func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/notifications/%d/mark_read", id), nil, nil)
}
