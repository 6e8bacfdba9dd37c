// Package domain defines the wire types and interfaces for the Grab a
// Grub client. All other packages depend on domain; domain depends on
// nothing.
package domain

import "time"

// User is a platform account as returned by the API. The count fields
// are derived server-side and may be absent from embedded copies.
type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	RecipeCount    int    `json:"recipe_count,omitempty"`
	LikesReceived  int    `json:"likes_received,omitempty"`
}

// FormatDate renders an API timestamp as a short date. The backend
// emits ISO 8601; anything that fails to parse is shown as-is.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}
