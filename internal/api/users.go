package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// GetUser fetches a user's public profile.
func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates the signed-in user's profile. When PicturePath
// names a local file the request goes out as multipart with the picture
// attached; otherwise as plain JSON.
func (c *Client) UpdateUser(ctx context.Context, id int, params domain.UserParams) (*domain.User, error) {
	path := fmt.Sprintf("/api/users/%d", id)

	var user domain.User
	if params.PicturePath == "" {
		if err := c.do(ctx, http.MethodPatch, path, params, &user); err != nil {
			return nil, err
		}
		return &user, nil
	}

	if err := c.doMultipart(ctx, path, params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// doMultipart sends the profile fields plus the picture file as a
// multipart PATCH.
func (c *Client) doMultipart(ctx context.Context, path string, params domain.UserParams, out any) error {
	f, err := os.Open(params.PicturePath)
	if err != nil {
		return fmt.Errorf("api: open picture: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"username": params.Username,
		"email":    params.Email,
		"bio":      params.Bio,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("api: write field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("profile_picture", filepath.Base(params.PicturePath))
	if err != nil {
		return fmt.Errorf("api: create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("api: copy picture: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.base+path, &buf)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	c.log.Debug("api: PATCH %s multipart (req=%s)", path, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: PATCH %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errBody
		_ = json.Unmarshal(respBody, &eb)
		return &Error{Status: resp.StatusCode, Message: eb.Error}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("api: unmarshal response: %w", err)
	}
	return nil
}
