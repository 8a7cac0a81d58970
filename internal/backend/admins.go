package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/citu-lostit/lostit/internal/model"
)

// ListAdmins fetches all admin accounts. The backend exposes no lookup or
// credential-check endpoint, so login and recovery search this list.
func (c *Client) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := c.get(ctx, "/api/admins/getAllAdmins", &admins); err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	return admins, nil
}

// FindAdminByUsername searches the fetched admin list by exact username.
// Returns nil when no account matches.
func (c *Client) FindAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admins, err := c.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Username == username {
			return &admins[i], nil
		}
	}
	return nil, nil
}

// FindAdminByEmail searches the fetched admin list by exact email.
// Returns nil when no account matches.
func (c *Client) FindAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admins, err := c.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].Email == email {
			return &admins[i], nil
		}
	}
	return nil, nil
}

// CreateAdmin registers a new admin account. The Password field must already
// hold a bcrypt hash.
func (c *Client) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	if err := c.do(ctx, http.MethodPost, "/api/admins/createAdmin", admin, nil); err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	return nil
}

// UpdateAdminDetails replaces an admin's profile and returns the updated
// record. The full record is sent; the backend applies last-write-wins.
func (c *Client) UpdateAdminDetails(ctx context.Context, id int64, admin *model.Admin) (*model.Admin, error) {
	path := fmt.Sprintf("/api/admins/updateAdminDetails/%d", id)
	var updated model.Admin
	if err := c.do(ctx, http.MethodPut, path, admin, &updated); err != nil {
		return nil, fmt.Errorf("updating admin %d: %w", id, err)
	}
	return &updated, nil
}

// GetProfilePicture fetches an admin's profile picture bytes and MIME type.
// Returns nil data when no picture is set.
func (c *Client) GetProfilePicture(ctx context.Context, id int64) ([]byte, string, error) {
	path := fmt.Sprintf("/api/admins/getProfilePicture/%d", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", nil
	}
	if resp.StatusCode >= 300 {
		return nil, "", apiError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading picture: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// UploadProfilePicture uploads an admin's profile picture as multipart form
// data, the one non-JSON request the backend accepts.
func (c *Client) UploadProfilePicture(ctx context.Context, id int64, data []byte, filename string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("writing form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing form writer: %w", err)
	}

	path := fmt.Sprintf("/api/admins/uploadProfilePicture/%d", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apiError(resp)
	}
	return nil
}

// RemoveProfilePicture deletes an admin's profile picture.
func (c *Client) RemoveProfilePicture(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/admins/removeProfilePicture/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("removing profile picture for admin %d: %w", id, err)
	}
	return nil
}
