package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/citu-lostit/lostit/internal/model"
)

// ListClaims fetches the full claim log.
func (c *Client) ListClaims(ctx context.Context) ([]model.Claim, error) {
	var claims []model.Claim
	if err := c.get(ctx, "/api/claims/getAllClaims", &claims); err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	return claims, nil
}

// CreateClaim records a claim against the given item. The backend keeps the
// item's status unchanged; status is edited separately on the item itself.
func (c *Client) CreateClaim(ctx context.Context, itemID int64, claim *model.Claim) error {
	path := fmt.Sprintf("/api/claims/createClaim/%d", itemID)
	if err := c.do(ctx, http.MethodPost, path, claim, nil); err != nil {
		return fmt.Errorf("creating claim for item %d: %w", itemID, err)
	}
	return nil
}

// DeleteClaim removes a claim record.
func (c *Client) DeleteClaim(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/claims/deleteClaim/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("deleting claim %d: %w", id, err)
	}
	return nil
}
