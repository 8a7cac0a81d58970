package backend

import (
	"context"
	"fmt"

	"github.com/citu-lostit/lostit/internal/model"
)

// ListCategories fetches the read-only category reference list.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/api/categories/getAllCategories", &categories); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// ListLocations fetches the read-only location reference list.
func (c *Client) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := c.get(ctx, "/api/locations/getAllLocations", &locations); err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}
