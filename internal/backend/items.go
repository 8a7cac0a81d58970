package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/citu-lostit/lostit/internal/model"
)

// ListItems fetches the full item collection. There is no server-side
// pagination or filtering; pages filter the list in memory.
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.get(ctx, "/api/items/getAllItems", &items); err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// AddItem creates an inventory item.
func (c *Client) AddItem(ctx context.Context, item *model.Item) error {
	if err := c.do(ctx, http.MethodPost, "/api/items/addItem", item, nil); err != nil {
		return fmt.Errorf("adding item: %w", err)
	}
	return nil
}

// UpdateItem replaces an item's details. The full record is sent; the
// backend applies last-write-wins.
func (c *Client) UpdateItem(ctx context.Context, id int64, item *model.Item) error {
	path := fmt.Sprintf("/api/items/updateItemDetails?id=%d", id)
	if err := c.do(ctx, http.MethodPut, path, item, nil); err != nil {
		return fmt.Errorf("updating item %d: %w", id, err)
	}
	return nil
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/items/deleteItem/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	return nil
}

// TransferToInventory promotes a reported item into normal inventory.
func (c *Client) TransferToInventory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/items/transferToInventory/%d", id)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("transferring item %d: %w", id, err)
	}
	return nil
}

// AddReportedItem submits a public lost-item report. The item enters the
// review queue with status Reported until an admin accepts or declines it.
func (c *Client) AddReportedItem(ctx context.Context, item *model.Item) error {
	if err := c.do(ctx, http.MethodPost, "/api/items/addReportedItem", item, nil); err != nil {
		return fmt.Errorf("adding reported item: %w", err)
	}
	return nil
}
