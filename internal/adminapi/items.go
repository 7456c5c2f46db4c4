package adminapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// ListItems fetches a page of items. Recognised filters: search, status, category_id.
func (c *Client) ListItems(ctx context.Context, page, perPage int, filters Filters) (*model.ListPage[model.Item], error) {
	lp, err := ListResource[model.Item](ctx, c, model.SectionItems, page, perPage, filters)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return lp, nil
}

// GetItem fetches one item with its images.
func (c *Client) GetItem(ctx context.Context, id int) (*model.Item, error) {
	it, err := getData[model.Item](ctx, c, idPath("/items", id))
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return it, nil
}

// CreateItem validates in and lists a new item. Images must be uploaded first.
func (c *Client) CreateItem(ctx context.Context, in model.ItemInput) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	it, err := sendData[model.Item](ctx, c, http.MethodPost, "/items", in)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// UpdateItem replaces the mutable fields and image list of an item.
func (c *Client) UpdateItem(ctx context.Context, id int, in model.ItemInput) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	it, err := sendData[model.Item](ctx, c, http.MethodPut, idPath("/items", id), in)
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return it, nil
}

// DeleteItem removes an item. The backend refuses with 400 while requests
// for the item are pending; that refusal is reported as KindPendingRequests.
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	_, err := c.Delete(ctx, idPath("/items", id))
	if err == nil {
		return nil
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == model.KindHTTP && apiErr.Status == http.StatusBadRequest {
		apiErr.Kind = model.KindPendingRequests
	}
	return fmt.Errorf("delete item %d: %w", id, err)
}

// CountItems returns the number of listed items.
func (c *Client) CountItems(ctx context.Context) (int, error) {
	return c.count(ctx, "/items/count")
}
