package adminapi

import (
	"context"
	"fmt"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// ListMessages fetches a page of messages. Recognised filters: type, is_read.
func (c *Client) ListMessages(ctx context.Context, page, perPage int, filters Filters) (*model.ListPage[model.Message], error) {
	lp, err := ListResource[model.Message](ctx, c, model.SectionMessages, page, perPage, filters)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return lp, nil
}

// DeleteMessage removes a message.
func (c *Client) DeleteMessage(ctx context.Context, id int) error {
	if _, err := c.Delete(ctx, idPath("/messages", id)); err != nil {
		return fmt.Errorf("delete message %d: %w", id, err)
	}
	return nil
}
