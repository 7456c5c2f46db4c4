package adminapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// ListRequests fetches a page of trade requests. Recognised filter: status.
func (c *Client) ListRequests(ctx context.Context, page, perPage int, filters Filters) (*model.ListPage[model.TradeRequest], error) {
	lp, err := ListResource[model.TradeRequest](ctx, c, model.SectionRequests, page, perPage, filters)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return lp, nil
}

// GetRequest fetches one trade request with its item.
func (c *Client) GetRequest(ctx context.Context, id int) (*model.TradeRequest, error) {
	r, err := getData[model.TradeRequest](ctx, c, idPath("/requests", id))
	if err != nil {
		return nil, fmt.Errorf("get request %d: %w", id, err)
	}
	return r, nil
}

// CreateRequestAdmin records a trade request on behalf of a user.
func (c *Client) CreateRequestAdmin(ctx context.Context, in model.NewTradeRequest) (*model.TradeRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r, err := sendData[model.TradeRequest](ctx, c, http.MethodPost, "/requests/admin", in)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return r, nil
}

// UpdateRequestAdmin changes the message and/or status of a request.
func (c *Client) UpdateRequestAdmin(ctx context.Context, id int, in model.TradeRequestUpdate) (*model.TradeRequest, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	r, err := sendData[model.TradeRequest](ctx, c, http.MethodPut, idPath("/requests", id)+"/admin", in)
	if err != nil {
		return nil, fmt.Errorf("update request %d: %w", id, err)
	}
	return r, nil
}

// ChangeRequestStatus is UpdateRequestAdmin with only a status.
func (c *Client) ChangeRequestStatus(ctx context.Context, id int, status model.RequestStatus) (*model.TradeRequest, error) {
	return c.UpdateRequestAdmin(ctx, id, model.TradeRequestUpdate{Status: status})
}

// DeleteRequest removes a trade request.
func (c *Client) DeleteRequest(ctx context.Context, id int) error {
	if _, err := c.Delete(ctx, idPath("/requests", id)); err != nil {
		return fmt.Errorf("delete request %d: %w", id, err)
	}
	return nil
}

// CountRequests returns the number of requests, optionally only those in status.
func (c *Client) CountRequests(ctx context.Context, status model.RequestStatus) (int, error) {
	path := "/requests/count"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	return c.count(ctx, path)
}
