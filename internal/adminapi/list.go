package adminapi

import (
	"context"
	"fmt"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// ListResource fetches one page of a paginated resource list.
func ListResource[T any](ctx context.Context, c *Client, section model.Section, page, perPage int, filters Filters) (*model.ListPage[T], error) {
	res, ok := model.ResourceFor(section)
	if !ok || !res.Paginated {
		return nil, fmt.Errorf("%s is not a paginated resource", section)
	}

	resp, err := c.Get(ctx, ListPath(res.Path, page, perPage, filters))
	if err != nil {
		return nil, err
	}

	lp, err := model.DecodeListPage[T](resp.Data, res.ListKey)
	if err != nil {
		return nil, &model.APIError{
			Kind:    model.KindDecode,
			Status:  resp.Status,
			Message: fmt.Sprintf("parse %s list: %v", section, err),
			Err:     err,
		}
	}
	return lp, nil
}

func getData[T any](ctx context.Context, c *Client, path string) (*T, error) {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var v T
	if err := resp.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// sendData performs a write and decodes the returned record when there is one.
// A 204 or an envelope without data yields a nil record.
func sendData[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if resp.NoContent || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, nil
	}
	var v T
	if err := resp.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) count(ctx context.Context, path string) (int, error) {
	n, err := getData[model.Count](ctx, c, path)
	if err != nil {
		return 0, err
	}
	return n.Count, nil
}
