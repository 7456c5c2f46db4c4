package adminapi

import (
	"context"
	"fmt"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// ListReviews fetches a page of reviews. Recognised filter: rating.
func (c *Client) ListReviews(ctx context.Context, page, perPage int, filters Filters) (*model.ListPage[model.Review], error) {
	lp, err := ListResource[model.Review](ctx, c, model.SectionReviews, page, perPage, filters)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return lp, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id int) error {
	if _, err := c.Delete(ctx, idPath("/reviews", id)); err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}
