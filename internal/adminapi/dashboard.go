package adminapi

import (
	"context"
	"fmt"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// Today returns the day's new users, items, requests and reviews.
func (c *Client) Today(ctx context.Context) (*model.TodayStats, error) {
	s, err := getData[model.TodayStats](ctx, c, "/today")
	if err != nil {
		return nil, fmt.Errorf("today stats: %w", err)
	}
	return s, nil
}

// RegistrationTrend returns daily registration counts.
func (c *Client) RegistrationTrend(ctx context.Context) ([]model.TrendPoint, error) {
	pts, err := getData[[]model.TrendPoint](ctx, c, "/user-registration-trend")
	if err != nil {
		return nil, fmt.Errorf("registration trend: %w", err)
	}
	return *pts, nil
}

// CategoryDistribution returns the number of items per category.
func (c *Client) CategoryDistribution(ctx context.Context) ([]model.CategoryShare, error) {
	shares, err := getData[[]model.CategoryShare](ctx, c, "/item-category-distribution")
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	return *shares, nil
}
