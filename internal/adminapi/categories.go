package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// CategoryTree fetches every root category with its nested children.
func (c *Client) CategoryTree(ctx context.Context) ([]model.Category, error) {
	tree, err := getData[[]model.Category](ctx, c, "/categories/tree")
	if err != nil {
		return nil, fmt.Errorf("load category tree: %w", err)
	}
	return *tree, nil
}

// CreateCategory adds a category, under in.ParentID when set.
func (c *Client) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cat, err := sendData[model.Category](ctx, c, http.MethodPost, "/categories", in)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

// UpdateCategory renames or re-parents a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, in model.CategoryInput) (*model.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cat, err := sendData[model.Category](ctx, c, http.MethodPut, idPath("/categories", id), in)
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return cat, nil
}

// DeleteCategory removes an empty leaf category.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	if _, err := c.Delete(ctx, idPath("/categories", id)); err != nil {
		classifyRejection(err, model.KindHasChildren, model.KindHasItems)
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
