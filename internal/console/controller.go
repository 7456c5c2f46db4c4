// Package console holds the admin console's navigation state machine: which
// section is shown, which page each list is on, and how loads are dispatched
// to the API and their results handed to a View.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/pagination"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// Controller coordinates section switching, paging and filtering.
type Controller struct {
	api    *adminapi.Client
	view   View
	state  *State
	charts *Charts
	logger *slog.Logger

	mu         sync.Mutex
	categories []model.Category
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the rows requested per page.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		c.state = NewState(n)
	}
}

// NewController creates a controller showing the dashboard. Nothing is
// loaded until the first SwitchTo.
func NewController(api *adminapi.Client, view View, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		view:   view,
		state:  NewState(DefaultPageSize),
		charts: NewCharts(),
		logger: logger.With("component", "console"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the controller's navigation state.
func (c *Controller) State() *State {
	return c.state
}

// Charts returns the controller's chart registry.
func (c *Controller) Charts() *Charts {
	return c.charts
}

// Categories returns the most recently loaded category tree.
func (c *Controller) Categories() []model.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.categories
}

// SwitchToName is SwitchTo for a section given by name. Unknown names are ignored.
func (c *Controller) SwitchToName(ctx context.Context, name string) error {
	section, ok := model.ParseSection(name)
	if !ok {
		c.logger.Debug("ignoring unknown section", "section", name)
		return nil
	}
	return c.SwitchTo(ctx, section)
}

// SwitchTo shows section, rewinds its list to page 1 and loads it.
func (c *Controller) SwitchTo(ctx context.Context, section model.Section) error {
	c.view.ShowSection(section)
	c.state.activate(section)
	return c.load(ctx, section, 1)
}

// OpenAt shows section and loads it at page in one pass. It is SwitchTo for
// a deep link; sections without pages ignore page.
func (c *Controller) OpenAt(ctx context.Context, section model.Section, page int) error {
	res, ok := model.ResourceFor(section)
	if !ok || !res.Paginated || page < 1 {
		page = 1
	}
	c.view.ShowSection(section)
	c.state.activate(section)
	return c.load(ctx, section, page)
}

// ChangePage loads page of section using the filters currently set in the view.
func (c *Controller) ChangePage(ctx context.Context, section model.Section, page int) error {
	res, ok := model.ResourceFor(section)
	if !ok || !res.Paginated {
		return fmt.Errorf("section %s has no pages", section)
	}
	return c.loadList(ctx, section, page)
}

// ApplyFilters reloads section from page 1 with the view's current filters.
func (c *Controller) ApplyFilters(ctx context.Context, section model.Section) error {
	res, ok := model.ResourceFor(section)
	if !ok || !res.Paginated {
		return fmt.Errorf("section %s has no filters", section)
	}
	return c.loadList(ctx, section, 1)
}

// Refresh reloads section from page 1.
func (c *Controller) Refresh(ctx context.Context, section model.Section) error {
	return c.load(ctx, section, 1)
}

func (c *Controller) load(ctx context.Context, section model.Section, page int) error {
	switch section {
	case model.SectionDashboard:
		return c.loadDashboard(ctx)
	case model.SectionCategories:
		return c.loadCategories(ctx)
	case model.SectionItems:
		var g errgroup.Group
		g.Go(func() error { return c.loadList(ctx, section, page) })
		g.Go(func() error { return c.loadCategories(ctx) })
		return g.Wait()
	}
	if !section.IsResource() {
		return fmt.Errorf("unknown section %q", section)
	}
	return c.loadList(ctx, section, page)
}

func (c *Controller) loadList(ctx context.Context, section model.Section, page int) error {
	res, _ := model.ResourceFor(section)
	gen := c.state.begin(section, page)
	filters := adminapi.FiltersFor(res, c.view)

	list, err := c.fetchList(ctx, section, page, filters)
	if !c.state.latest(section, gen) {
		c.logger.Debug("dropping stale list response", "section", section, "page", page, "generation", gen)
		return nil
	}
	if err != nil {
		c.logger.Error("load list failed", "section", section, "page", page, "error", err)
		c.view.RenderList(List{Section: section})
		c.view.Alert(AlertDanger, "加载"+section.Title()+"失败: "+friendly(err))
		return err
	}

	list.Links = pagination.Plan(section, list.Pagination.CurrentPage(), list.Pagination.Pages)
	c.view.RenderList(*list)
	return nil
}

func (c *Controller) fetchList(ctx context.Context, section model.Section, page int, filters adminapi.Filters) (*List, error) {
	size := c.state.PageSize()
	l := &List{Section: section}
	switch section {
	case model.SectionUsers:
		lp, err := c.api.ListUsers(ctx, page, size, filters)
		if err != nil {
			return nil, err
		}
		l.Users, l.Pagination = lp.Rows, lp.Pagination
	case model.SectionItems:
		lp, err := c.api.ListItems(ctx, page, size, filters)
		if err != nil {
			return nil, err
		}
		l.Items, l.Pagination = lp.Rows, lp.Pagination
	case model.SectionRequests:
		lp, err := c.api.ListRequests(ctx, page, size, filters)
		if err != nil {
			return nil, err
		}
		l.Requests, l.Pagination = lp.Rows, lp.Pagination
	case model.SectionReviews:
		lp, err := c.api.ListReviews(ctx, page, size, filters)
		if err != nil {
			return nil, err
		}
		l.Reviews, l.Pagination = lp.Rows, lp.Pagination
	case model.SectionMessages:
		lp, err := c.api.ListMessages(ctx, page, size, filters)
		if err != nil {
			return nil, err
		}
		l.Messages, l.Pagination = lp.Rows, lp.Pagination
	default:
		return nil, fmt.Errorf("section %s is not a list", section)
	}
	return l, nil
}

// loadCategories fetches the tree, refreshes the category filter options and,
// when the categories section is showing, renders the tree.
func (c *Controller) loadCategories(ctx context.Context) error {
	gen := c.state.begin(model.SectionCategories, 1)
	tree, err := c.api.CategoryTree(ctx)
	if !c.state.latest(model.SectionCategories, gen) {
		c.logger.Debug("dropping stale category tree", "generation", gen)
		return nil
	}
	showing := c.state.Current() == model.SectionCategories
	if err != nil {
		c.logger.Error("load categories failed", "error", err)
		if showing {
			c.view.RenderCategories(nil)
			c.view.Alert(AlertDanger, "加载分类失败: "+friendly(err))
		}
		return err
	}

	c.mu.Lock()
	c.categories = tree
	c.mu.Unlock()

	if showing {
		c.view.RenderCategories(tree)
	}
	c.view.SetCategoryOptions(model.FlattenCategories(tree))
	return nil
}

// loadDashboard fetches the four headline counts in parallel and redraws
// both charts. A failing count shows as 0; chart failures leave the canvas empty.
func (c *Controller) loadDashboard(ctx context.Context) error {
	var counts model.DashboardCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts.TotalUsers = c.countOrZero(gctx, "users", c.api.CountUsers)
		return nil
	})
	g.Go(func() error {
		counts.TotalItems = c.countOrZero(gctx, "items", c.api.CountItems)
		return nil
	})
	g.Go(func() error {
		counts.PendingRequests = c.countOrZero(gctx, "pending requests", func(ctx context.Context) (int, error) {
			return c.api.CountRequests(ctx, model.RequestPending)
		})
		return nil
	})
	g.Go(func() error {
		counts.TodayNewItems = c.countOrZero(gctx, "today", func(ctx context.Context) (int, error) {
			today, err := c.api.Today(ctx)
			if err != nil {
				return 0, err
			}
			return today.NewItems, nil
		})
		return nil
	})

	var trend []model.TrendPoint
	var shares []model.CategoryShare
	var trendErr, sharesErr error
	g.Go(func() error {
		trend, trendErr = c.api.RegistrationTrend(gctx)
		return nil
	})
	g.Go(func() error {
		shares, sharesErr = c.api.CategoryDistribution(gctx)
		return nil
	})
	g.Wait()

	c.view.RenderDashboard(Dashboard{Counts: counts})
	c.drawTrend(trend, trendErr)
	c.drawDistribution(shares, sharesErr)
	return errors.Join(trendErr, sharesErr)
}

func (c *Controller) countOrZero(ctx context.Context, what string, fetch func(context.Context) (int, error)) int {
	n, err := fetch(ctx)
	if err != nil {
		c.logger.Error("load dashboard count failed", "count", what, "error", err)
		return 0
	}
	return n
}

func (c *Controller) drawTrend(points []model.TrendPoint, err error) {
	if err != nil {
		c.logger.Error("load registration trend failed", "error", err)
		c.charts.Replace(CanvasUserTrend, nil)
		return
	}
	s := Series{Title: "新注册用户", Kind: "line"}
	for _, p := range points {
		s.Labels = append(s.Labels, p.Date)
		s.Values = append(s.Values, p.Count)
	}
	c.charts.Replace(CanvasUserTrend, nil)
	c.charts.Replace(CanvasUserTrend, c.view.DrawChart(CanvasUserTrend, s))
}

func (c *Controller) drawDistribution(shares []model.CategoryShare, err error) {
	if err != nil {
		c.logger.Error("load category distribution failed", "error", err)
		c.charts.Replace(CanvasCategoryPie, nil)
		return
	}
	s := Series{Title: "物品分类分布", Kind: "doughnut"}
	for _, sh := range shares {
		s.Labels = append(s.Labels, sh.Category)
		s.Values = append(s.Values, sh.Count)
	}
	c.charts.Replace(CanvasCategoryPie, nil)
	c.charts.Replace(CanvasCategoryPie, c.view.DrawChart(CanvasCategoryPie, s))
}

// friendly returns the operator-facing text of err.
func friendly(err error) string {
	return model.Describe(err)
}
