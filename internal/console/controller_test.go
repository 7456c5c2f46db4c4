package console

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/pagination"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

type fakeChart struct {
	canvas    string
	destroyed bool
}

func (f *fakeChart) Destroy() { f.destroyed = true }

// fakeView records everything the controller hands it.
type fakeView struct {
	mu      sync.Mutex
	filters map[string]string
	shown   []model.Section
	lists   []List
	trees   [][]model.Category
	options []model.CategoryOption
	alerts  []string
	dash    *Dashboard
	charts  []*fakeChart
}

func newFakeView() *fakeView {
	return &fakeView{filters: make(map[string]string)}
}

func (v *fakeView) FilterValue(_ model.Section, name string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters[name]
}

func (v *fakeView) setFilter(name, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters[name] = value
}

func (v *fakeView) ShowSection(s model.Section) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = append(v.shown, s)
}

func (v *fakeView) RenderDashboard(d Dashboard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dash = &d
}

func (v *fakeView) DrawChart(canvas string, _ Series) Chart {
	v.mu.Lock()
	defer v.mu.Unlock()
	ch := &fakeChart{canvas: canvas}
	v.charts = append(v.charts, ch)
	return ch
}

func (v *fakeView) RenderList(l List) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lists = append(v.lists, l)
}

func (v *fakeView) RenderCategories(tree []model.Category) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.trees = append(v.trees, tree)
}

func (v *fakeView) SetCategoryOptions(opts []model.CategoryOption) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.options = opts
}

func (v *fakeView) Alert(level AlertLevel, msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, string(level)+": "+msg)
}

// backend is a fake trading-platform API that records list queries.
type backend struct {
	mu      sync.Mutex
	queries map[string][]string
	handler func(w http.ResponseWriter, r *http.Request) bool
}

func (b *backend) record(path, query string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries[path] = append(b.queries[path], query)
}

func (b *backend) calls(path string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.queries[path]...)
}

func reply(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	json.NewEncoder(w).Encode(model.Envelope{Code: 200, Message: "ok", Data: raw})
}

func newController(t *testing.T, b *backend) (*Controller, *fakeView) {
	t.Helper()
	if b.queries == nil {
		b.queries = make(map[string][]string)
	}
	ts := httptest.NewServer(http.StripPrefix("/api/v1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.record(r.URL.Path, r.URL.RawQuery)
		if b.handler != nil && b.handler(w, r) {
			return
		}
		switch r.URL.Path {
		case "/categories/tree":
			reply(w, []model.Category{{CategoryID: 1, Name: "图书", Children: []model.Category{{CategoryID: 2, Name: "教材"}}}})
		case "/users/count", "/items/count", "/requests/count":
			reply(w, model.Count{Count: 3})
		case "/today":
			reply(w, model.TodayStats{NewItems: 2})
		case "/user-registration-trend":
			reply(w, []model.TrendPoint{{Date: "2024-05-01", Count: 1}})
		case "/item-category-distribution":
			reply(w, []model.CategoryShare{{Category: "图书", Count: 4}})
		case "/reviews":
			reply(w, map[string]any{"reviews": []model.Review{{ReviewID: 1}}, "pagination": model.Pagination{Page: 1, Pages: 1}})
		default:
			reply(w, map[string]any{"items": []any{}, "pagination": model.Pagination{Page: 1, Pages: 0}})
		}
	})))
	t.Cleanup(ts.Close)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	view := newFakeView()
	api := adminapi.NewClient(ts.URL+"/api/v1", logger)
	return NewController(api, view, logger), view
}

func TestSwitchToItemsTwice(t *testing.T) {
	b := &backend{}
	c, view := newController(t, b)
	ctx := context.Background()

	require.NoError(t, c.SwitchTo(ctx, model.SectionItems))
	require.NoError(t, c.ChangePage(ctx, model.SectionItems, 4))
	require.NoError(t, c.SwitchTo(ctx, model.SectionItems))

	items := b.calls("/items")
	require.Len(t, items, 3)
	assert.Equal(t, "page=1&per_page=10", items[0])
	assert.Equal(t, "page=1&per_page=10", items[2])

	ls, _ := c.State().List(model.SectionItems)
	assert.Equal(t, 1, ls.Page)
	assert.Equal(t, model.SectionItems, c.State().Current())
	assert.Equal(t, []model.Section{model.SectionItems, model.SectionItems}, view.shown)

	// Switching to items also refreshes the category filter options.
	assert.Len(t, b.calls("/categories/tree"), 2)
	require.Len(t, view.options, 2)
	assert.Equal(t, "图书 > 教材", view.options[1].Label)
	assert.Empty(t, view.trees)
}

func TestOpenAtLoadsOnePage(t *testing.T) {
	b := &backend{}
	c, view := newController(t, b)
	ctx := context.Background()

	require.NoError(t, c.OpenAt(ctx, model.SectionItems, 3))
	assert.Equal(t, []string{"page=3&per_page=10"}, b.calls("/items"))
	assert.Len(t, b.calls("/categories/tree"), 1)
	assert.Equal(t, []model.Section{model.SectionItems}, view.shown)
	assert.Equal(t, model.SectionItems, c.State().Current())
	ls, _ := c.State().List(model.SectionItems)
	assert.Equal(t, 3, ls.Page)

	// Sections without pages ignore the page.
	require.NoError(t, c.OpenAt(ctx, model.SectionCategories, 4))
	assert.Len(t, b.calls("/categories/tree"), 2)
	assert.Len(t, view.trees, 1)
}

func TestChangePageUsesLiveFilters(t *testing.T) {
	b := &backend{}
	c, view := newController(t, b)
	view.setFilter("status", "available")
	view.setFilter("category_id", "all")

	require.NoError(t, c.ChangePage(context.Background(), model.SectionItems, 3))

	items := b.calls("/items")
	require.Len(t, items, 1)
	assert.Equal(t, "page=3&per_page=10&status=available", items[0])
	assert.NotContains(t, items[0], "search")
	assert.NotContains(t, items[0], "category_id")
}

func TestApplyFiltersResetsPage(t *testing.T) {
	b := &backend{}
	c, view := newController(t, b)
	ctx := context.Background()

	require.NoError(t, c.ChangePage(ctx, model.SectionUsers, 5))
	view.setFilter("search", "bob")
	view.setFilter("role", "admin")
	require.NoError(t, c.ApplyFilters(ctx, model.SectionUsers))

	users := b.calls("/users")
	require.Len(t, users, 2)
	assert.Equal(t, "page=1&per_page=10&search=bob&role=admin", users[1])
	ls, _ := c.State().List(model.SectionUsers)
	assert.Equal(t, 1, ls.Page)
}

func TestListRendersPagination(t *testing.T) {
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path != "/messages" {
			return false
		}
		reply(w, map[string]any{
			"items":      []model.Message{{MessageID: 1}, {MessageID: 2}},
			"pagination": model.Pagination{Page: 5, Pages: 10},
		})
		return true
	}}
	c, view := newController(t, b)

	require.NoError(t, c.ChangePage(context.Background(), model.SectionMessages, 5))
	require.Len(t, view.lists, 1)
	l := view.lists[0]
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "‹ 3 4 [5] 6 7 ›", pagination.String(l.Links))
}

func TestListFailureRendersEmpty(t *testing.T) {
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path != "/reviews" {
			return false
		}
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "boom")
		return true
	}}
	c, view := newController(t, b)

	err := c.SwitchTo(context.Background(), model.SectionReviews)
	require.Error(t, err)
	require.Len(t, view.lists, 1)
	assert.Zero(t, view.lists[0].Len())
	require.Len(t, view.alerts, 1)
	assert.Contains(t, view.alerts[0], "HTTP error! status: 500")
}

func TestListFailureKeepsServerMessage(t *testing.T) {
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		switch r.URL.Path {
		case "/users":
			w.WriteHeader(http.StatusForbidden)
			io.WriteString(w, `{"message":"需要管理员权限"}`)
		case "/requests":
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"message":"不能请求自己发布的物品"}`)
		default:
			return false
		}
		return true
	}}
	c, view := newController(t, b)
	ctx := context.Background()

	require.Error(t, c.SwitchTo(ctx, model.SectionUsers))
	require.Error(t, c.SwitchTo(ctx, model.SectionRequests))
	assert.Equal(t, []string{
		"danger: 加载用户管理失败: 需要管理员权限",
		"danger: 加载交易请求失败: 不能请求自己发布的物品",
	}, view.alerts)
}

func TestSwitchToNameUnknown(t *testing.T) {
	b := &backend{}
	c, view := newController(t, b)

	require.NoError(t, c.SwitchToName(context.Background(), "settings"))
	assert.Empty(t, view.shown)
	assert.Equal(t, model.SectionDashboard, c.State().Current())
}

func TestSwitchToCategoriesCachesTree(t *testing.T) {
	b := &backend{}
	c, view := newController(t, b)

	require.NoError(t, c.SwitchToName(context.Background(), "categories"))
	require.Len(t, view.trees, 1)
	assert.Equal(t, "图书", view.trees[0][0].Name)
	assert.Len(t, c.Categories(), 1)
}

func TestStaleResponseDropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path != "/requests" {
			return false
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			close(started)
			<-release
		}
		reply(w, map[string]any{
			"items":      []model.TradeRequest{{RequestID: page}},
			"pagination": model.Pagination{Page: page, Pages: 2},
		})
		return true
	}}
	c, view := newController(t, b)
	ctx := context.Background()

	done := make(chan error)
	go func() { done <- c.ChangePage(ctx, model.SectionRequests, 1) }()
	<-started
	require.NoError(t, c.ChangePage(ctx, model.SectionRequests, 2))
	close(release)
	require.NoError(t, <-done)

	require.Len(t, view.lists, 1)
	assert.Equal(t, "‹ 1 [2]", pagination.String(view.lists[0].Links))
	ls, _ := c.State().List(model.SectionRequests)
	assert.Equal(t, 2, ls.Page)
	assert.Equal(t, uint64(2), ls.Generation)
}

func TestDashboard(t *testing.T) {
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path == "/items/count" {
			w.WriteHeader(http.StatusInternalServerError)
			return true
		}
		return false
	}}
	c, view := newController(t, b)
	ctx := context.Background()

	require.NoError(t, c.SwitchTo(ctx, model.SectionDashboard))
	require.NotNil(t, view.dash)
	assert.Equal(t, model.DashboardCounts{TotalUsers: 3, TotalItems: 0, PendingRequests: 3, TodayNewItems: 2}, view.dash.Counts)
	assert.Equal(t, []string{"status=pending"}, b.calls("/requests/count"))
	require.Len(t, view.charts, 2)

	// Redrawing releases the previous charts before binding new ones.
	require.NoError(t, c.Refresh(ctx, model.SectionDashboard))
	require.Len(t, view.charts, 4)
	assert.True(t, view.charts[0].destroyed)
	assert.True(t, view.charts[1].destroyed)
	assert.False(t, view.charts[2].destroyed)
	assert.False(t, view.charts[3].destroyed)
}

func TestDeleteItemPendingRequests(t *testing.T) {
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"message":"bad"}`)
			return true
		}
		return false
	}}
	c, view := newController(t, b)

	err := c.Delete(context.Background(), model.SectionItems, 7)
	require.Error(t, err)
	assert.Equal(t, []string{"danger: 该物品还有待处理的请求，无法删除"}, view.alerts)
	assert.Empty(t, b.calls("/items"))
}

func TestDeleteUserMessages(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"message":"不能删除管理员账户"}`, "danger: 不能删除管理员用户"},
		{`{"message":"用户存在未完成的交易"}`, "danger: 该用户还有未完成的交易，无法删除"},
		{`{"message":"不能删除自己"}`, "danger: 不能删除自己的账户"},
		{`{"message":"数据库错误"}`, "danger: 数据库错误"},
	}
	for _, tt := range tests {
		b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusBadRequest)
				io.WriteString(w, tt.body)
				return true
			}
			return false
		}}
		c, view := newController(t, b)
		_ = c.Delete(context.Background(), model.SectionUsers, 3)
		assert.Equal(t, []string{tt.want}, view.alerts, tt.body)
	}
}

func TestDeleteSuccessRefreshes(t *testing.T) {
	b := &backend{handler: func(w http.ResponseWriter, r *http.Request) bool {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return true
		}
		return false
	}}
	c, view := newController(t, b)

	require.NoError(t, c.Delete(context.Background(), model.SectionMessages, 9))
	assert.Equal(t, []string{"success: 消息已删除"}, view.alerts)
	assert.Equal(t, []string{"page=1&per_page=10"}, b.calls("/messages"))
}

func TestCharts(t *testing.T) {
	charts := NewCharts()
	a, b := &fakeChart{}, &fakeChart{}

	charts.Replace("c", a)
	charts.Replace("c", b)
	assert.True(t, a.destroyed)
	assert.False(t, b.destroyed)

	got, ok := charts.Get("c")
	require.True(t, ok)
	assert.Same(t, b, got.(*fakeChart))

	charts.Release()
	assert.True(t, b.destroyed)
	_, ok = charts.Get("c")
	assert.False(t, ok)
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(0)
	assert.Equal(t, DefaultPageSize, s.PageSize())
	assert.Equal(t, model.SectionDashboard, s.Current())
	_, ok := s.List(model.SectionDashboard)
	assert.False(t, ok)
	ls, ok := s.List(model.SectionMessages)
	require.True(t, ok)
	assert.Equal(t, 1, ls.Page)
}
