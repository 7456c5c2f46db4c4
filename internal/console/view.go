package console

import (
	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/pagination"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// AlertLevel is the severity of an operator notification.
type AlertLevel string

const (
	AlertSuccess AlertLevel = "success"
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// List is the view model of one loaded resource page. Only the rows
// field matching Section is populated.
type List struct {
	Section    model.Section
	Users      []model.User
	Items      []model.Item
	Requests   []model.TradeRequest
	Reviews    []model.Review
	Messages   []model.Message
	Pagination model.Pagination
	Links      []pagination.Link
}

// Len returns the number of rows in the list.
func (l *List) Len() int {
	switch l.Section {
	case model.SectionUsers:
		return len(l.Users)
	case model.SectionItems:
		return len(l.Items)
	case model.SectionRequests:
		return len(l.Requests)
	case model.SectionReviews:
		return len(l.Reviews)
	case model.SectionMessages:
		return len(l.Messages)
	}
	return 0
}

// Dashboard is the view model of the dashboard counters.
type Dashboard struct {
	Counts model.DashboardCounts
}

// Series is the data bound to one chart.
type Series struct {
	Title  string
	Kind   string // "line" or "doughnut"
	Labels []string
	Values []int
}

// View renders what the controller loads. Implementations also act as the
// filter source: list loads read the current filter values through it.
// Methods may be called from more than one goroutine.
type View interface {
	adminapi.FilterSource

	// ShowSection hides every section but the given one and marks it active in navigation.
	ShowSection(section model.Section)
	RenderDashboard(d Dashboard)
	// DrawChart binds series to the named canvas and returns a handle that releases it.
	DrawChart(canvas string, s Series) Chart
	RenderList(l List)
	RenderCategories(tree []model.Category)
	SetCategoryOptions(opts []model.CategoryOption)
	Alert(level AlertLevel, message string)
}
