package ui

import (
	"sync"
	"time"

	"github.com/bestxiangest/Goods-Trading-Center/internal/console"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// AlertTTL is how long an alert stays on screen.
const AlertTTL = 3 * time.Second

type alert struct {
	Level   console.AlertLevel
	Message string
	at      time.Time
}

// pageView is what one console session currently shows. Handlers render
// templates from a snapshot of it.
type pageView struct {
	mu sync.Mutex

	section   model.Section
	filters   map[model.Section]map[string]string
	dashboard console.Dashboard
	lists     map[model.Section]console.List
	tree      []model.Category
	options   []model.CategoryOption
	alerts    []alert
	charts    map[string]*chart
	now       func() time.Time
}

func newPageView() *pageView {
	return &pageView{
		section: model.SectionDashboard,
		filters: make(map[model.Section]map[string]string),
		lists:   make(map[model.Section]console.List),
		charts:  make(map[string]*chart),
		now:     time.Now,
	}
}

// SetFilter stores the value of a list filter control.
func (v *pageView) SetFilter(section model.Section, name, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	f, ok := v.filters[section]
	if !ok {
		f = make(map[string]string)
		v.filters[section] = f
	}
	f[name] = value
}

func (v *pageView) FilterValue(section model.Section, name string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters[section][name]
}

func (v *pageView) ShowSection(section model.Section) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.section = section
}

func (v *pageView) RenderDashboard(d console.Dashboard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dashboard = d
}

func (v *pageView) DrawChart(canvas string, s console.Series) console.Chart {
	v.mu.Lock()
	defer v.mu.Unlock()
	c := &chart{view: v, canvas: canvas, series: s}
	v.charts[canvas] = c
	return c
}

func (v *pageView) RenderList(l console.List) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lists[l.Section] = l
}

func (v *pageView) RenderCategories(tree []model.Category) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tree = tree
}

func (v *pageView) SetCategoryOptions(opts []model.CategoryOption) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.options = opts
}

func (v *pageView) Alert(level console.AlertLevel, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, alert{Level: level, Message: message, at: v.now()})
}

// snapshot is an immutable copy of a pageView for rendering.
type snapshot struct {
	Section         model.Section
	Filters         map[string]string
	Dashboard       console.Dashboard
	List            console.List
	Categories      []model.Category
	CategoryOptions []model.CategoryOption
	Alerts          []alert
	Charts          map[string]*console.Series
}

// snapshot copies the state of the shown section and drops expired alerts.
func (v *pageView) snapshot() snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	live := v.alerts[:0]
	for _, a := range v.alerts {
		if now.Sub(a.at) < AlertTTL {
			live = append(live, a)
		}
	}
	v.alerts = live

	s := snapshot{
		Section:         v.section,
		Filters:         make(map[string]string),
		Dashboard:       v.dashboard,
		List:            v.lists[v.section],
		Categories:      v.tree,
		CategoryOptions: v.options,
		Alerts:          append([]alert(nil), live...),
		Charts:          make(map[string]*console.Series, len(v.charts)),
	}
	for name, value := range v.filters[v.section] {
		s.Filters[name] = value
	}
	for canvas, c := range v.charts {
		series := c.series
		s.Charts[canvas] = &series
	}
	return s
}

// chart is a series bound to a dashboard canvas. It is drawn as inline SVG.
type chart struct {
	view   *pageView
	canvas string
	series console.Series
}

// Destroy unbinds the chart from its canvas if it is still the one drawn there.
func (c *chart) Destroy() {
	c.view.mu.Lock()
	defer c.view.mu.Unlock()
	if c.view.charts[c.canvas] == c {
		delete(c.view.charts, c.canvas)
	}
}
