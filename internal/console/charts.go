package console

import "sync"

// Canvas names of the dashboard charts.
const (
	CanvasUserTrend   = "userChart"
	CanvasCategoryPie = "categoryChart"
)

// Chart is a drawn chart bound to a canvas.
type Chart interface {
	Destroy()
}

// Charts tracks the chart bound to each canvas. A canvas holds at most one
// chart; binding a new one destroys its predecessor first.
type Charts struct {
	mu    sync.Mutex
	slots map[string]Chart
}

// NewCharts returns an empty chart registry.
func NewCharts() *Charts {
	return &Charts{slots: make(map[string]Chart)}
}

// Replace destroys the chart on canvas, if any, and binds ch in its place.
// A nil ch leaves the canvas empty.
func (c *Charts) Replace(canvas string, ch Chart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.slots[canvas]; ok && old != nil {
		old.Destroy()
	}
	if ch == nil {
		delete(c.slots, canvas)
		return
	}
	c.slots[canvas] = ch
}

// Get returns the chart bound to canvas.
func (c *Charts) Get(canvas string) (Chart, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.slots[canvas]
	return ch, ok
}

// Release destroys every bound chart.
func (c *Charts) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for canvas, ch := range c.slots {
		ch.Destroy()
		delete(c.slots, canvas)
	}
}
