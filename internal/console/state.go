package console

import (
	"sync"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// DefaultPageSize is the number of rows requested per list page.
const DefaultPageSize = 10

// ListState is the paging position of one resource list.
type ListState struct {
	Page     int
	PageSize int
	// Generation counts list loads; only the newest load may update the view.
	Generation uint64
}

// State is the console's navigation state: the active section and the
// list state of every resource. It is safe for concurrent use.
type State struct {
	mu       sync.Mutex
	current  model.Section
	lists    map[model.Section]*ListState
	pageSize int
}

// NewState returns a state showing the dashboard, with every list on page 1.
func NewState(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &State{
		current:  model.SectionDashboard,
		lists:    make(map[model.Section]*ListState),
		pageSize: pageSize,
	}
	for _, sec := range model.Sections {
		if sec.IsResource() {
			s.lists[sec] = &ListState{Page: 1, PageSize: pageSize}
		}
	}
	return s
}

// Current returns the active section.
func (s *State) Current() model.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// PageSize returns the session page size.
func (s *State) PageSize() int {
	return s.pageSize
}

// List returns a copy of a resource's list state.
func (s *State) List(section model.Section) (ListState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.lists[section]
	if !ok {
		return ListState{}, false
	}
	return *ls, true
}

// activate makes section current and rewinds its list to page 1.
func (s *State) activate(section model.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = section
	if ls, ok := s.lists[section]; ok {
		ls.Page = 1
	}
}

// begin records page as the section's position and starts a new load,
// returning the load's generation.
func (s *State) begin(section model.Section, page int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.lists[section]
	if !ok {
		return 0
	}
	ls.Page = page
	ls.Generation++
	return ls.Generation
}

// latest reports whether gen is the section's most recent load.
func (s *State) latest(section model.Section, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.lists[section]
	return ok && ls.Generation == gen
}
