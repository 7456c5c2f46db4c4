package adminapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// FilterAll is the select-box value meaning "no constraint".
const FilterAll = "all"

// Filter is one named list constraint.
type Filter struct {
	Name  string
	Value string
}

// Filters is an ordered set of list constraints.
type Filters []Filter

// Get returns the value of the named filter, or "".
func (f Filters) Get(name string) string {
	for _, flt := range f {
		if flt.Name == name {
			return flt.Value
		}
	}
	return ""
}

// FilterSource supplies the current value of a list filter control.
type FilterSource interface {
	FilterValue(section model.Section, name string) string
}

// FiltersFor reads the resource's declared filters from src, in declaration order.
func FiltersFor(res model.Resource, src FilterSource) Filters {
	if src == nil {
		return nil
	}
	out := make(Filters, 0, len(res.Filters))
	for _, name := range res.Filters {
		out = append(out, Filter{Name: name, Value: src.FilterValue(res.Section, name)})
	}
	return out
}

// Active reports whether a filter value constrains the list. Only the empty
// string and "all" are inactive; whitespace is sent as typed.
func Active(value string) bool {
	return value != "" && value != FilterAll
}

// BuildQuery encodes page, per_page and every active filter, in that order.
// The page is passed through as given.
func BuildQuery(page, perPage int, filters Filters) string {
	var b strings.Builder
	b.WriteString("page=")
	b.WriteString(strconv.Itoa(page))
	b.WriteString("&per_page=")
	b.WriteString(strconv.Itoa(perPage))
	for _, f := range filters {
		if !Active(f.Value) {
			continue
		}
		b.WriteByte('&')
		b.WriteString(url.QueryEscape(f.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}
	return b.String()
}

// ListPath returns path with the list query appended.
func ListPath(path string, page, perPage int, filters Filters) string {
	return path + "?" + BuildQuery(page, perPage, filters)
}
