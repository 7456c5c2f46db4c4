package model

import (
	"encoding/json"
	"time"
)

// Envelope is the standard response body of the trading-platform API.
type Envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Pagination holds pagination metadata returned with list endpoints.
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page,omitempty"`
	Total   int  `json:"total,omitempty"`
	Pages   int  `json:"pages"`
	HasPrev bool `json:"has_prev,omitempty"`
	HasNext bool `json:"has_next,omitempty"`
}

// CurrentPage returns the reported page, or 1 when the server omitted it.
func (p Pagination) CurrentPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// ListPage is one page of a resource list.
type ListPage[T any] struct {
	Rows       []T
	Pagination Pagination
}

// DecodeListPage decodes list data of the form {"<key>": [...], "pagination": {...}}.
// A missing or null list decodes as an empty page.
func DecodeListPage[T any](data json.RawMessage, key string) (*ListPage[T], error) {
	page := &ListPage[T]{Rows: []T{}}
	if len(data) == 0 || string(data) == "null" {
		return page, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if raw, ok := fields[key]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &page.Rows); err != nil {
			return nil, err
		}
	}
	if raw, ok := fields["pagination"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &page.Pagination); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// Count is the payload of the /<resource>/count endpoints.
type Count struct {
	Count int `json:"count"`
}

// timestampLayouts are the forms the backend writes created_at and updated_at in.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp. Naive values are taken as local time.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
