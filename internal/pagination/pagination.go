// Package pagination plans the page links shown under a resource list.
package pagination

import (
	"strconv"
	"strings"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// Window is how many pages are shown on each side of the current page.
const Window = 2

// Kind distinguishes the three link types.
type Kind string

const (
	KindPrev Kind = "prev"
	KindPage Kind = "page"
	KindNext Kind = "next"
)

// Link is one clickable pagination control. Activating it changes the
// page of Section to Page.
type Link struct {
	Kind    Kind
	Section model.Section
	Page    int
	Active  bool
}

// Plan returns the links for a list showing page current of total.
// A total of zero or less yields no links; a current page below 1 counts as 1.
func Plan(section model.Section, current, total int) []Link {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}

	var links []Link
	if current > 1 {
		links = append(links, Link{Kind: KindPrev, Section: section, Page: current - 1})
	}
	for p := max(1, current-Window); p <= min(total, current+Window); p++ {
		links = append(links, Link{Kind: KindPage, Section: section, Page: p, Active: p == current})
	}
	if current < total {
		links = append(links, Link{Kind: KindNext, Section: section, Page: current + 1})
	}
	return links
}

// Label returns the text of the link: a page number or an arrow.
func (l Link) Label() string {
	switch l.Kind {
	case KindPrev:
		return "‹"
	case KindNext:
		return "›"
	}
	return strconv.Itoa(l.Page)
}

// String renders a plan on one line, bracketing the active page,
// e.g. "‹ 3 4 [5] 6 7 ›".
func String(links []Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		if l.Active {
			parts = append(parts, "["+l.Label()+"]")
			continue
		}
		parts = append(parts, l.Label())
	}
	return strings.Join(parts, " ")
}
