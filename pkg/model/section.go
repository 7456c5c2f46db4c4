package model

// Section identifies one of the top-level admin views.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionUsers      Section = "users"
	SectionItems      Section = "items"
	SectionCategories Section = "categories"
	SectionRequests   Section = "requests"
	SectionReviews    Section = "reviews"
	SectionMessages   Section = "messages"
)

// Sections lists every section in navigation order.
var Sections = []Section{
	SectionDashboard,
	SectionUsers,
	SectionItems,
	SectionCategories,
	SectionRequests,
	SectionReviews,
	SectionMessages,
}

// String returns the string representation of the section.
func (s Section) String() string {
	return string(s)
}

// ParseSection returns the section named s. Unknown names report false.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Title returns the navigation label of the section.
func (s Section) Title() string {
	switch s {
	case SectionDashboard:
		return "仪表盘"
	case SectionUsers:
		return "用户管理"
	case SectionItems:
		return "物品管理"
	case SectionCategories:
		return "分类管理"
	case SectionRequests:
		return "交易请求"
	case SectionReviews:
		return "评价管理"
	case SectionMessages:
		return "消息管理"
	}
	return string(s)
}

// Resource describes how a section's list is fetched.
type Resource struct {
	Section Section
	// Path is the list endpoint relative to the API base.
	Path string
	// Filters are the optional query parameters, in request order.
	Filters []string
	// ListKey is the field of the response data holding the rows.
	ListKey string
	// Paginated is false for resources fetched as a whole (the category tree).
	Paginated bool
}

var resources = map[Section]Resource{
	SectionUsers:      {Section: SectionUsers, Path: "/users", Filters: []string{"search", "role"}, ListKey: "items", Paginated: true},
	SectionItems:      {Section: SectionItems, Path: "/items", Filters: []string{"search", "status", "category_id"}, ListKey: "items", Paginated: true},
	SectionCategories: {Section: SectionCategories, Path: "/categories/tree"},
	SectionRequests:   {Section: SectionRequests, Path: "/requests", Filters: []string{"status"}, ListKey: "items", Paginated: true},
	SectionReviews:    {Section: SectionReviews, Path: "/reviews", Filters: []string{"rating"}, ListKey: "reviews", Paginated: true},
	SectionMessages:   {Section: SectionMessages, Path: "/messages", Filters: []string{"type", "is_read"}, ListKey: "items", Paginated: true},
}

// ResourceFor returns the resource behind a section. The dashboard has none.
func ResourceFor(s Section) (Resource, bool) {
	r, ok := resources[s]
	return r, ok
}

// IsResource reports whether the section lists a resource type.
func (s Section) IsResource() bool {
	_, ok := resources[s]
	return ok
}
