package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bestxiangest/Goods-Trading-Center/internal/console"
	"github.com/bestxiangest/Goods-Trading-Center/internal/pagination"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// barWidth is the length of the longest bar in a text chart.
const barWidth = 30

// termView renders console loads on the terminal. Filters come from
// command flags; alerts go to stderr.
type termView struct {
	p      *printer
	errOut io.Writer

	filters map[string]string
	// lists is false for mutations, whose follow-up reload is not shown.
	lists bool

	mu      sync.Mutex
	section model.Section
	err     error
}

func newTermView(cmd *cobra.Command, filters map[string]string) *termView {
	return &termView{
		p:       newPrinter(cmd),
		errOut:  cmd.ErrOrStderr(),
		filters: filters,
		lists:   true,
	}
}

// controller returns a console controller rendering into v.
func (v *termView) controller() *console.Controller {
	return console.NewController(api, v, logger, console.WithPageSize(cfg.List.PerPage))
}

// Err returns the first output error.
func (v *termView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *termView) fail(err error) {
	if err != nil && v.err == nil {
		v.err = err
	}
}

func (v *termView) FilterValue(_ model.Section, name string) string {
	return v.filters[name]
}

func (v *termView) ShowSection(section model.Section) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.section = section
}

type dashboardDoc struct {
	TotalUsers      int `json:"total_users"`
	TotalItems      int `json:"total_items"`
	PendingRequests int `json:"pending_requests"`
	TodayNewItems   int `json:"today_new_items"`
}

func (v *termView) RenderDashboard(d console.Dashboard) {
	v.mu.Lock()
	defer v.mu.Unlock()
	c := d.Counts
	if v.p.structured() {
		v.fail(v.p.encode(dashboardDoc{
			TotalUsers:      c.TotalUsers,
			TotalItems:      c.TotalItems,
			PendingRequests: c.PendingRequests,
			TodayNewItems:   c.TodayNewItems,
		}))
		return
	}
	v.fail(v.p.record(nil, [][2]string{
		{"总用户数", humanize.Comma(int64(c.TotalUsers))},
		{"总物品数", humanize.Comma(int64(c.TotalItems))},
		{"待处理请求", humanize.Comma(int64(c.PendingRequests))},
		{"今日新增物品", humanize.Comma(int64(c.TodayNewItems))},
	}))
}

type chartDoc struct {
	Canvas string   `json:"canvas"`
	Title  string   `json:"title"`
	Kind   string   `json:"kind"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// textChart is a chart already written out; there is nothing to release.
type textChart struct{}

func (textChart) Destroy() {}

func (v *termView) DrawChart(canvas string, s console.Series) console.Chart {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.p.structured() {
		v.fail(v.p.encode(chartDoc{Canvas: canvas, Title: s.Title, Kind: s.Kind, Labels: s.Labels, Values: s.Values}))
		return textChart{}
	}

	peak := 0
	for _, n := range s.Values {
		peak = max(peak, n)
	}
	rows := make([][]string, 0, len(s.Labels))
	for i, label := range s.Labels {
		n := 0
		if i < len(s.Values) {
			n = s.Values[i]
		}
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("█", n*barWidth/peak)
		}
		rows = append(rows, []string{label, humanize.Comma(int64(n)), bar})
	}
	fmt.Fprintf(v.p.out, "\n%s\n", s.Title)
	if len(rows) == 0 {
		fmt.Fprintln(v.p.out, "暂无数据")
		return textChart{}
	}
	v.fail(v.p.table([]string{"", "数量", ""}, rows))
	return textChart{}
}

type listDoc struct {
	Section    model.Section    `json:"section"`
	Rows       any              `json:"rows"`
	Pagination model.Pagination `json:"pagination"`
}

func (v *termView) RenderList(l console.List) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.lists {
		return
	}
	if v.p.structured() {
		v.fail(v.p.encode(listDoc{Section: l.Section, Rows: listRows(l), Pagination: l.Pagination}))
		return
	}
	if l.Len() == 0 {
		fmt.Fprintln(v.p.out, "暂无数据")
		return
	}

	header, rows := tabulate(l)
	v.fail(v.p.table(header, rows))
	if len(l.Links) > 0 {
		fmt.Fprintf(v.p.out, "\n%s  第 %d/%d 页，共 %s 条\n",
			pagination.String(l.Links), l.Pagination.CurrentPage(), l.Pagination.Pages, humanize.Comma(int64(l.Pagination.Total)))
	}
}

func listRows(l console.List) any {
	switch l.Section {
	case model.SectionUsers:
		return l.Users
	case model.SectionItems:
		return l.Items
	case model.SectionRequests:
		return l.Requests
	case model.SectionReviews:
		return l.Reviews
	case model.SectionMessages:
		return l.Messages
	}
	return []any{}
}

// tabulate returns the table header and rows of a loaded list.
func tabulate(l console.List) ([]string, [][]string) {
	var rows [][]string
	switch l.Section {
	case model.SectionUsers:
		for i := range l.Users {
			u := &l.Users[i]
			rows = append(rows, []string{strconv.Itoa(u.UserID), u.Username, orDash(u.Email), orDash(u.Phone),
				u.RoleLabel(), activeLabel(u), model.Stars(u.ReputationScore), timeAgo(u.CreatedAt)})
		}
		return []string{"ID", "用户名", "邮箱", "电话", "角色", "状态", "信誉", "注册时间"}, rows
	case model.SectionItems:
		for _, it := range l.Items {
			rows = append(rows, []string{strconv.Itoa(it.ItemID), truncate(it.Title, 24), orDash(it.CategoryName), price(it.Price),
				it.Status.Label(), it.Condition.Label(), orDash(it.OwnerUsername), timeAgo(it.CreatedAt)})
		}
		return []string{"ID", "标题", "分类", "价格", "状态", "成色", "发布者", "发布时间"}, rows
	case model.SectionRequests:
		for i := range l.Requests {
			r := &l.Requests[i]
			rows = append(rows, []string{strconv.Itoa(r.RequestID), truncate(orDash(r.ItemTitle), 24), orDash(r.RequesterUsername),
				orDash(r.Owner()), r.Status.Label(), timeAgo(r.CreatedAt)})
		}
		return []string{"ID", "物品", "请求者", "物主", "状态", "创建时间"}, rows
	case model.SectionReviews:
		for _, r := range l.Reviews {
			rows = append(rows, []string{strconv.Itoa(r.ReviewID), orDash(r.ReviewerUsername), orDash(r.RevieweeUsername),
				model.Stars(float64(r.Rating)), truncate(orDash(deref(r.Comment)), 30), timeAgo(r.CreatedAt)})
		}
		return []string{"ID", "评价者", "被评价者", "评分", "评论", "时间"}, rows
	case model.SectionMessages:
		for i := range l.Messages {
			m := &l.Messages[i]
			rows = append(rows, []string{strconv.Itoa(m.MessageID), m.Sender(), orDash(m.RecipientUsername), m.Type.Label(),
				truncate(m.Content, 30), m.ReadLabel(), timeAgo(m.CreatedAt)})
		}
		return []string{"ID", "发送者", "接收者", "类型", "内容", "状态", "时间"}, rows
	}
	return nil, nil
}

// RenderCategories prints the tree only when the categories section is shown;
// item listings load it for their category options.
func (v *termView) RenderCategories(tree []model.Category) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.section != model.SectionCategories {
		return
	}
	if v.p.structured() {
		v.fail(v.p.encode(tree))
		return
	}
	if len(tree) == 0 {
		fmt.Fprintln(v.p.out, "暂无分类")
		return
	}
	writeTree(v.p.out, tree, 0)
}

func writeTree(w io.Writer, nodes []model.Category, depth int) {
	for _, c := range nodes {
		fmt.Fprintf(w, "%s#%d %s (%d)\n", strings.Repeat("  ", depth), c.CategoryID, c.Name, c.ItemCount)
		writeTree(w, c.Children, depth+1)
	}
}

// SetCategoryOptions is a no-op: category filters are given as IDs.
func (v *termView) SetCategoryOptions([]model.CategoryOption) {}

// Alert writes successes to stdout in table mode and everything else to stderr.
func (v *termView) Alert(level console.AlertLevel, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch level {
	case console.AlertDanger:
		fmt.Fprintln(v.errOut, "错误:", message)
	case console.AlertWarning:
		fmt.Fprintln(v.errOut, "警告:", message)
	default:
		if v.p.structured() {
			fmt.Fprintln(v.errOut, message)
			return
		}
		fmt.Fprintln(v.p.out, message)
	}
}
