package ui

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bestxiangest/Goods-Trading-Center/internal/console"
	"github.com/bestxiangest/Goods-Trading-Center/internal/pagination"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// Chart geometry of the registration trend, in SVG user units.
const (
	chartWidth  = 600
	chartHeight = 200
	chartPad    = 20
)

// donutColors are cycled through the category distribution slices.
var donutColors = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40"}

// donutSlice is one arc of the distribution chart. The ring has a
// circumference of 100 so lengths are percentages.
type donutSlice struct {
	Label   string
	Value   int
	Percent float64
	Offset  float64
	Color   string
}

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"timeAgo": func(s string) string {
		t, ok := model.ParseTimestamp(s)
		if !ok {
			return "-"
		}
		return humanize.Time(t)
	},
	"formatTime": func(s string) string {
		t, ok := model.ParseTimestamp(s)
		if !ok {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"price": func(p float64) string {
		if p <= 0 {
			return "-"
		}
		return "¥" + humanize.CommafWithDigits(p, 2)
	},
	"stars": func(score float64) string {
		return model.Stars(score)
	},
	"ratingStars": func(n int) string {
		return model.Stars(float64(n))
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"isActive": func(b *bool) bool {
		return b == nil || *b
	},
	"str": func(v any) string {
		return fmt.Sprint(v)
	},
	"truncate": func(s string, n int) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n]) + "..."
	},
	"alertClass": func(level console.AlertLevel) string {
		switch level {
		case console.AlertSuccess:
			return "bg-green-50 text-green-800 border-green-200"
		case console.AlertWarning:
			return "bg-yellow-50 text-yellow-800 border-yellow-200"
		case console.AlertDanger:
			return "bg-red-50 text-red-800 border-red-200"
		default:
			return "bg-blue-50 text-blue-800 border-blue-200"
		}
	},
	"statusColor": func(status string) string {
		switch status {
		case "available", "accepted":
			return "bg-green-100 text-green-800"
		case "pending", "reserved":
			return "bg-yellow-100 text-yellow-800"
		case "completed":
			return "bg-blue-100 text-blue-800"
		case "rejected", "removed":
			return "bg-red-100 text-red-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"pageHref": func(l pagination.Link, filterQuery string) string {
		href := "/" + l.Section.String() + "?page=" + strconv.Itoa(l.Page)
		if filterQuery != "" {
			href += "&" + filterQuery
		}
		return href
	},
	"subPercent": func(p float64) float64 {
		return 100 - p
	},
	"deleteTarget": func(section string, id int) map[string]any {
		return map[string]any{"Section": section, "ID": id}
	},
	"itemStatuses": func() []model.ItemStatus {
		return model.ItemStatuses
	},
	"messageTypes": func() []model.MessageType {
		return model.MessageTypes
	},
	"ratings": func() []int {
		return []int{5, 4, 3, 2, 1}
	},
	"linePoints": linePoints,
	"donut":      donut,
	"indent": func(depth int) string {
		return strings.Repeat("　", depth)
	},
}

// linePoints maps a series onto the trend chart's polyline coordinates.
func linePoints(s *console.Series) string {
	if s == nil || len(s.Values) == 0 {
		return ""
	}
	maxV := 1
	for _, v := range s.Values {
		maxV = max(maxV, v)
	}
	step := 0.0
	if len(s.Values) > 1 {
		step = float64(chartWidth-2*chartPad) / float64(len(s.Values)-1)
	}
	pts := make([]string, len(s.Values))
	for i, v := range s.Values {
		x := chartPad + step*float64(i)
		y := chartHeight - chartPad - float64(v)/float64(maxV)*float64(chartHeight-2*chartPad)
		pts[i] = strconv.FormatFloat(x, 'f', 1, 64) + "," + strconv.FormatFloat(y, 'f', 1, 64)
	}
	return strings.Join(pts, " ")
}

// donut splits a series into ring arcs in label order.
func donut(s *console.Series) []donutSlice {
	if s == nil {
		return nil
	}
	total := 0
	for _, v := range s.Values {
		total += v
	}
	if total == 0 {
		return nil
	}
	slices := make([]donutSlice, 0, len(s.Values))
	done := 0.0
	for i, v := range s.Values {
		pct := math.Round(float64(v)*1000/float64(total)) / 10
		slices = append(slices, donutSlice{
			Label:   s.Labels[i],
			Value:   v,
			Percent: pct,
			Offset:  25 - done,
			Color:   donutColors[i%len(donutColors)],
		})
		done += pct
	}
	return slices
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err = tmpl.New(filepath.Base(compName)).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">二手交易平台管理后台</a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-6">
                        {{$current := .View.Section}}
                        {{range .Sections}}
                        <a href="{{if eq (str .) "dashboard"}}/{{else}}/{{.}}{{end}}"
                           class="{{if eq . $current}}border-indigo-500 text-gray-900{{else}}border-transparent text-gray-500 hover:text-gray-700{{end}} inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{.Title}}</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-4">{{.Session.DisplayName}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">退出登录</a>
                </div>
            </div>
        </div>
    </nav>
    {{template "alerts" .}}
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"components/alerts": `{{if .View}}{{with .View.Alerts}}
<div class="max-w-7xl mx-auto mt-4 px-4 space-y-2">
    {{range .}}
    <div class="border rounded-md p-3 text-sm {{alertClass .Level}}" role="alert">{{.Message}}</div>
    {{end}}
</div>
{{end}}{{end}}`,

	"components/pagination": `{{$fq := .FilterQuery}}{{with .View.List.Links}}
<nav class="flex justify-center mt-4 space-x-1" aria-label="分页">
    {{range .}}
    <a href="{{pageHref . $fq}}"
       class="px-3 py-1 border rounded text-sm {{if .Active}}bg-indigo-600 text-white border-indigo-600{{else}}bg-white text-gray-700 hover:bg-gray-50{{end}}">{{.Label}}</a>
    {{end}}
</nav>
{{end}}`,

	"components/delete": `<form action="/{{.Section}}/{{.ID}}/delete" method="POST" class="inline"
      onsubmit="return confirm('确定要删除吗？')">
    <button type="submit" class="text-red-600 hover:text-red-800 text-sm">删除</button>
</form>`,

	"components/category_tree": `<ul class="pl-4 space-y-1">
    {{range .}}
    <li>
        <div class="flex items-center justify-between py-1">
            <span>{{.Name}}{{if .ItemCount}} <span class="text-xs text-gray-400">({{.ItemCount}})</span>{{end}}</span>
            <form action="/categories/{{.CategoryID}}/delete" method="POST" class="inline"
                  onsubmit="return confirm('确定要删除这个分类吗？')">
                <button type="submit" class="text-red-600 hover:text-red-800 text-sm">删除</button>
            </form>
        </div>
        {{with .Children}}{{template "category_tree" .}}{{end}}
    </li>
    {{end}}
</ul>`,

	"login": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center py-12 px-4">
    <div class="max-w-md w-full space-y-8">
        <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">管理员登录</h2>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        <form class="mt-8 space-y-6" action="/login" method="POST">
            <input name="username" type="text" required placeholder="用户名"
                   class="appearance-none block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            <input name="password" type="password" required placeholder="密码"
                   class="appearance-none block w-full px-3 py-2 border border-gray-300 rounded-md sm:text-sm">
            <button type="submit" class="w-full py-2 px-4 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700">登录</button>
        </form>
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center">
    <div class="text-center">
        <h1 class="text-4xl font-bold text-gray-900 mb-4">出错了</h1>
        <p class="text-gray-600 mb-8">{{.Message}}</p>
        <a href="/" class="text-indigo-600 hover:text-indigo-500">返回仪表盘</a>
    </div>
</div>
{{end}}`,

	"dashboard": `{{define "content"}}
{{$c := .View.Dashboard.Counts}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">仪表盘</h1>
    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        <div class="bg-white shadow rounded-lg p-5"><dt class="text-sm text-gray-500">总用户数</dt><dd id="totalUsers" class="text-3xl font-semibold">{{comma $c.TotalUsers}}</dd></div>
        <div class="bg-white shadow rounded-lg p-5"><dt class="text-sm text-gray-500">总物品数</dt><dd id="totalItems" class="text-3xl font-semibold">{{comma $c.TotalItems}}</dd></div>
        <div class="bg-white shadow rounded-lg p-5"><dt class="text-sm text-gray-500">待处理请求</dt><dd id="pendingRequests" class="text-3xl font-semibold">{{comma $c.PendingRequests}}</dd></div>
        <div class="bg-white shadow rounded-lg p-5"><dt class="text-sm text-gray-500">今日新增物品</dt><dd id="todayTransactions" class="text-3xl font-semibold">{{comma $c.TodayNewItems}}</dd></div>
    </div>
    <div class="grid grid-cols-1 gap-5 lg:grid-cols-2">
        <div class="bg-white shadow rounded-lg p-5">
            <h2 class="text-lg font-medium mb-4">用户注册趋势</h2>
            {{with index .View.Charts "userChart"}}
            <svg id="userChart" viewBox="0 0 600 200" class="w-full">
                <polyline fill="none" stroke="rgb(75, 192, 192)" stroke-width="2" points="{{linePoints .}}"/>
            </svg>
            <div class="flex justify-between text-xs text-gray-400">{{range .Labels}}<span>{{.}}</span>{{end}}</div>
            {{else}}<p class="text-sm text-gray-400">暂无数据</p>{{end}}
        </div>
        <div class="bg-white shadow rounded-lg p-5">
            <h2 class="text-lg font-medium mb-4">物品分类分布</h2>
            {{with index .View.Charts "categoryChart"}}
            <div class="flex items-center">
                <svg id="categoryChart" viewBox="0 0 42 42" class="w-48 h-48">
                    {{range donut .}}
                    <circle cx="21" cy="21" r="15.915" fill="transparent" stroke="{{.Color}}" stroke-width="6"
                            stroke-dasharray="{{.Percent}} {{printf "%.1f" (subPercent .Percent)}}" stroke-dashoffset="{{.Offset}}"/>
                    {{end}}
                </svg>
                <ul class="ml-6 text-sm space-y-1">
                    {{range donut .}}<li><span class="inline-block w-3 h-3 mr-2" style="background: {{.Color}}"></span>{{.Label}} ({{.Value}})</li>{{end}}
                </ul>
            </div>
            {{else}}<p class="text-sm text-gray-400">暂无数据</p>{{end}}
        </div>
    </div>
</div>
{{end}}`,

	"users": `{{define "content"}}
{{$f := .View.Filters}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">用户管理</h1>
    <form action="/users" method="GET" class="flex space-x-2 mb-4">
        <input name="search" value="{{index $f "search"}}" placeholder="搜索用户名或邮箱" class="border rounded px-2 py-1 text-sm">
        <select name="role" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部角色</option>
            <option value="user" {{if eq (index $f "role") "user"}}selected{{end}}>普通用户</option>
            <option value="admin" {{if eq (index $f "role") "admin"}}selected{{end}}>管理员</option>
        </select>
        <button type="submit" class="px-3 py-1 bg-indigo-600 text-white rounded text-sm">筛选</button>
    </form>
    <table class="min-w-full bg-white shadow rounded text-sm">
        <thead><tr class="text-left text-gray-500"><th class="p-2">ID</th><th>用户名</th><th>邮箱</th><th>角色</th><th>信誉</th><th>状态</th><th>注册时间</th><th>操作</th></tr></thead>
        <tbody>
        {{range .View.List.Users}}
        <tr class="border-t">
            <td class="p-2">{{.UserID}}</td>
            <td>{{.Username}}</td>
            <td>{{.Email}}</td>
            <td>{{.RoleLabel}}</td>
            <td title="{{.ReputationScore}}">{{stars .ReputationScore}}</td>
            <td>{{if isActive .IsActive}}正常{{else}}已禁用{{end}}</td>
            <td title="{{formatTime .CreatedAt}}">{{timeAgo .CreatedAt}}</td>
            <td class="space-x-2">
                <form action="/users/{{.UserID}}/toggle" method="POST" class="inline"><button type="submit" class="text-indigo-600 text-sm">切换状态</button></form>
                {{template "delete" (deleteTarget "users" .UserID)}}
            </td>
        </tr>
        {{else}}
        <tr><td colspan="8" class="p-4 text-center text-gray-400">暂无用户</td></tr>
        {{end}}
        </tbody>
    </table>
    {{template "pagination" .}}
</div>
{{end}}`,

	"items": `{{define "content"}}
{{$f := .View.Filters}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">物品管理</h1>
    <form action="/items" method="GET" class="flex space-x-2 mb-4">
        <input name="search" value="{{index $f "search"}}" placeholder="搜索物品标题" class="border rounded px-2 py-1 text-sm">
        <select name="status" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部状态</option>
            {{range itemStatuses}}<option value="{{.}}" {{if eq (str .) (index $f "status")}}selected{{end}}>{{.Label}}</option>{{end}}
        </select>
        <select name="category_id" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部分类</option>
            {{range .View.CategoryOptions}}<option value="{{.ID}}" {{if eq (str .ID) (index $f "category_id")}}selected{{end}}>{{indent .Depth}}{{.Label}}</option>{{end}}
        </select>
        <button type="submit" class="px-3 py-1 bg-indigo-600 text-white rounded text-sm">筛选</button>
    </form>
    <table class="min-w-full bg-white shadow rounded text-sm">
        <thead><tr class="text-left text-gray-500"><th class="p-2">ID</th><th>图片</th><th>标题</th><th>分类</th><th>发布者</th><th>成色</th><th>价格</th><th>状态</th><th>发布时间</th><th>操作</th></tr></thead>
        <tbody>
        {{range .View.List.Items}}
        <tr class="border-t">
            <td class="p-2">{{.ItemID}}</td>
            <td>{{with .PrimaryImage}}<img src="{{.}}" alt="" class="w-10 h-10 object-cover rounded">{{end}}</td>
            <td title="{{.Description}}">{{truncate .Title 30}}</td>
            <td>{{.CategoryName}}</td>
            <td>{{.OwnerUsername}}</td>
            <td>{{.Condition.Label}}</td>
            <td>{{price .Price}}</td>
            <td><span class="px-2 py-0.5 rounded text-xs {{statusColor (str .Status)}}">{{.Status.Label}}</span></td>
            <td title="{{formatTime .CreatedAt}}">{{timeAgo .CreatedAt}}</td>
            <td>{{template "delete" (deleteTarget "items" .ItemID)}}</td>
        </tr>
        {{else}}
        <tr><td colspan="10" class="p-4 text-center text-gray-400">暂无物品</td></tr>
        {{end}}
        </tbody>
    </table>
    {{template "pagination" .}}
</div>
{{end}}`,

	"categories": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">分类管理</h1>
    <div class="bg-white shadow rounded p-4 text-sm">
        {{with .View.Categories}}{{template "category_tree" .}}{{else}}<p class="text-gray-400">暂无分类</p>{{end}}
    </div>
</div>
{{end}}`,

	"requests": `{{define "content"}}
{{$f := .View.Filters}}{{$statuses := .Statuses}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">交易请求</h1>
    <form action="/requests" method="GET" class="flex space-x-2 mb-4">
        <select name="status" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部状态</option>
            {{range $statuses}}<option value="{{.}}" {{if eq (str .) (index $f "status")}}selected{{end}}>{{.Label}}</option>{{end}}
        </select>
        <button type="submit" class="px-3 py-1 bg-indigo-600 text-white rounded text-sm">筛选</button>
    </form>
    <table class="min-w-full bg-white shadow rounded text-sm">
        <thead><tr class="text-left text-gray-500"><th class="p-2">ID</th><th>物品</th><th>请求者</th><th>物主</th><th>留言</th><th>状态</th><th>创建时间</th><th>操作</th></tr></thead>
        <tbody>
        {{range .View.List.Requests}}
        <tr class="border-t">
            <td class="p-2">{{.RequestID}}</td>
            <td>{{.ItemTitle}}</td>
            <td>{{.RequesterUsername}}</td>
            <td>{{.Owner}}</td>
            <td>{{truncate (deref .Message) 40}}</td>
            <td><span class="px-2 py-0.5 rounded text-xs {{statusColor (str .Status)}}">{{.Status.Label}}</span></td>
            <td title="{{formatTime .CreatedAt}}">{{timeAgo .CreatedAt}}</td>
            <td class="space-x-2">
                <form action="/requests/{{.RequestID}}/status" method="POST" class="inline">
                    {{$cur := str .Status}}
                    <select name="status" class="border rounded text-xs" onchange="this.form.submit()">
                        {{range $statuses}}<option value="{{.}}" {{if eq (str .) $cur}}selected{{end}}>{{.Label}}</option>{{end}}
                    </select>
                </form>
                {{template "delete" (deleteTarget "requests" .RequestID)}}
            </td>
        </tr>
        {{else}}
        <tr><td colspan="8" class="p-4 text-center text-gray-400">暂无交易请求</td></tr>
        {{end}}
        </tbody>
    </table>
    {{template "pagination" .}}
</div>
{{end}}`,

	"reviews": `{{define "content"}}
{{$f := .View.Filters}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">评价管理</h1>
    <form action="/reviews" method="GET" class="flex space-x-2 mb-4">
        <select name="rating" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部评分</option>
            {{range ratings}}<option value="{{.}}" {{if eq (str .) (index $f "rating")}}selected{{end}}>{{.}} 星</option>{{end}}
        </select>
        <button type="submit" class="px-3 py-1 bg-indigo-600 text-white rounded text-sm">筛选</button>
    </form>
    <table class="min-w-full bg-white shadow rounded text-sm">
        <thead><tr class="text-left text-gray-500"><th class="p-2">ID</th><th>评价者</th><th>被评价者</th><th>评分</th><th>评论</th><th>时间</th><th>操作</th></tr></thead>
        <tbody>
        {{range .View.List.Reviews}}
        <tr class="border-t">
            <td class="p-2">{{.ReviewID}}</td>
            <td>{{.ReviewerUsername}}</td>
            <td>{{.RevieweeUsername}}</td>
            <td class="text-yellow-500">{{ratingStars .Rating}}</td>
            <td>{{with deref .Comment}}{{truncate . 50}}{{else}}无评论{{end}}</td>
            <td title="{{formatTime .CreatedAt}}">{{timeAgo .CreatedAt}}</td>
            <td>{{template "delete" (deleteTarget "reviews" .ReviewID)}}</td>
        </tr>
        {{else}}
        <tr><td colspan="7" class="p-4 text-center text-gray-400">暂无评价</td></tr>
        {{end}}
        </tbody>
    </table>
    {{template "pagination" .}}
</div>
{{end}}`,

	"messages": `{{define "content"}}
{{$f := .View.Filters}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">消息管理</h1>
    <form action="/messages" method="GET" class="flex space-x-2 mb-4">
        <select name="type" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部类型</option>
            {{range messageTypes}}<option value="{{.}}" {{if eq (str .) (index $f "type")}}selected{{end}}>{{.Label}}</option>{{end}}
        </select>
        <select name="is_read" class="border rounded px-2 py-1 text-sm">
            <option value="all">全部</option>
            <option value="true" {{if eq (index $f "is_read") "true"}}selected{{end}}>已读</option>
            <option value="false" {{if eq (index $f "is_read") "false"}}selected{{end}}>未读</option>
        </select>
        <button type="submit" class="px-3 py-1 bg-indigo-600 text-white rounded text-sm">筛选</button>
    </form>
    <table class="min-w-full bg-white shadow rounded text-sm">
        <thead><tr class="text-left text-gray-500"><th class="p-2">ID</th><th>发送者</th><th>接收者</th><th>类型</th><th>内容</th><th>状态</th><th>时间</th><th>操作</th></tr></thead>
        <tbody>
        {{range .View.List.Messages}}
        <tr class="border-t">
            <td class="p-2">{{.MessageID}}</td>
            <td>{{.Sender}}</td>
            <td>{{.RecipientUsername}}</td>
            <td>{{.Type.Label}}</td>
            <td title="{{.Content}}">{{truncate .Content 40}}</td>
            <td>{{.ReadLabel}}</td>
            <td title="{{formatTime .CreatedAt}}">{{timeAgo .CreatedAt}}</td>
            <td>{{template "delete" (deleteTarget "messages" .MessageID)}}</td>
        </tr>
        {{else}}
        <tr><td colspan="8" class="p-4 text-center text-gray-400">暂无消息</td></tr>
        {{end}}
        </tbody>
    </table>
    {{template "pagination" .}}
</div>
{{end}}`,
}
