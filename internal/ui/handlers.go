package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bestxiangest/Goods-Trading-Center/internal/adminapi"
	"github.com/bestxiangest/Goods-Trading-Center/internal/console"
	"github.com/bestxiangest/Goods-Trading-Center/internal/logging"
	"github.com/bestxiangest/Goods-Trading-Center/internal/store"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// DefaultConsoleCache is the number of per-session consoles kept in memory.
const DefaultConsoleCache = 256

// UI handles the web console.
type UI struct {
	api      *adminapi.Client
	sessions *SessionManager
	logger   *slog.Logger
	secure   bool // Use secure cookies (HTTPS)
	pageSize int

	mu       sync.Mutex
	consoles *lru.Cache[string, *consoleSession]
}

// Config holds UI configuration.
type Config struct {
	Secure     bool // Use secure cookies for HTTPS
	PageSize   int
	CacheSize  int
	SessionTTL time.Duration
}

// consoleSession is the controller and page state of one logged-in operator.
// Requests of the same session are handled one at a time.
type consoleSession struct {
	mu   sync.Mutex
	ctrl *console.Controller
	view *pageView
}

// New creates the web console handler.
func New(api *adminapi.Client, st store.SessionStore, logger *slog.Logger, cfg Config) (*UI, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultConsoleCache
	}
	cache, err := lru.NewWithEvict(cfg.CacheSize, func(id string, cs *consoleSession) {
		cs.ctrl.Charts().Release()
	})
	if err != nil {
		return nil, fmt.Errorf("create console cache: %w", err)
	}
	return &UI{
		api:      api,
		sessions: NewSessionManager(st, cfg.SessionTTL),
		logger:   logger.With("component", "ui"),
		secure:   cfg.Secure,
		pageSize: cfg.PageSize,
		consoles: cache,
	}, nil
}

// Sessions returns the session manager.
func (ui *UI) Sessions() *SessionManager {
	return ui.sessions
}

// consoleFor returns the console of sess, creating it on first use.
func (ui *UI) consoleFor(sess *model.Session) *consoleSession {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if cs, ok := ui.consoles.Get(sess.ID); ok {
		return cs
	}
	view := newPageView()
	cs := &consoleSession{
		view: view,
		ctrl: console.NewController(ui.api, view, ui.logger.With("session", sess.ID), console.WithPageSize(ui.pageSize)),
	}
	ui.consoles.Add(sess.ID, cs)
	return cs
}

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	ui.render(w, http.StatusOK, "login", map[string]any{
		"Title": "管理员登录 - 二手交易平台",
		"Error": r.URL.Query().Get("error"),
	})
}

// HandleLoginPost checks the credentials against the backend and starts a session.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		loginFailed(w, r, "请求无效")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	user, err := ui.api.AdminLogin(r.Context(), username, r.FormValue("password"))
	if err != nil {
		ui.log(r).Warn("login failed", "username", username, "error", err)
		loginFailed(w, r, loginMessage(err))
		return
	}

	sess, err := ui.sessions.CreateSession(r.Context(), user.Username)
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		loginFailed(w, r, "创建会话失败")
		return
	}
	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("admin logged in", "username", user.Username, "session", sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func loginFailed(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/login?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func loginMessage(err error) string {
	if errors.Is(err, adminapi.ErrNotAdmin) {
		return "该账户不是管理员"
	}
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && apiErr.Kind != model.KindTransport {
		return apiErr.Message
	}
	return "登录失败，请检查网络连接"
}

// HandleLogout clears the session and redirects to login.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		_ = ui.sessions.DeleteSession(r.Context(), sess.ID)
		ui.mu.Lock()
		ui.consoles.Remove(sess.ID)
		ui.mu.Unlock()
		ui.logger.Info("admin logged out", "username", sess.Username, "session", sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleDashboard shows the dashboard section.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	cs := ui.consoleFor(sess)
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := cs.ctrl.SwitchTo(r.Context(), model.SectionDashboard); err != nil {
		ui.log(r).Debug("dashboard load incomplete", "error", err)
	}
	ui.renderConsole(w, sess, cs)
}

// HandleSection shows a resource section. Query parameters named after the
// section's filters set those filters; page selects the page.
func (ui *UI) HandleSection(w http.ResponseWriter, r *http.Request) {
	section, ok := model.ParseSection(chi.URLParam(r, "section"))
	if !ok || section == model.SectionDashboard {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess := SessionFromContext(r.Context())
	cs := ui.consoleFor(sess)
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := ui.navigate(r.Context(), cs, section, r.URL.Query()); err != nil {
		ui.log(r).Debug("section load failed", "section", section, "error", err)
	}
	ui.renderConsole(w, sess, cs)
}

func (ui *UI) navigate(ctx context.Context, cs *consoleSession, section model.Section, q url.Values) error {
	res, _ := model.ResourceFor(section)
	filtered := false
	for _, name := range res.Filters {
		if q.Has(name) {
			cs.view.SetFilter(section, name, q.Get(name))
			filtered = true
		}
	}
	page, _ := strconv.Atoi(q.Get("page"))

	if cs.ctrl.State().Current() != section {
		return cs.ctrl.OpenAt(ctx, section, page)
	}
	switch {
	case !res.Paginated:
		return cs.ctrl.SwitchTo(ctx, section)
	case page > 0:
		return cs.ctrl.ChangePage(ctx, section, page)
	case filtered:
		return cs.ctrl.ApplyFilters(ctx, section)
	}
	return cs.ctrl.SwitchTo(ctx, section)
}

// HandleDelete deletes a record and returns to its section.
func (ui *UI) HandleDelete(w http.ResponseWriter, r *http.Request) {
	section, ok := model.ParseSection(chi.URLParam(r, "section"))
	if !ok || !section.IsResource() {
		ui.renderNotFound(w, "未知的模块")
		return
	}
	id, ok := pathID(r)
	if !ok {
		ui.renderNotFound(w, "无效的记录编号")
		return
	}

	cs := ui.consoleFor(SessionFromContext(r.Context()))
	cs.mu.Lock()
	if err := cs.ctrl.Delete(r.Context(), section, id); err != nil {
		ui.log(r).Debug("delete rejected", "section", section, "id", id, "error", err)
	}
	cs.mu.Unlock()

	http.Redirect(w, r, "/"+section.String(), http.StatusSeeOther)
}

// HandleToggleUser flips a user's active flag.
func (ui *UI) HandleToggleUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		ui.renderNotFound(w, "无效的用户编号")
		return
	}

	cs := ui.consoleFor(SessionFromContext(r.Context()))
	cs.mu.Lock()
	_ = cs.ctrl.ToggleUser(r.Context(), id)
	cs.mu.Unlock()

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleRequestStatus moves a trade request to the posted status.
func (ui *UI) HandleRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		ui.renderNotFound(w, "无效的请求编号")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cs := ui.consoleFor(SessionFromContext(r.Context()))
	cs.mu.Lock()
	_ = cs.ctrl.SetRequestStatus(r.Context(), id, model.RequestStatus(r.FormValue("status")))
	cs.mu.Unlock()

	http.Redirect(w, r, "/requests", http.StatusSeeOther)
}

// log returns the request-scoped logger, falling back to the UI logger.
func (ui *UI) log(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context(), ui.logger)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// renderConsole renders the section the session's console is showing.
func (ui *UI) renderConsole(w http.ResponseWriter, sess *model.Session, cs *consoleSession) {
	snap := cs.view.snapshot()
	ui.render(w, http.StatusOK, snap.Section.String(), map[string]any{
		"Title":       snap.Section.Title() + " - 二手交易平台管理后台",
		"Session":     sess,
		"Sections":    model.Sections,
		"View":        snap,
		"FilterQuery": filterQuery(snap.Section, snap.Filters),
		"Statuses":    model.RequestStatuses,
	})
}

// filterQuery encodes the active filters of section for pagination links.
func filterQuery(section model.Section, values map[string]string) string {
	res, ok := model.ResourceFor(section)
	if !ok {
		return ""
	}
	q := url.Values{}
	for _, name := range res.Filters {
		if v := values[name]; adminapi.Active(v) {
			q.Set(name, v)
		}
	}
	return q.Encode()
}

func (ui *UI) render(w http.ResponseWriter, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, name, data); err != nil {
		ui.logger.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, message string) {
	ui.render(w, http.StatusNotFound, "error", map[string]any{
		"Title":   "未找到 - 二手交易平台",
		"Message": message,
	})
}
