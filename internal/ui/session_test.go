package ui

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bestxiangest/Goods-Trading-Center/internal/store"
	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func TestSessionManager_CreateAndGet(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	sm := NewSessionManager(st, 0)
	ctx := context.Background()

	sess, err := sm.CreateSession(ctx, "admin")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if !strings.HasPrefix(sess.ID, "sess_") {
		t.Errorf("expected sess_ prefix, got %q", sess.ID)
	}
	if !sess.LoggedIn {
		t.Error("expected LoggedIn to be set")
	}
	if sess.Username != "admin" {
		t.Errorf("expected Username 'admin', got %q", sess.Username)
	}
	if got := sess.ExpiresAt.Sub(sess.CreatedAt); got != SessionDuration {
		t.Errorf("expected lifetime %v, got %v", SessionDuration, got)
	}

	retrieved, err := sm.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected session to be found")
	}
	if retrieved.Username != sess.Username {
		t.Errorf("expected Username %q, got %q", sess.Username, retrieved.Username)
	}
}

func TestSessionManager_GetSession_NotFound(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	sm := NewSessionManager(st, 0)

	sess, err := sm.GetSession(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session for nonexistent ID")
	}
}

func TestSessionManager_GetSession_Inactive(t *testing.T) {
	tests := []struct {
		name string
		sess model.Session
	}{
		{"expired", model.Session{
			ID:        "sess_expired",
			LoggedIn:  true,
			Username:  "admin",
			CreatedAt: time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		}},
		{"logged out", model.Session{
			ID:        "sess_flagless",
			Username:  "admin",
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := setupTestStore(t)
			defer st.Close()
			sm := NewSessionManager(st, 0)
			ctx := context.Background()

			if err := st.CreateSession(ctx, &tt.sess); err != nil {
				t.Fatalf("CreateSession failed: %v", err)
			}
			retrieved, err := sm.GetSession(ctx, tt.sess.ID)
			if err != nil {
				t.Fatalf("GetSession failed: %v", err)
			}
			if retrieved != nil {
				t.Error("expected nil session")
			}

			// The stale row is removed on lookup.
			raw, err := st.GetSession(ctx, tt.sess.ID)
			if err != nil {
				t.Fatalf("store GetSession failed: %v", err)
			}
			if raw != nil {
				t.Error("expected inactive session to be deleted")
			}
		})
	}
}

func TestSessionManager_DeleteSession(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	sm := NewSessionManager(st, time.Hour)
	ctx := context.Background()

	sess, err := sm.CreateSession(ctx, "admin")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := sm.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	retrieved, err := sm.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if retrieved != nil {
		t.Error("expected nil session after deletion")
	}
}

func TestSessionManager_GetSessionFromRequest(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	sm := NewSessionManager(st, 0)

	sess, err := sm.CreateSession(context.Background(), "admin")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})

	retrieved, err := sm.GetSessionFromRequest(req)
	if err != nil {
		t.Fatalf("GetSessionFromRequest failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected session to be found")
	}
	if retrieved.ID != sess.ID {
		t.Errorf("expected ID %q, got %q", sess.ID, retrieved.ID)
	}
}

func TestSessionManager_GetSessionFromRequest_NoCookie(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	sm := NewSessionManager(st, 0)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	retrieved, err := sm.GetSessionFromRequest(req)
	if err != nil {
		t.Fatalf("GetSessionFromRequest failed: %v", err)
	}
	if retrieved != nil {
		t.Error("expected nil session when no cookie")
	}
}

func TestSetSessionCookie(t *testing.T) {
	sess := &model.Session{
		ID:        "sess_test123",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	w := httptest.NewRecorder()
	SetSessionCookie(w, sess, true)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != SessionCookieName {
		t.Errorf("expected cookie name %q, got %q", SessionCookieName, cookie.Name)
	}
	if cookie.Value != sess.ID {
		t.Errorf("expected cookie value %q, got %q", sess.ID, cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Error("expected HttpOnly and Secure to be true")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("expected SameSite Strict, got %v", cookie.SameSite)
	}
}

func TestClearSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearSessionCookie(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("expected MaxAge -1, got %d", cookies[0].MaxAge)
	}
}

func setupTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:", slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		st.Close()
		t.Fatalf("failed to migrate: %v", err)
	}
	return st
}
