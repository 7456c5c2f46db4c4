package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

const sessionFileName = "session.json"

var (
	errNotLoggedIn    = errors.New("未登录，请先运行 gtc-admin login")
	errSessionExpired = errors.New("会话已过期，请重新登录")
)

// sessionPath returns the path to the stored login (~/.gtc/session.json).
func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".gtc", sessionFileName), nil
}

// saveSession records a login of username valid for ttl.
func saveSession(username string, ttl time.Duration) (*model.Session, string, error) {
	now := time.Now().UTC()
	sess := &model.Session{
		ID:        uuid.NewString(),
		LoggedIn:  true,
		Username:  username,
		CreatedAt: now,
	}
	if ttl > 0 {
		sess.ExpiresAt = now.Add(ttl)
	}

	p, err := sessionPath()
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return nil, "", fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(p, data, 0600); err != nil {
		return nil, "", fmt.Errorf("write session: %w", err)
	}
	return sess, p, nil
}

// loadSession reads the stored login. An expired login is removed.
func loadSession() (*model.Session, error) {
	p, err := sessionPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", p, err)
	}
	if !sess.LoggedIn {
		return nil, errNotLoggedIn
	}
	if sess.IsExpired() {
		_ = os.Remove(p)
		return nil, errSessionExpired
	}
	return &sess, nil
}

// clearSession removes the stored login. It reports whether one existed.
func clearSession() (bool, error) {
	p, err := sessionPath()
	if err != nil {
		return false, err
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove session: %w", err)
	}
	return true, nil
}
