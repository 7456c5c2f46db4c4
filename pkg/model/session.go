package model

import "time"

// Session is an operator's login to the console.
// It records the two flags the console keys on: that an admin is logged in, and who.
type Session struct {
	ID        string    `json:"id"`
	LoggedIn  bool      `json:"admin_logged_in"`
	Username  string    `json:"admin_username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	LastSeen  time.Time `json:"last_seen,omitempty"`
}

// IsExpired reports whether the session has expired.
// A zero expiry never expires.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// Active reports whether the session still grants access.
func (s *Session) Active() bool {
	return s != nil && s.LoggedIn && !s.IsExpired()
}

// DisplayName returns the stored username, defaulting to "admin".
func (s *Session) DisplayName() string {
	if s == nil || s.Username == "" {
		return "admin"
	}
	return s.Username
}
