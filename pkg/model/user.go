package model

import (
	"regexp"
	"strings"
)

// UserRole is the value of the users list "role" filter.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is a trading-platform account as returned by /users.
type User struct {
	UserID            int      `json:"user_id"`
	Username          string   `json:"username"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Address           string   `json:"address,omitempty"`
	IsAdmin           bool     `json:"is_admin"`
	IsActive          *bool    `json:"is_active,omitempty"`
	ReputationScore   float64  `json:"reputation_score"`
	ItemsCount        int      `json:"items_count,omitempty"`
	TransactionsCount int      `json:"transactions_count,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	LastLogin         string   `json:"last_login,omitempty"`
}

// RoleLabel returns the display label for the user's role.
func (u *User) RoleLabel() string {
	if u.IsAdmin {
		return "管理员"
	}
	return "普通用户"
}

// NewUser is the body of POST /users/register.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Phone    string `json:"phone,omitempty"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the shortest password accepted for new accounts.
const MinPasswordLength = 6

// Normalize trims surrounding whitespace from every field except the password.
func (u *NewUser) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.Address = strings.TrimSpace(u.Address)
	u.Phone = strings.TrimSpace(u.Phone)
}

// Validate checks required fields, email shape and password length.
func (u *NewUser) Validate() error {
	switch {
	case u.Username == "":
		return newValidationError("username", MsgRequiredFields)
	case u.Email == "":
		return newValidationError("email", MsgRequiredFields)
	case u.Password == "":
		return newValidationError("password", MsgRequiredFields)
	case u.Address == "":
		return newValidationError("address", MsgRequiredFields)
	}
	if !emailPattern.MatchString(u.Email) {
		return newValidationError("email", MsgInvalidEmail)
	}
	if len(u.Password) < MinPasswordLength {
		return newValidationError("password", MsgShortPassword)
	}
	return nil
}
