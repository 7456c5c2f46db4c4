package adminapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// ErrNotAdmin is returned by VerifyAdmin when the verified account lacks admin rights.
var ErrNotAdmin = errors.New("非管理员")

// ListUsers fetches a page of users. Recognised filters: search, role.
func (c *Client) ListUsers(ctx context.Context, page, perPage int, filters Filters) (*model.ListPage[model.User], error) {
	lp, err := ListResource[model.User](ctx, c, model.SectionUsers, page, perPage, filters)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return lp, nil
}

// GetUser fetches one user with sensitive fields.
func (c *Client) GetUser(ctx context.Context, id int) (*model.User, error) {
	u, err := getData[model.User](ctx, c, idPath("/users", id))
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// RegisterUser validates in and creates the account.
func (c *Client) RegisterUser(ctx context.Context, in model.NewUser) (*model.User, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u, err := sendData[model.User](ctx, c, http.MethodPost, "/users/register", in)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return u, nil
}

// DeleteUser removes a user together with their items, reviews, messages and requests.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	if _, err := c.Delete(ctx, idPath("/users", id)); err != nil {
		classifyRejection(err, model.KindAdminUser, model.KindSelfDelete, model.KindPendingTrades)
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// ToggleUserStatus flips a user between active and disabled.
func (c *Client) ToggleUserStatus(ctx context.Context, id int) error {
	if _, err := c.Post(ctx, idPath("/users", id)+"/toggle-status", nil); err != nil {
		return fmt.Errorf("toggle user %d: %w", id, err)
	}
	return nil
}

// AdminCredentials is the body of POST /users/admin/login.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin checks an operator's username (or email) and password and
// requires the account to be an administrator.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (*model.User, error) {
	creds := AdminCredentials{Username: strings.TrimSpace(username), Password: password}
	if creds.Username == "" || creds.Password == "" {
		return nil, &model.ValidationError{Message: model.MsgRequiredFields}
	}
	u, err := sendData[model.User](ctx, c, http.MethodPost, "/users/admin/login", creds)
	if err != nil {
		return nil, fmt.Errorf("admin login: %w", err)
	}
	if u == nil || !u.IsAdmin {
		return nil, ErrNotAdmin
	}
	return u, nil
}

// VerifyAdmin checks that the backend recognises the caller as an administrator.
func (c *Client) VerifyAdmin(ctx context.Context) (*model.User, error) {
	u, err := getData[model.User](ctx, c, "/users/verify")
	if err != nil {
		return nil, fmt.Errorf("verify admin: %w", err)
	}
	if !u.IsAdmin {
		return nil, ErrNotAdmin
	}
	return u, nil
}

// CountUsers returns the number of registered users.
func (c *Client) CountUsers(ctx context.Context) (int, error) {
	return c.count(ctx, "/users/count")
}
