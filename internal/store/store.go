package store

import (
	"context"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

// SessionStore persists operator sessions of the web console.
type SessionStore interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	// GetSession returns nil, nil when no session has the id.
	GetSession(ctx context.Context, id string) (*model.Session, error)
	TouchSession(ctx context.Context, id string) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
