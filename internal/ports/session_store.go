package ports

import (
	"context"

	"github.com/afyajamii/afya-cli/internal/domain"
)

// SessionStore owns the durable token/username/account-type triple. Current
// returns a zero-valued session (not an error) when nobody is logged in.
type SessionStore interface {
	Current(ctx context.Context) (domain.Session, error)
	Login(ctx context.Context, session domain.Session) error
	Logout(ctx context.Context) error
}
