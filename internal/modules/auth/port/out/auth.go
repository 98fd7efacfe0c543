package out

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/domain"
)

// SessionStore persists the session across process restarts. Load returns the
// empty session, not an error, when nothing usable is persisted.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// AuthAPI is the backend's authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, registration domain.Registration) (domain.Session, error)
}
