package service

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/domain"
	authout "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/out"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

// SessionService is the in-memory session container. Execution is
// single-threaded (UI-event driven), so no locking is needed; the ready
// channel only signals that hydration ran.
type SessionService struct {
	store    authout.SessionStore
	current  domain.Session
	hydrated bool
	ready    chan struct{}
}

func NewSessionService(store authout.SessionStore) *SessionService {
	return &SessionService{store: store, ready: make(chan struct{})}
}

func (s *SessionService) Hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}
	session, err := s.store.Load(ctx)
	if err != nil {
		// Unreadable persisted state degrades to logged out.
		session = domain.Session{}
	}
	s.current = session
	s.hydrated = true
	close(s.ready)
	return nil
}

func (s *SessionService) Ready() <-chan struct{} {
	return s.ready
}

func (s *SessionService) Current() (domain.Session, error) {
	if !s.hydrated {
		return domain.Session{}, apperrors.ErrNotHydrated
	}
	return s.current, nil
}

// Install sets user and token together and flushes to the store.
func (s *SessionService) Install(ctx context.Context, session domain.Session) error {
	if !session.LoggedIn() {
		return apperrors.ErrInvalidInput
	}
	s.current = session
	return s.store.Save(ctx, session)
}

// Clear drops user and token together. Idempotent; logout never calls the
// backend.
func (s *SessionService) Clear(ctx context.Context) error {
	s.current = domain.Session{}
	return s.store.Clear(ctx)
}
