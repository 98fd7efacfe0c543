package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/domain"
	authout "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/out"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
	"github.com/Nickgiresse/aurastyle/internal/platform/localstore"
)

// SessionKey is the fixed storage name for the persisted session.
const SessionKey = "aura-auth"

// persistedSession matches the on-disk shape: {"state":{"user":…,"token":…}}.
type persistedSession struct {
	State struct {
		User  *domain.User `json:"user"`
		Token string       `json:"token"`
	} `json:"state"`
}

type KeyedSessionStore struct {
	store localstore.Store
}

func NewKeyedSessionStore(store localstore.Store) authout.SessionStore {
	return &KeyedSessionStore{store: store}
}

func (s *KeyedSessionStore) Save(ctx context.Context, session domain.Session) error {
	var record persistedSession
	record.State.User = session.User
	record.State.Token = session.Token
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.Put(ctx, SessionKey, payload); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Load returns the empty session when nothing is persisted or the payload is
// corrupt; persisted-state problems must never surface as login state.
func (s *KeyedSessionStore) Load(ctx context.Context) (domain.Session, error) {
	payload, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	var record persistedSession
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Session{}, nil
	}
	session := domain.Session{User: record.State.User, Token: record.State.Token}
	if session.Validate() != nil || !session.LoggedIn() {
		return domain.Session{}, nil
	}
	return session, nil
}

func (s *KeyedSessionStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
