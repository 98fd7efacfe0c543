// Package localstore is the durable storage medium shared by the session and
// cart stores: an opaque byte payload per name, last write wins.
package localstore

import (
	"context"

	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type Store interface {
	// Get returns the payload stored under name, or apperrors.ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, payload []byte) error
	Delete(ctx context.Context, name string) error
}

// Memory is a map-backed Store for tests.
type Memory struct {
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, name string) ([]byte, error) {
	payload, ok := m.entries[name]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return payload, nil
}

func (m *Memory) Put(_ context.Context, name string, payload []byte) error {
	buf := make([]byte, len(payload))
	copy(buf, payload)
	m.entries[name] = buf
	return nil
}

func (m *Memory) Delete(_ context.Context, name string) error {
	delete(m.entries, name)
	return nil
}
