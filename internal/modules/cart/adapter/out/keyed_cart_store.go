package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Nickgiresse/aurastyle/internal/modules/cart/domain"
	cartout "github.com/Nickgiresse/aurastyle/internal/modules/cart/port/out"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
	"github.com/Nickgiresse/aurastyle/internal/platform/localstore"
)

type KeyedCartStore struct {
	store localstore.Store
}

func NewKeyedCartStore(store localstore.Store) cartout.CartStore {
	return &KeyedCartStore{store: store}
}

// Load returns the empty cart when the key is absent or the payload does not
// parse; a broken cart record is treated as no prior cart.
func (s *KeyedCartStore) Load(ctx context.Context, key string) (domain.Cart, error) {
	payload, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("load cart %s: %w", key, err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (s *KeyedCartStore) Save(ctx context.Context, key string, cart domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("persist cart %s: %w", key, err)
	}
	return nil
}
