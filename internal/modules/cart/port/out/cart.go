package out

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/cart/domain"
)

// CartStore persists one cart per storage key. Load returns the empty cart,
// not an error, when nothing usable is stored under the key.
type CartStore interface {
	Load(ctx context.Context, key string) (domain.Cart, error)
	Save(ctx context.Context, key string, cart domain.Cart) error
}

// Identity reports which user owns the cart partition. It is consulted on
// every operation because the active identity can change between mutations.
type Identity interface {
	ActiveUserID(ctx context.Context) string
}
