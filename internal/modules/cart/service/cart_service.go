package service

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/cart/domain"
	cartout "github.com/Nickgiresse/aurastyle/internal/modules/cart/port/out"
	"github.com/Nickgiresse/aurastyle/internal/platform/clock"
)

const GuestKey = "cart-guest"

// CartService loads the active identity's cart, applies one mutation, and
// flushes it back. The storage key is re-resolved on every call so carts never
// leak across a login or logout.
type CartService struct {
	store    cartout.CartStore
	identity cartout.Identity
	clock    clock.Clock
}

func NewCartService(store cartout.CartStore, identity cartout.Identity, clk clock.Clock) *CartService {
	return &CartService{store: store, identity: identity, clock: clk}
}

func (s *CartService) storageKey(ctx context.Context) string {
	userID := s.identity.ActiveUserID(ctx)
	if userID == "" {
		return GuestKey
	}
	return "cart-" + userID
}

func (s *CartService) Get(ctx context.Context) (domain.Cart, error) {
	cart, err := s.store.Load(ctx, s.storageKey(ctx))
	if err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) Mutate(ctx context.Context, mutate func(*domain.Cart)) (domain.Cart, error) {
	key := s.storageKey(ctx)
	cart, err := s.store.Load(ctx, key)
	if err != nil {
		return domain.Cart{}, err
	}
	mutate(&cart)
	cart.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, key, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
