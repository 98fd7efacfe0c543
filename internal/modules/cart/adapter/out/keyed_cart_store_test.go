package out_test

import (
	"context"
	"testing"

	adapter "github.com/Nickgiresse/aurastyle/internal/modules/cart/adapter/out"
	"github.com/Nickgiresse/aurastyle/internal/modules/cart/domain"
	"github.com/Nickgiresse/aurastyle/internal/platform/localstore"
)

func TestCartStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := adapter.NewKeyedCartStore(localstore.NewMemory())
	ctx := context.Background()

	var cart domain.Cart
	cart.Add(domain.Product{ID: "p1", Name: "Veste", Price: 25000}, 2, "M")

	if err := store.Save(ctx, "cart-u1", cart); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(ctx, "cart-u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ItemCount != 2 || loaded.Total != 50000 || len(loaded.Items) != 1 {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
	if loaded.Items[0].Product.Name != "Veste" || loaded.Items[0].Size != "M" {
		t.Fatalf("line fields lost: %+v", loaded.Items[0])
	}
}

func TestCartStoreMissingKeyIsEmptyCart(t *testing.T) {
	t.Parallel()
	store := adapter.NewKeyedCartStore(localstore.NewMemory())
	cart, err := store.Load(context.Background(), "cart-nobody")
	if err != nil {
		t.Fatalf("missing key must not error: %v", err)
	}
	if cart.ItemCount != 0 || cart.Items != nil {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestCartStoreCorruptPayloadDegradesToEmpty(t *testing.T) {
	t.Parallel()
	backing := localstore.NewMemory()
	ctx := context.Background()
	if err := backing.Put(ctx, "cart-u1", []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := adapter.NewKeyedCartStore(backing)
	cart, err := store.Load(ctx, "cart-u1")
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if cart.ItemCount != 0 || cart.Items != nil {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestCartStoreKeysAreIsolated(t *testing.T) {
	t.Parallel()
	store := adapter.NewKeyedCartStore(localstore.NewMemory())
	ctx := context.Background()

	var a domain.Cart
	a.Add(domain.Product{ID: "p1", Price: 1000}, 1, "")
	if err := store.Save(ctx, "cart-a", a); err != nil {
		t.Fatalf("save a: %v", err)
	}
	b, err := store.Load(ctx, "cart-b")
	if err != nil {
		t.Fatalf("load b: %v", err)
	}
	if b.ItemCount != 0 {
		t.Fatalf("cart-b must not see cart-a's lines: %+v", b)
	}
}
