package out_test

import (
	"context"
	"path/filepath"
	"testing"

	adapter "github.com/Nickgiresse/aurastyle/internal/modules/catalog/adapter/out"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
)

func TestProjectorReplaceThenList(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteListingProjector(filepath.Join(t.TempDir(), "aura.db"))
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	ctx := context.Background()

	first := []domain.Product{
		{ID: "p2", Name: "Chemise Lin", Price: 9000, Category: "Chemises", Sizes: []string{"M", "L"}, Stock: 5, IsActive: true},
		{ID: "p1", Name: "Boubou Brodé", Price: 22000, Category: "Boubous", Sizes: []string{"L"}, Stock: 2, IsActive: false},
	}
	if err := projector.Replace(ctx, first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := projector.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 products, got %d", len(got))
	}
	if got[0].Name != "Boubou Brodé" || got[1].Name != "Chemise Lin" {
		t.Errorf("listing not ordered by name: %q, %q", got[0].Name, got[1].Name)
	}
	if got[0].IsActive || !got[1].IsActive {
		t.Error("active flags lost in round trip")
	}
	if len(got[1].Sizes) != 2 || got[1].Sizes[0] != "M" {
		t.Errorf("sizes lost in round trip: %v", got[1].Sizes)
	}

	// A second replace must fully swap, not accumulate.
	if err := projector.Replace(ctx, []domain.Product{{ID: "p3", Name: "Pagne", Price: 4000, Stock: 1, IsActive: true}}); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = projector.List(ctx)
	if err != nil {
		t.Fatalf("list after swap: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("old projection survived the swap: %+v", got)
	}
}

func TestProjectorEmptyDatabase(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteListingProjector(filepath.Join(t.TempDir(), "aura.db"))
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	got, err := projector.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty projection, got %+v", got)
	}
}
