package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
	catalogin "github.com/Nickgiresse/aurastyle/internal/modules/catalog/port/in"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/service"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/usecase"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type fakeCatalogAPI struct {
	page       domain.ProductPage
	product    domain.Product
	results    []domain.Product
	categories []domain.Category
	err        error

	gotQuery  domain.ListQuery
	gotID     string
	gotSearch string
}

func (f *fakeCatalogAPI) ListProducts(_ context.Context, query domain.ListQuery) (domain.ProductPage, error) {
	f.gotQuery = query
	return f.page, f.err
}

func (f *fakeCatalogAPI) GetProduct(_ context.Context, id string) (domain.Product, error) {
	f.gotID = id
	return f.product, f.err
}

func (f *fakeCatalogAPI) SearchProducts(_ context.Context, query string) ([]domain.Product, error) {
	f.gotSearch = query
	return f.results, f.err
}

func (f *fakeCatalogAPI) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

type fakeProjector struct {
	projected []domain.Product
	replaces  int
	err       error
}

func (f *fakeProjector) Replace(_ context.Context, products []domain.Product) error {
	f.replaces++
	if f.err != nil {
		return f.err
	}
	f.projected = products
	return nil
}

func (f *fakeProjector) List(context.Context) ([]domain.Product, error) {
	return f.projected, f.err
}

func fixture(api *fakeCatalogAPI, projector *fakeProjector) catalogin.Usecase {
	return usecase.NewInteractor(service.NewCatalogService(api, projector))
}

func TestListProductsProjectsListing(t *testing.T) {
	t.Parallel()
	api := &fakeCatalogAPI{page: domain.ProductPage{
		Products: []domain.Product{{ID: "p1", Name: "Robe Wax", Price: 15000}},
		Page:     1, Pages: 3, Total: 25,
	}}
	projector := &fakeProjector{}
	uc := fixture(api, projector)

	out, err := uc.ListProducts(context.Background(), dto.ListInput{Category: "Robes", Sort: "price-asc", Page: 1, Limit: 12})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if api.gotQuery.Category != "Robes" || api.gotQuery.Sort != "price-asc" {
		t.Errorf("query not forwarded: %+v", api.gotQuery)
	}
	if out.Total != 25 || len(out.Products) != 1 || out.Products[0].ID != "p1" {
		t.Errorf("page output wrong: %+v", out)
	}
	if projector.replaces != 1 || len(projector.projected) != 1 {
		t.Errorf("listing not projected: %d replaces", projector.replaces)
	}
}

func TestListProductsSurvivesProjectorFailure(t *testing.T) {
	t.Parallel()
	api := &fakeCatalogAPI{page: domain.ProductPage{Products: []domain.Product{{ID: "p1"}}}}
	projector := &fakeProjector{err: errors.New("disk full")}
	uc := fixture(api, projector)

	out, err := uc.ListProducts(context.Background(), dto.ListInput{})
	if err != nil {
		t.Fatalf("projection failure must not fail the listing: %v", err)
	}
	if len(out.Products) != 1 {
		t.Fatalf("listing lost: %+v", out)
	}
}

func TestGetProductRequiresID(t *testing.T) {
	t.Parallel()
	api := &fakeCatalogAPI{}
	uc := fixture(api, &fakeProjector{})

	if _, err := uc.GetProduct(context.Background(), "  "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	if api.gotID != "" {
		t.Error("backend reached despite blank id")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	t.Parallel()
	api := &fakeCatalogAPI{}
	uc := fixture(api, &fakeProjector{})

	if _, err := uc.SearchProducts(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestSearchForwardsQuery(t *testing.T) {
	t.Parallel()
	api := &fakeCatalogAPI{results: []domain.Product{{ID: "p1", Name: "Robe Wax"}}}
	uc := fixture(api, &fakeProjector{})

	out, err := uc.SearchProducts(context.Background(), "robe")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if api.gotSearch != "robe" || len(out) != 1 {
		t.Fatalf("search not forwarded: %q %+v", api.gotSearch, out)
	}
}

func TestCachedProductsReadsProjection(t *testing.T) {
	t.Parallel()
	projector := &fakeProjector{projected: []domain.Product{{ID: "p1", Name: "Robe Wax", Price: 15000}}}
	uc := fixture(&fakeCatalogAPI{err: errors.New("offline")}, projector)

	out, err := uc.CachedProducts(context.Background())
	if err != nil {
		t.Fatalf("cached: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Robe Wax" {
		t.Fatalf("projection not served: %+v", out)
	}
}

func TestListCategoriesMapsOutput(t *testing.T) {
	t.Parallel()
	api := &fakeCatalogAPI{categories: []domain.Category{{ID: "c1", Name: "Robes", Image: "img"}}}
	uc := fixture(api, &fakeProjector{})

	out, err := uc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Robes" {
		t.Fatalf("categories wrong: %+v", out)
	}
}
