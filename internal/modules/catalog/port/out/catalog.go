package out

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
)

type CatalogAPI interface {
	ListProducts(ctx context.Context, query domain.ListQuery) (domain.ProductPage, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// ListingProjector keeps a local read model of the last product listing.
type ListingProjector interface {
	Replace(ctx context.Context, products []domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}
