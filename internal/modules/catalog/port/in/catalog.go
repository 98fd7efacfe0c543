package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
)

type Usecase interface {
	ListProducts(ctx context.Context, input dto.ListInput) (dto.ProductPageOutput, error)
	GetProduct(ctx context.Context, id string) (dto.ProductOutput, error)
	SearchProducts(ctx context.Context, query string) ([]dto.ProductOutput, error)
	ListCategories(ctx context.Context) ([]dto.CategoryOutput, error)

	// CachedProducts serves the last projected listing without touching the
	// backend; used by views that need an instant first paint.
	CachedProducts(ctx context.Context) ([]dto.ProductOutput, error)
}
