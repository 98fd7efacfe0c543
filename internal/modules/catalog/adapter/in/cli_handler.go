package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
	catalogin "github.com/Nickgiresse/aurastyle/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, category, sort string, page, limit int) (dto.ProductPageOutput, error) {
	return h.usecase.ListProducts(ctx, dto.ListInput{Category: category, Sort: sort, Page: page, Limit: limit})
}

func (h CLIHandler) Get(ctx context.Context, id string) (dto.ProductOutput, error) {
	return h.usecase.GetProduct(ctx, id)
}

func (h CLIHandler) Search(ctx context.Context, query string) ([]dto.ProductOutput, error) {
	return h.usecase.SearchProducts(ctx, query)
}

func (h CLIHandler) Categories(ctx context.Context) ([]dto.CategoryOutput, error) {
	return h.usecase.ListCategories(ctx)
}

// Cached serves the last projected listing without touching the backend.
func (h CLIHandler) Cached(ctx context.Context) ([]dto.ProductOutput, error) {
	return h.usecase.CachedProducts(ctx)
}
