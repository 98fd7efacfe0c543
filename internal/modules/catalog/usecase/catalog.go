package usecase

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/dto"
	catalogin "github.com/Nickgiresse/aurastyle/internal/modules/catalog/port/in"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListProducts(ctx context.Context, input dto.ListInput) (dto.ProductPageOutput, error) {
	page, err := i.svc.ListProducts(ctx, domain.ListQuery{
		Category: input.Category,
		Sort:     input.Sort,
		Page:     input.Page,
		Limit:    input.Limit,
	})
	if err != nil {
		return dto.ProductPageOutput{}, err
	}
	out := dto.ProductPageOutput{Page: page.Page, Pages: page.Pages, Total: page.Total}
	for _, product := range page.Products {
		out.Products = append(out.Products, toOutput(product))
	}
	return out, nil
}

func (i *Interactor) GetProduct(ctx context.Context, id string) (dto.ProductOutput, error) {
	product, err := i.svc.GetProduct(ctx, id)
	if err != nil {
		return dto.ProductOutput{}, err
	}
	return toOutput(product), nil
}

func (i *Interactor) SearchProducts(ctx context.Context, query string) ([]dto.ProductOutput, error) {
	products, err := i.svc.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductOutput, 0, len(products))
	for _, product := range products {
		out = append(out, toOutput(product))
	}
	return out, nil
}

func (i *Interactor) ListCategories(ctx context.Context) ([]dto.CategoryOutput, error) {
	categories, err := i.svc.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.CategoryOutput{ID: category.ID, Name: category.Name, Image: category.Image})
	}
	return out, nil
}

func (i *Interactor) CachedProducts(ctx context.Context) ([]dto.ProductOutput, error) {
	products, err := i.svc.CachedProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductOutput, 0, len(products))
	for _, product := range products {
		out = append(out, toOutput(product))
	}
	return out, nil
}

func toOutput(product domain.Product) dto.ProductOutput {
	return dto.ProductOutput{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		Badge:       product.Badge,
		Description: product.Description,
		SubTitle:    product.SubTitle,
		Sizes:       product.Sizes,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
	}
}
