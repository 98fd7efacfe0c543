package service

import (
	"context"
	"strings"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
	catalogout "github.com/Nickgiresse/aurastyle/internal/modules/catalog/port/out"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type CatalogService struct {
	api       catalogout.CatalogAPI
	projector catalogout.ListingProjector
}

func NewCatalogService(api catalogout.CatalogAPI, projector catalogout.ListingProjector) *CatalogService {
	return &CatalogService{api: api, projector: projector}
}

func (s *CatalogService) ListProducts(ctx context.Context, query domain.ListQuery) (domain.ProductPage, error) {
	page, err := s.api.ListProducts(ctx, query)
	if err != nil {
		return domain.ProductPage{}, err
	}
	if s.projector != nil {
		_ = s.projector.Replace(ctx, page.Products)
	}
	return page, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, apperrors.ErrInvalidInput
	}
	return s.api.GetProduct(ctx, id)
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.api.SearchProducts(ctx, query)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.api.ListCategories(ctx)
}

func (s *CatalogService) CachedProducts(ctx context.Context) ([]domain.Product, error) {
	if s.projector == nil {
		return nil, nil
	}
	return s.projector.List(ctx)
}
