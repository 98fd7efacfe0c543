package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/admin/dto"
	adminin "github.com/Nickgiresse/aurastyle/internal/modules/admin/port/in"
)

type CLIHandler struct {
	usecase adminin.Usecase
}

func NewCLIHandler(usecase adminin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListProducts(ctx context.Context) ([]dto.ProductOutput, error) {
	return h.usecase.ListProducts(ctx)
}

func (h CLIHandler) CreateProduct(ctx context.Context, input dto.ProductDraftInput) (dto.ProductOutput, error) {
	return h.usecase.CreateProduct(ctx, input)
}

func (h CLIHandler) UpdateProduct(ctx context.Context, id string, input dto.ProductDraftInput) (dto.ProductOutput, error) {
	return h.usecase.UpdateProduct(ctx, id, input)
}

func (h CLIHandler) DeleteProduct(ctx context.Context, id string) error {
	return h.usecase.DeleteProduct(ctx, id)
}

func (h CLIHandler) ListCategories(ctx context.Context) ([]dto.CategoryOutput, error) {
	return h.usecase.ListCategories(ctx)
}

func (h CLIHandler) CreateCategory(ctx context.Context, name, image string) (dto.CategoryOutput, error) {
	return h.usecase.CreateCategory(ctx, dto.CategoryDraftInput{Name: name, Image: image})
}

func (h CLIHandler) UpdateCategory(ctx context.Context, id, name, image string) (dto.CategoryOutput, error) {
	return h.usecase.UpdateCategory(ctx, id, dto.CategoryDraftInput{Name: name, Image: image})
}

func (h CLIHandler) DeleteCategory(ctx context.Context, id string) error {
	return h.usecase.DeleteCategory(ctx, id)
}

func (h CLIHandler) ListOrders(ctx context.Context) ([]dto.OrderOutput, error) {
	return h.usecase.ListOrders(ctx)
}

func (h CLIHandler) UpdateOrderStatus(ctx context.Context, orderID, status string) (dto.OrderOutput, error) {
	return h.usecase.UpdateOrderStatus(ctx, orderID, status)
}

func (h CLIHandler) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	return h.usecase.ListUsers(ctx)
}

func (h CLIHandler) GetUser(ctx context.Context, id string) (dto.UserOutput, error) {
	return h.usecase.GetUser(ctx, id)
}

func (h CLIHandler) UpdateUser(ctx context.Context, id string, input dto.UserUpdateInput) (dto.UserOutput, error) {
	return h.usecase.UpdateUser(ctx, id, input)
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
