package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/admin/dto"
)

// Usecase is the back-office surface. Every operation requires an
// authenticated admin session; non-admins get apperrors.ErrNotAdmin before
// any request is made.
type Usecase interface {
	ListProducts(ctx context.Context) ([]dto.ProductOutput, error)
	CreateProduct(ctx context.Context, input dto.ProductDraftInput) (dto.ProductOutput, error)
	UpdateProduct(ctx context.Context, id string, input dto.ProductDraftInput) (dto.ProductOutput, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]dto.CategoryOutput, error)
	CreateCategory(ctx context.Context, input dto.CategoryDraftInput) (dto.CategoryOutput, error)
	UpdateCategory(ctx context.Context, id string, input dto.CategoryDraftInput) (dto.CategoryOutput, error)
	DeleteCategory(ctx context.Context, id string) error

	ListOrders(ctx context.Context) ([]dto.OrderOutput, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (dto.OrderOutput, error)

	ListUsers(ctx context.Context) ([]dto.UserOutput, error)
	GetUser(ctx context.Context, id string) (dto.UserOutput, error)
	UpdateUser(ctx context.Context, id string, input dto.UserUpdateInput) (dto.UserOutput, error)

	Stats(ctx context.Context) (dto.StatsOutput, error)
}
