package out

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/admin/domain"
)

type AdminAPI interface {
	ListProducts(ctx context.Context, token string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, token string, draft domain.ProductDraft) (domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, draft domain.ProductDraft) (domain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, draft domain.CategoryDraft) (domain.Category, error)
	UpdateCategory(ctx context.Context, token, id string, draft domain.CategoryDraft) (domain.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (domain.Order, error)

	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	GetUser(ctx context.Context, token, id string) (domain.User, error)
	UpdateUser(ctx context.Context, token, id string, update domain.UserUpdate) (domain.User, error)

	Stats(ctx context.Context, token string) (domain.Stats, error)
}
