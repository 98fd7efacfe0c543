package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
)

type Usecase interface {
	AddItem(ctx context.Context, input dto.AddItemInput) (dto.CartOutput, error)
	RemoveItem(ctx context.Context, productID, size string) (dto.CartOutput, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int, size string) (dto.CartOutput, error)
	ClearCart(ctx context.Context) error
	GetCart(ctx context.Context) (dto.CartOutput, error)
}
