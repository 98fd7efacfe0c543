package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
	cartin "github.com/Nickgiresse/aurastyle/internal/modules/cart/port/in"
)

type CLIHandler struct {
	usecase cartin.Usecase
}

func NewCLIHandler(usecase cartin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, product dto.ProductInput, quantity int, size string) (dto.CartOutput, error) {
	return h.usecase.AddItem(ctx, dto.AddItemInput{Product: product, Quantity: quantity, Size: size})
}

func (h CLIHandler) Remove(ctx context.Context, productID, size string) (dto.CartOutput, error) {
	return h.usecase.RemoveItem(ctx, productID, size)
}

func (h CLIHandler) SetQuantity(ctx context.Context, productID string, quantity int, size string) (dto.CartOutput, error) {
	return h.usecase.UpdateQuantity(ctx, productID, quantity, size)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.ClearCart(ctx)
}

func (h CLIHandler) Show(ctx context.Context) (dto.CartOutput, error) {
	return h.usecase.GetCart(ctx)
}
