package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/order/dto"
)

type Usecase interface {
	// Checkout places the cart as an order, builds the WhatsApp handoff URL
	// and clears the cart. The cart is left untouched when anything fails.
	Checkout(ctx context.Context, input dto.CheckoutInput) (dto.CheckoutOutput, error)
	ListMine(ctx context.Context) ([]dto.OrderOutput, error)
}
