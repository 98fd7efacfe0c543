package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/order/dto"
	orderin "github.com/Nickgiresse/aurastyle/internal/modules/order/port/in"
)

type CLIHandler struct {
	usecase orderin.Usecase
}

func NewCLIHandler(usecase orderin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Checkout(ctx context.Context, firstName, lastName, phone, city, street, promoCode string) (dto.CheckoutOutput, error) {
	return h.usecase.Checkout(ctx, dto.CheckoutInput{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		City:      city,
		Street:    street,
		PromoCode: promoCode,
	})
}

func (h CLIHandler) ListMine(ctx context.Context) ([]dto.OrderOutput, error) {
	return h.usecase.ListMine(ctx)
}
