package usecase

import (
	"context"

	authin "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/in"
	cartin "github.com/Nickgiresse/aurastyle/internal/modules/cart/port/in"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/dto"
	orderin "github.com/Nickgiresse/aurastyle/internal/modules/order/port/in"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/service"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type Interactor struct {
	svc  *service.OrderService
	auth authin.Usecase
	cart cartin.Usecase
}

func NewInteractor(svc *service.OrderService, auth authin.Usecase, cart cartin.Usecase) orderin.Usecase {
	return &Interactor{svc: svc, auth: auth, cart: cart}
}

func (i *Interactor) Checkout(ctx context.Context, input dto.CheckoutInput) (dto.CheckoutOutput, error) {
	session, err := i.auth.Current(ctx)
	if err != nil {
		return dto.CheckoutOutput{}, err
	}
	cart, err := i.cart.GetCart(ctx)
	if err != nil {
		return dto.CheckoutOutput{}, err
	}
	if cart.ItemCount == 0 {
		return dto.CheckoutOutput{}, apperrors.ErrEmptyCart
	}

	customer := domain.CustomerInfo{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		City:      input.City,
		Street:    input.Street,
	}
	lines := make([]domain.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, domain.Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	promoApplied := i.svc.PromoApplies(input.PromoCode)
	quote := domain.NewQuote(cart.Total, promoApplied)
	draft := domain.Draft{Lines: lines, Customer: customer}
	if promoApplied {
		draft.PromoCode = domain.PromoCode
	}

	placed, err := i.svc.Place(ctx, session.Token, draft)
	if err != nil {
		return dto.CheckoutOutput{}, err
	}

	// Order creation succeeded; the checkout is committed even if clearing
	// the local cart fails afterwards.
	handoff := i.svc.HandoffURL(customer, lines, quote)
	_ = i.cart.ClearCart(ctx)
	return dto.CheckoutOutput{
		OrderID:     placed.ID,
		Subtotal:    quote.Subtotal,
		Discount:    quote.Discount,
		Shipping:    quote.Shipping,
		Total:       quote.Total,
		WhatsAppURL: handoff,
	}, nil
}

func (i *Interactor) ListMine(ctx context.Context) ([]dto.OrderOutput, error) {
	session, err := i.auth.Current(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := i.svc.ListMine(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderOutput, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.OrderOutput{
			ID:        order.ID,
			Status:    order.Status,
			Total:     order.Total,
			CreatedAt: order.CreatedAt,
		})
	}
	return out, nil
}
