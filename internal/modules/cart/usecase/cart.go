package usecase

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/cart/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
	cartin "github.com/Nickgiresse/aurastyle/internal/modules/cart/port/in"
	"github.com/Nickgiresse/aurastyle/internal/modules/cart/service"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type Interactor struct {
	svc *service.CartService
}

func NewInteractor(svc *service.CartService) cartin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddItem(ctx context.Context, input dto.AddItemInput) (dto.CartOutput, error) {
	if input.Product.ID == "" {
		return dto.CartOutput{}, apperrors.ErrInvalidInput
	}
	product := domain.Product{
		ID:       input.Product.ID,
		Name:     input.Product.Name,
		Price:    input.Product.Price,
		Category: input.Product.Category,
		Image:    input.Product.Image,
	}
	cart, err := i.svc.Mutate(ctx, func(c *domain.Cart) {
		c.Add(product, input.Quantity, input.Size)
	})
	if err != nil {
		return dto.CartOutput{}, err
	}
	return toOutput(cart), nil
}

func (i *Interactor) RemoveItem(ctx context.Context, productID, size string) (dto.CartOutput, error) {
	if productID == "" {
		return dto.CartOutput{}, apperrors.ErrInvalidInput
	}
	cart, err := i.svc.Mutate(ctx, func(c *domain.Cart) {
		c.Remove(productID, size)
	})
	if err != nil {
		return dto.CartOutput{}, err
	}
	return toOutput(cart), nil
}

func (i *Interactor) UpdateQuantity(ctx context.Context, productID string, quantity int, size string) (dto.CartOutput, error) {
	if productID == "" {
		return dto.CartOutput{}, apperrors.ErrInvalidInput
	}
	cart, err := i.svc.Mutate(ctx, func(c *domain.Cart) {
		c.UpdateQuantity(productID, quantity, size)
	})
	if err != nil {
		return dto.CartOutput{}, err
	}
	return toOutput(cart), nil
}

func (i *Interactor) ClearCart(ctx context.Context) error {
	_, err := i.svc.Mutate(ctx, func(c *domain.Cart) {
		c.Clear()
	})
	return err
}

func (i *Interactor) GetCart(ctx context.Context) (dto.CartOutput, error) {
	cart, err := i.svc.Get(ctx)
	if err != nil {
		return dto.CartOutput{}, err
	}
	return toOutput(cart), nil
}

func toOutput(cart domain.Cart) dto.CartOutput {
	out := dto.CartOutput{Total: cart.Total, ItemCount: cart.ItemCount}
	for _, line := range cart.Items {
		out.Items = append(out.Items, dto.LineOutput{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Subtotal:  line.Product.Price * float64(line.Quantity),
		})
	}
	return out
}
