package service

import (
	"context"
	"strings"

	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
	orderout "github.com/Nickgiresse/aurastyle/internal/modules/order/port/out"
)

type OrderService struct {
	api           orderout.OrderAPI
	whatsAppPhone string
}

func NewOrderService(api orderout.OrderAPI, whatsAppPhone string) *OrderService {
	return &OrderService{api: api, whatsAppPhone: whatsAppPhone}
}

// PromoApplies reports whether the entered code earns the discount.
func (s *OrderService) PromoApplies(code string) bool {
	return strings.EqualFold(strings.TrimSpace(code), domain.PromoCode)
}

func (s *OrderService) Place(ctx context.Context, token string, draft domain.Draft) (domain.PlacedOrder, error) {
	if err := draft.Customer.Validate(); err != nil {
		return domain.PlacedOrder{}, err
	}
	return s.api.Create(ctx, token, draft)
}

func (s *OrderService) HandoffURL(customer domain.CustomerInfo, lines []domain.Line, quote domain.Quote) string {
	return domain.WhatsAppURL(s.whatsAppPhone, domain.WhatsAppMessage(customer, lines, quote))
}

func (s *OrderService) ListMine(ctx context.Context, token string) ([]domain.PlacedOrder, error) {
	return s.api.ListMine(ctx, token)
}
