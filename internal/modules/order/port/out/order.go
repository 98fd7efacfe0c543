package out

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
)

type OrderAPI interface {
	Create(ctx context.Context, token string, draft domain.Draft) (domain.PlacedOrder, error)
	ListMine(ctx context.Context, token string) ([]domain.PlacedOrder, error)
}
