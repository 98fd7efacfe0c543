package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
	orderout "github.com/Nickgiresse/aurastyle/internal/modules/order/port/out"
)

type HTTPOrderClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPOrderClient(baseURL string) orderout.OrderAPI {
	return &HTTPOrderClient{baseURL: baseURL, client: &http.Client{Timeout: 15 * time.Second}}
}

type orderItemPayload struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
}

type shippingAddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type createOrderPayload struct {
	Items           []orderItemPayload     `json:"items"`
	PromoCode       string                 `json:"promoCode"`
	FirstName       string                 `json:"firstName"`
	LastName        string                 `json:"lastName"`
	Phone           string                 `json:"phone"`
	ShippingAddress shippingAddressPayload `json:"shippingAddress"`
}

type orderPayload struct {
	MongoID    string    `json:"_id"`
	PlainID    string    `json:"id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"createdAt"`
	Message    string    `json:"message"`
}

func (p orderPayload) toDomain() domain.PlacedOrder {
	id := p.MongoID
	if id == "" {
		id = p.PlainID
	}
	total := p.TotalPrice
	if total == 0 {
		total = p.Total
	}
	return domain.PlacedOrder{ID: id, Status: p.Status, Total: total, CreatedAt: p.CreatedAt}
}

func (c *HTTPOrderClient) Create(ctx context.Context, token string, draft domain.Draft) (domain.PlacedOrder, error) {
	payload := createOrderPayload{
		PromoCode: draft.PromoCode,
		FirstName: draft.Customer.FirstName,
		LastName:  draft.Customer.LastName,
		Phone:     draft.Customer.Phone,
		ShippingAddress: shippingAddressPayload{
			Street:  draft.Customer.Street,
			City:    draft.Customer.City,
			Zip:     "00000",
			Country: "Cameroun",
		},
	}
	for _, line := range draft.Lines {
		size := line.Size
		if size == "" {
			size = "Unique"
		}
		payload.Items = append(payload.Items, orderItemPayload{
			Product:  line.ProductID,
			Quantity: line.Quantity,
			Size:     size,
			Price:    line.Price,
			Name:     line.Name,
			Image:    line.Image,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.client.Do(req)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("order endpoint unreachable: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	var decoded orderPayload
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil && res.StatusCode < 300 {
		return domain.PlacedOrder{}, fmt.Errorf("decode order response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		message := decoded.Message
		if message == "" {
			message = res.Status
		}
		return domain.PlacedOrder{}, fmt.Errorf("create order failed: %s", message)
	}
	placed := decoded.toDomain()
	if placed.ID == "" {
		return domain.PlacedOrder{}, fmt.Errorf("create order failed: backend returned no order id")
	}
	return placed, nil
}

func (c *HTTPOrderClient) ListMine(ctx context.Context, token string) ([]domain.PlacedOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/orders/mine", nil)
	if err != nil {
		return nil, fmt.Errorf("build orders request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order endpoint unreachable: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = res.Status
		}
		return nil, fmt.Errorf("list orders failed: %s", apiErr.Message)
	}
	var decoded []orderPayload
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}
	orders := make([]domain.PlacedOrder, 0, len(decoded))
	for _, order := range decoded {
		orders = append(orders, order.toDomain())
	}
	return orders, nil
}
