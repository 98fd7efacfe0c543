package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Nickgiresse/aurastyle/internal/modules/admin/domain"
	adminout "github.com/Nickgiresse/aurastyle/internal/modules/admin/port/out"
)

type HTTPAdminClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAdminClient(baseURL string) adminout.AdminAPI {
	return &HTTPAdminClient{baseURL: baseURL, client: &http.Client{Timeout: 20 * time.Second}}
}

type adminProductPayload struct {
	MongoID     string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Image       string   `json:"image,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Description string   `json:"description,omitempty"`
	SubTitle    string   `json:"subTitle,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Stock       int      `json:"stock"`
	IsActive    bool     `json:"isActive"`
}

func (p adminProductPayload) toDomain() domain.Product {
	return domain.Product{
		ID:          p.MongoID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Badge:       p.Badge,
		Description: p.Description,
		SubTitle:    p.SubTitle,
		Sizes:       p.Sizes,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
	}
}

func draftPayload(draft domain.ProductDraft) adminProductPayload {
	return adminProductPayload{
		Name:        draft.Name,
		Price:       draft.Price,
		Category:    draft.Category,
		Image:       draft.Image,
		Badge:       draft.Badge,
		Description: draft.Description,
		SubTitle:    draft.SubTitle,
		Sizes:       draft.Sizes,
		Stock:       draft.Stock,
		IsActive:    draft.IsActive,
	}
}

type adminCategoryPayload struct {
	MongoID string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Image   string `json:"image,omitempty"`
}

type adminOrderPayload struct {
	MongoID    string    `json:"_id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (p adminOrderPayload) toDomain() domain.Order {
	return domain.Order{
		ID:        p.MongoID,
		Customer:  p.FirstName + " " + p.LastName,
		Status:    domain.OrderStatus(p.Status),
		Total:     p.TotalPrice,
		CreatedAt: p.CreatedAt,
	}
}

type adminUserPayload struct {
	MongoID   string    `json:"_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p adminUserPayload) toDomain() domain.User {
	return domain.User{
		ID:        p.MongoID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		IsAdmin:   p.IsAdmin,
		CreatedAt: p.CreatedAt,
	}
}

func (c *HTTPAdminClient) ListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	var payload []adminProductPayload
	if err := c.do(ctx, http.MethodGet, "/api/admin/products", token, nil, &payload); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toDomain())
	}
	return products, nil
}

func (c *HTTPAdminClient) CreateProduct(ctx context.Context, token string, draft domain.ProductDraft) (domain.Product, error) {
	var payload adminProductPayload
	if err := c.do(ctx, http.MethodPost, "/api/admin/products", token, draftPayload(draft), &payload); err != nil {
		return domain.Product{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAdminClient) UpdateProduct(ctx context.Context, token, id string, draft domain.ProductDraft) (domain.Product, error) {
	var payload adminProductPayload
	if err := c.do(ctx, http.MethodPut, "/api/admin/products/"+url.PathEscape(id), token, draftPayload(draft), &payload); err != nil {
		return domain.Product{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAdminClient) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), token, nil, nil)
}

func (c *HTTPAdminClient) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var payload []adminCategoryPayload
	if err := c.do(ctx, http.MethodGet, "/api/admin/categories", token, nil, &payload); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(payload))
	for _, p := range payload {
		categories = append(categories, domain.Category{ID: p.MongoID, Name: p.Name, Image: p.Image})
	}
	return categories, nil
}

func (c *HTTPAdminClient) CreateCategory(ctx context.Context, token string, draft domain.CategoryDraft) (domain.Category, error) {
	body := adminCategoryPayload{Name: draft.Name, Image: draft.Image}
	var payload adminCategoryPayload
	if err := c.do(ctx, http.MethodPost, "/api/admin/categories", token, body, &payload); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: payload.MongoID, Name: payload.Name, Image: payload.Image}, nil
}

func (c *HTTPAdminClient) UpdateCategory(ctx context.Context, token, id string, draft domain.CategoryDraft) (domain.Category, error) {
	body := adminCategoryPayload{Name: draft.Name, Image: draft.Image}
	var payload adminCategoryPayload
	if err := c.do(ctx, http.MethodPut, "/api/admin/categories/"+url.PathEscape(id), token, body, &payload); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: payload.MongoID, Name: payload.Name, Image: payload.Image}, nil
}

func (c *HTTPAdminClient) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/categories/"+url.PathEscape(id), token, nil, nil)
}

func (c *HTTPAdminClient) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var payload []adminOrderPayload
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", token, nil, &payload); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(payload))
	for _, p := range payload {
		orders = append(orders, p.toDomain())
	}
	return orders, nil
}

func (c *HTTPAdminClient) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) (domain.Order, error) {
	body := map[string]string{"status": string(status)}
	var payload adminOrderPayload
	if err := c.do(ctx, http.MethodPut, "/api/admin/orders/"+url.PathEscape(orderID), token, body, &payload); err != nil {
		return domain.Order{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAdminClient) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	var payload []adminUserPayload
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", token, nil, &payload); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(payload))
	for _, p := range payload {
		users = append(users, p.toDomain())
	}
	return users, nil
}

func (c *HTTPAdminClient) GetUser(ctx context.Context, token, id string) (domain.User, error) {
	var payload adminUserPayload
	if err := c.do(ctx, http.MethodGet, "/api/admin/users/"+url.PathEscape(id), token, nil, &payload); err != nil {
		return domain.User{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAdminClient) UpdateUser(ctx context.Context, token, id string, update domain.UserUpdate) (domain.User, error) {
	body := map[string]any{}
	if update.FirstName != "" {
		body["firstName"] = update.FirstName
	}
	if update.LastName != "" {
		body["lastName"] = update.LastName
	}
	if update.Email != "" {
		body["email"] = update.Email
	}
	if update.Phone != "" {
		body["phone"] = update.Phone
	}
	if update.IsAdmin != nil {
		body["isAdmin"] = *update.IsAdmin
	}
	var payload adminUserPayload
	if err := c.do(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(id), token, body, &payload); err != nil {
		return domain.User{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAdminClient) Stats(ctx context.Context, token string) (domain.Stats, error) {
	var payload struct {
		Revenue  float64 `json:"revenue"`
		Orders   int     `json:"orders"`
		Users    int     `json:"users"`
		Products int     `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, &payload); err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		Revenue:  payload.Revenue,
		Orders:   payload.Orders,
		Users:    payload.Users,
		Products: payload.Products,
	}, nil
}

func (c *HTTPAdminClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode admin request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build admin request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("admin endpoint unreachable: %w", err)
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
		return fmt.Errorf("admin request failed: %s", apiErr.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode admin response: %w", err)
	}
	return nil
}
