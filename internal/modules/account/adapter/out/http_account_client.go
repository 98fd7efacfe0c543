package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Nickgiresse/aurastyle/internal/modules/account/domain"
	accountout "github.com/Nickgiresse/aurastyle/internal/modules/account/port/out"
)

type HTTPAccountClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAccountClient(baseURL string) accountout.AccountAPI {
	return &HTTPAccountClient{baseURL: baseURL, client: &http.Client{Timeout: 15 * time.Second}}
}

type profilePayload struct {
	MongoID   string `json:"_id"`
	PlainID   string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	} `json:"address"`
}

func (p profilePayload) toDomain() domain.Profile {
	id := p.MongoID
	if id == "" {
		id = p.PlainID
	}
	return domain.Profile{
		ID:        id,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Address: domain.Address{
			Street:  p.Address.Street,
			City:    p.Address.City,
			Zip:     p.Address.Zip,
			Country: p.Address.Country,
		},
	}
}

func (c *HTTPAccountClient) Profile(ctx context.Context, token string) (domain.Profile, error) {
	var payload profilePayload
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", token, nil, &payload); err != nil {
		return domain.Profile{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAccountClient) UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (domain.Profile, error) {
	body := map[string]string{}
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
	var payload profilePayload
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", token, body, &payload); err != nil {
		return domain.Profile{}, err
	}
	return payload.toDomain(), nil
}

func (c *HTTPAccountClient) UpdatePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPut, "/api/users/password", token, body, nil)
}

func (c *HTTPAccountClient) UpdateAddress(ctx context.Context, token string, address domain.Address) error {
	return c.do(ctx, http.MethodPut, "/api/users/address", token, address, nil)
}

func (c *HTTPAccountClient) Wishlist(ctx context.Context, token string) ([]domain.WishlistItem, error) {
	var payload []struct {
		MongoID string  `json:"_id"`
		Name    string  `json:"name"`
		Price   float64 `json:"price"`
		Image   string  `json:"image"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/wishlist", token, nil, &payload); err != nil {
		return nil, err
	}
	items := make([]domain.WishlistItem, 0, len(payload))
	for _, item := range payload {
		items = append(items, domain.WishlistItem{ID: item.MongoID, Name: item.Name, Price: item.Price, Image: item.Image})
	}
	return items, nil
}

func (c *HTTPAccountClient) AddToWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodPost, "/api/users/wishlist/"+url.PathEscape(productID), token, nil, nil)
}

func (c *HTTPAccountClient) RemoveFromWishlist(ctx context.Context, token, productID string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/wishlist/"+url.PathEscape(productID), token, nil, nil)
}

func (c *HTTPAccountClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode account request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build account request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("account endpoint unreachable: %w", err)
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
		return fmt.Errorf("account request failed: %s", apiErr.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode account response: %w", err)
	}
	return nil
}
