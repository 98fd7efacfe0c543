package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/domain"
	authout "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/out"
)

type HTTPAuthClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPAuthClient(baseURL string) authout.AuthAPI {
	return &HTTPAuthClient{baseURL: baseURL, client: &http.Client{Timeout: 15 * time.Second}}
}

// userPayload mirrors the identity fields the backend may emit, under either
// mongo-style or plain keys.
type userPayload struct {
	MongoID   string `json:"_id"`
	PlainID   string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
}

// authResponse accepts both backend shapes: identity nested under "user", or
// spread over the top level next to the token.
type authResponse struct {
	Token   string       `json:"token"`
	Message string       `json:"message"`
	User    *userPayload `json:"user"`
	userPayload
}

func (c *HTTPAuthClient) Login(ctx context.Context, email, password string) (domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.post(ctx, "/api/auth/login", body)
	if err != nil {
		return domain.Session{}, err
	}
	return resp, nil
}

func (c *HTTPAuthClient) Register(ctx context.Context, registration domain.Registration) (domain.Session, error) {
	resp, err := c.post(ctx, "/api/auth/register", registration)
	if err != nil {
		return domain.Session{}, err
	}
	return resp, nil
}

func (c *HTTPAuthClient) post(ctx context.Context, path string, body any) (domain.Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode auth request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return domain.Session{}, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth endpoint unreachable: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	var decoded authResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil && res.StatusCode < 300 {
		return domain.Session{}, fmt.Errorf("decode auth response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return domain.Session{}, &domain.AuthenticationError{Message: decoded.Message}
	}
	return domain.Session{User: normalizeUser(decoded), Token: decoded.Token}, nil
}

// normalizeUser flattens the accepted response shapes into one identity.
// Contract: the nested "user" object wins over top-level fields when present,
// and "_id" wins over "id" within a shape.
func normalizeUser(resp authResponse) *domain.User {
	payload := resp.userPayload
	if resp.User != nil {
		payload = *resp.User
	}
	id := payload.MongoID
	if id == "" {
		id = payload.PlainID
	}
	return &domain.User{
		ID:        id,
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		IsAdmin:   payload.IsAdmin,
	}
}
