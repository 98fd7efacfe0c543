package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
	catalogout "github.com/Nickgiresse/aurastyle/internal/modules/catalog/port/out"
)

type HTTPCatalogClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPCatalogClient(baseURL string) catalogout.CatalogAPI {
	return &HTTPCatalogClient{baseURL: baseURL, client: &http.Client{Timeout: 15 * time.Second}}
}

// categoryPayload accepts both a bare name string and a {_id,name} object.
type categoryPayload struct {
	Name string
}

func (c *categoryPayload) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Name)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	c.Name = obj.Name
	return nil
}

type productPayload struct {
	MongoID     string          `json:"_id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Category    categoryPayload `json:"category"`
	Image       string          `json:"image"`
	Badge       string          `json:"badge"`
	Description string          `json:"description"`
	SubTitle    string          `json:"subTitle"`
	Sizes       []string        `json:"sizes"`
	Stock       *int            `json:"stock"`
	IsActive    *bool           `json:"isActive"`
}

type listingPayload struct {
	Products []productPayload `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
	Total    int              `json:"total"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// normalizeProduct maps the backend shape onto the storefront product.
// Contract: "_id" becomes ID; a missing image gets a picsum placeholder and a
// root-relative image is prefixed with the API base URL; sizes default to
// S/M/L/XL; stock defaults to 100 and isActive to true when omitted.
func (c *HTTPCatalogClient) normalizeProduct(p productPayload) domain.Product {
	image := p.Image
	if image == "" {
		image = "https://picsum.photos/400/500?random=" + p.MongoID
	} else if strings.HasPrefix(image, "/") {
		image = c.baseURL + image
	}
	sizes := p.Sizes
	if len(sizes) == 0 {
		sizes = []string{"S", "M", "L", "XL"}
	}
	stock := 100
	if p.Stock != nil {
		stock = *p.Stock
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return domain.Product{
		ID:          p.MongoID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category.Name,
		Image:       image,
		Badge:       p.Badge,
		Description: p.Description,
		SubTitle:    p.SubTitle,
		Sizes:       sizes,
		Stock:       stock,
		IsActive:    active,
	}
}

func (c *HTTPCatalogClient) ListProducts(ctx context.Context, query domain.ListQuery) (domain.ProductPage, error) {
	params := url.Values{}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if sort := wireSort(query.Sort); sort != "" {
		params.Set("sort", sort)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	var listing listingPayload
	if err := c.get(ctx, "/api/products?"+params.Encode(), &listing); err != nil {
		return domain.ProductPage{}, err
	}
	page := domain.ProductPage{Page: listing.Page, Pages: listing.Pages, Total: listing.Total}
	for _, p := range listing.Products {
		page.Products = append(page.Products, c.normalizeProduct(p))
	}
	return page, nil
}

func (c *HTTPCatalogClient) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var payload productPayload
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), &payload); err != nil {
		return domain.Product{}, err
	}
	return c.normalizeProduct(payload), nil
}

func (c *HTTPCatalogClient) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var listing listingPayload
	if err := c.get(ctx, "/api/products/search?q="+url.QueryEscape(query), &listing); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(listing.Products))
	for _, p := range listing.Products {
		products = append(products, c.normalizeProduct(p))
	}
	return products, nil
}

func (c *HTTPCatalogClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var payload []struct {
		MongoID string `json:"_id"`
		Name    string `json:"name"`
		Image   string `json:"image"`
	}
	if err := c.get(ctx, "/api/categories", &payload); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(payload))
	for _, cat := range payload {
		categories = append(categories, domain.Category{ID: cat.MongoID, Name: cat.Name, Image: cat.Image})
	}
	return categories, nil
}

// wireSort maps storefront sort names onto the backend's; "new" is the
// backend default and is not sent.
func wireSort(sort string) string {
	switch sort {
	case "", "new":
		return ""
	case "price-asc":
		return "price_asc"
	case "price-desc":
		return "price_desc"
	default:
		return sort
	}
}

func (c *HTTPCatalogClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog endpoint unreachable: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var apiErr errorPayload
		_ = json.NewDecoder(res.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = res.Status
		}
		return fmt.Errorf("catalog request failed: %s", apiErr.Message)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}
