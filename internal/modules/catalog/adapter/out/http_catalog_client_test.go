package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "github.com/Nickgiresse/aurastyle/internal/modules/catalog/adapter/out"
	"github.com/Nickgiresse/aurastyle/internal/modules/catalog/domain"
)

func TestListProductsFillsBackendGaps(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"page":1,"pages":1,"total":1,"products":[
			{"_id":"p1","name":"Robe Wax","price":15000,"category":"Robes"}
		]}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	page, err := client.ListProducts(context.Background(), domain.ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Products) != 1 {
		t.Fatalf("want 1 product, got %d", len(page.Products))
	}
	p := page.Products[0]
	if p.ID != "p1" {
		t.Errorf("_id not mapped: %q", p.ID)
	}
	if p.Image != "https://picsum.photos/400/500?random=p1" {
		t.Errorf("missing image not replaced by placeholder: %q", p.Image)
	}
	if len(p.Sizes) != 4 || p.Sizes[0] != "S" || p.Sizes[3] != "XL" {
		t.Errorf("sizes not defaulted: %v", p.Sizes)
	}
	if p.Stock != 100 {
		t.Errorf("stock not defaulted: %d", p.Stock)
	}
	if !p.IsActive {
		t.Error("isActive not defaulted to true")
	}
}

func TestListProductsKeepsExplicitFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"products":[
			{"_id":"p2","name":"Chemise Lin","price":9000,
			 "category":{"_id":"c1","name":"Chemises"},
			 "image":"/uploads/p2.jpg","sizes":["M"],"stock":0,"isActive":false}
		]}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	page, err := client.ListProducts(context.Background(), domain.ListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	p := page.Products[0]
	if p.Category != "Chemises" {
		t.Errorf("category object not flattened: %q", p.Category)
	}
	if p.Image != srv.URL+"/uploads/p2.jpg" {
		t.Errorf("root-relative image not prefixed: %q", p.Image)
	}
	if p.Stock != 0 {
		t.Errorf("explicit zero stock overridden: %d", p.Stock)
	}
	if p.IsActive {
		t.Error("explicit isActive:false overridden")
	}
	if len(p.Sizes) != 1 || p.Sizes[0] != "M" {
		t.Errorf("explicit sizes overridden: %v", p.Sizes)
	}
}

func TestListProductsQueryTranslation(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"products":[]}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	_, err := client.ListProducts(context.Background(), domain.ListQuery{
		Category: "Robes", Sort: "price-asc", Page: 2, Limit: 12,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"category=Robes", "sort=price_asc", "page=2", "limit=12"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q misses %q", gotQuery, want)
		}
	}
}

func TestListProductsDefaultSortNotSent(t *testing.T) {
	t.Parallel()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"products":[]}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	if _, err := client.ListProducts(context.Background(), domain.ListQuery{Sort: "new"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.Contains(gotQuery, "sort=") {
		t.Errorf("default sort leaked to the wire: %q", gotQuery)
	}
}

func TestGetProductEscapesID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/products/p%2F1" {
			t.Errorf("id not escaped: %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"_id":"p/1","name":"Pagne","price":4000}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	p, err := client.GetProduct(context.Background(), "p/1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Pagne" {
		t.Fatalf("product wrong: %+v", p)
	}
}

func TestSearchProductsSendsQuery(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/search" || r.URL.Query().Get("q") != "robe wax" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"products":[{"_id":"p1","name":"Robe Wax","price":15000}]}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	products, err := client.SearchProducts(context.Background(), "robe wax")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("results wrong: %+v", products)
	}
}

func TestListCategories(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"c1","name":"Robes","image":"/uploads/c1.jpg"}]`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	categories, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Robes" {
		t.Fatalf("categories wrong: %+v", categories)
	}
}

func TestErrorPayloadMessageSurfaces(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Produit introuvable"}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPCatalogClient(srv.URL)
	_, err := client.GetProduct(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), "Produit introuvable") {
		t.Fatalf("backend message lost: %v", err)
	}
}
