package out_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "github.com/Nickgiresse/aurastyle/internal/modules/order/adapter/out"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
)

func draft() domain.Draft {
	return domain.Draft{
		Lines: []domain.Line{
			{ProductID: "p1", Name: "Robe Wax", Image: "img", Price: 15000, Quantity: 2, Size: "M"},
			{ProductID: "p2", Name: "Foulard", Price: 3000, Quantity: 1},
		},
		PromoCode: "AURA10",
		Customer: domain.CustomerInfo{
			FirstName: "Awa", LastName: "Mbarga", Phone: "690000000",
			City: "Douala", Street: "Rue 12, Akwa",
		},
	}
}

func TestCreateSendsExpectedPayload(t *testing.T) {
	t.Parallel()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("bearer token missing: %q", auth)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"_id":"o1","status":"pending","totalPrice":31000}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPOrderClient(srv.URL)
	placed, err := client.Create(context.Background(), "tok", draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if placed.ID != "o1" || placed.Status != "pending" || placed.Total != 31000 {
		t.Fatalf("placed order wrong: %+v", placed)
	}

	items, _ := got["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("items wrong: %v", got["items"])
	}
	second, _ := items[1].(map[string]any)
	if second["size"] != "Unique" {
		t.Errorf("sizeless line not sent as Unique: %v", second["size"])
	}
	address, _ := got["shippingAddress"].(map[string]any)
	if address["zip"] != "00000" || address["country"] != "Cameroun" {
		t.Errorf("shipping address defaults wrong: %v", address)
	}
	if got["promoCode"] != "AURA10" || got["firstName"] != "Awa" {
		t.Errorf("order header wrong: %v", got)
	}
}

func TestCreateAcceptsPlainIDAndTotal(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"o2","status":"pending","total":5000}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPOrderClient(srv.URL)
	placed, err := client.Create(context.Background(), "tok", draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if placed.ID != "o2" || placed.Total != 5000 {
		t.Fatalf("alternate shape not accepted: %+v", placed)
	}
}

func TestCreateFailureCarriesMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Stock insuffisant"}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPOrderClient(srv.URL)
	_, err := client.Create(context.Background(), "tok", draft())
	if err == nil || !strings.Contains(err.Error(), "Stock insuffisant") {
		t.Fatalf("backend message lost: %v", err)
	}
}

func TestCreateRejectsResponseWithoutID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"pending"}`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPOrderClient(srv.URL)
	if _, err := client.Create(context.Background(), "tok", draft()); err == nil {
		t.Fatal("id-less response accepted")
	}
}

func TestListMine(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/mine" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok" {
			t.Errorf("bearer token missing: %q", auth)
		}
		_, _ = w.Write([]byte(`[{"_id":"o1","status":"shipped","totalPrice":18000,"createdAt":"2026-08-01T12:00:00Z"}]`))
	}))
	defer srv.Close()

	client := adapter.NewHTTPOrderClient(srv.URL)
	orders, err := client.ListMine(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != "shipped" || orders[0].CreatedAt.IsZero() {
		t.Fatalf("orders wrong: %+v", orders)
	}
}
