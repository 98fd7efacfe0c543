package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	authdto "github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
	cartdto "github.com/Nickgiresse/aurastyle/internal/modules/cart/dto"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/dto"
	orderin "github.com/Nickgiresse/aurastyle/internal/modules/order/port/in"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/service"
	"github.com/Nickgiresse/aurastyle/internal/modules/order/usecase"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type fakeOrderAPI struct {
	placed  domain.PlacedOrder
	orders  []domain.PlacedOrder
	err     error
	creates int

	gotToken string
	gotDraft domain.Draft
}

func (f *fakeOrderAPI) Create(_ context.Context, token string, draft domain.Draft) (domain.PlacedOrder, error) {
	f.creates++
	f.gotToken = token
	f.gotDraft = draft
	return f.placed, f.err
}

func (f *fakeOrderAPI) ListMine(_ context.Context, token string) ([]domain.PlacedOrder, error) {
	f.gotToken = token
	return f.orders, f.err
}

type stubAuth struct {
	session authdto.SessionOutput
	err     error
}

func (s *stubAuth) Hydrate(context.Context) error { return nil }
func (s *stubAuth) Ready() <-chan struct{}        { return nil }
func (s *stubAuth) Login(context.Context, authdto.LoginInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{}, nil
}
func (s *stubAuth) Register(context.Context, authdto.RegisterInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{}, nil
}
func (s *stubAuth) SetFromRegistration(context.Context, string, authdto.UserInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{}, nil
}
func (s *stubAuth) Logout(context.Context) error { return nil }
func (s *stubAuth) Current(context.Context) (authdto.SessionOutput, error) {
	return s.session, s.err
}

type stubCart struct {
	cart    cartdto.CartOutput
	cleared int
}

func (s *stubCart) AddItem(context.Context, cartdto.AddItemInput) (cartdto.CartOutput, error) {
	return s.cart, nil
}
func (s *stubCart) RemoveItem(context.Context, string, string) (cartdto.CartOutput, error) {
	return s.cart, nil
}
func (s *stubCart) UpdateQuantity(context.Context, string, int, string) (cartdto.CartOutput, error) {
	return s.cart, nil
}
func (s *stubCart) ClearCart(context.Context) error {
	s.cleared++
	return nil
}
func (s *stubCart) GetCart(context.Context) (cartdto.CartOutput, error) {
	return s.cart, nil
}

func filledCart() cartdto.CartOutput {
	return cartdto.CartOutput{
		Items: []cartdto.LineOutput{
			{ProductID: "p1", Name: "Robe Wax", Price: 15000, Quantity: 2, Size: "M", Subtotal: 30000},
		},
		Total:     30000,
		ItemCount: 2,
	}
}

func customerInput() dto.CheckoutInput {
	return dto.CheckoutInput{
		FirstName: "Awa", LastName: "Mbarga", Phone: "690000000",
		City: "Douala", Street: "Rue 12, Akwa",
	}
}

func fixture(api *fakeOrderAPI, auth *stubAuth, cart *stubCart) orderin.Usecase {
	return usecase.NewInteractor(service.NewOrderService(api, "237690021434"), auth, cart)
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{placed: domain.PlacedOrder{ID: "o1", Status: "pending", Total: 30000}}
	auth := &stubAuth{session: authdto.SessionOutput{UserID: "u1", Token: "tok"}}
	cart := &stubCart{cart: filledCart()}

	out, err := fixture(api, auth, cart).Checkout(context.Background(), customerInput())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if api.gotToken != "tok" {
		t.Errorf("token not forwarded: %q", api.gotToken)
	}
	if len(api.gotDraft.Lines) != 1 || api.gotDraft.Lines[0].ProductID != "p1" {
		t.Errorf("cart lines not forwarded: %+v", api.gotDraft.Lines)
	}
	if out.OrderID != "o1" || out.Subtotal != 30000 || out.Total != 30000 {
		t.Errorf("output wrong: %+v", out)
	}
	if out.Shipping != 0 {
		t.Errorf("order above threshold should ship free, got %v", out.Shipping)
	}
	if !strings.HasPrefix(out.WhatsAppURL, "https://wa.me/237690021434?text=") {
		t.Errorf("handoff url wrong: %s", out.WhatsAppURL)
	}
	if cart.cleared != 1 {
		t.Errorf("cart cleared %d times, want 1", cart.cleared)
	}
}

func TestCheckoutAppliesPromoCaseInsensitively(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{placed: domain.PlacedOrder{ID: "o1"}}
	auth := &stubAuth{session: authdto.SessionOutput{Token: "tok"}}
	input := customerInput()
	input.PromoCode = " aura10 "

	out, err := fixture(api, auth, &stubCart{cart: filledCart()}).Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if out.Discount != 3000 {
		t.Errorf("discount = %v, want 3000", out.Discount)
	}
	if api.gotDraft.PromoCode != domain.PromoCode {
		t.Errorf("canonical promo code not sent: %q", api.gotDraft.PromoCode)
	}
}

func TestCheckoutUnknownPromoEarnsNothing(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{placed: domain.PlacedOrder{ID: "o1"}}
	auth := &stubAuth{session: authdto.SessionOutput{Token: "tok"}}
	input := customerInput()
	input.PromoCode = "STYLE20"

	out, err := fixture(api, auth, &stubCart{cart: filledCart()}).Checkout(context.Background(), input)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if out.Discount != 0 || api.gotDraft.PromoCode != "" {
		t.Errorf("unknown code honored: %+v draft=%q", out, api.gotDraft.PromoCode)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{}
	auth := &stubAuth{session: authdto.SessionOutput{Token: "tok"}}

	_, err := fixture(api, auth, &stubCart{}).Checkout(context.Background(), customerInput())
	if !errors.Is(err, apperrors.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
	if api.creates != 0 {
		t.Error("order placed despite empty cart")
	}
}

func TestCheckoutRequiresSession(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{}
	auth := &stubAuth{err: apperrors.ErrNotAuthenticated}

	_, err := fixture(api, auth, &stubCart{cart: filledCart()}).Checkout(context.Background(), customerInput())
	if !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated, got %v", err)
	}
	if api.creates != 0 {
		t.Error("order placed without a session")
	}
}

func TestCheckoutIncompleteCustomerKeepsCart(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{}
	auth := &stubAuth{session: authdto.SessionOutput{Token: "tok"}}
	cart := &stubCart{cart: filledCart()}
	input := customerInput()
	input.City = ""

	_, err := fixture(api, auth, cart).Checkout(context.Background(), input)
	if err == nil || !strings.Contains(err.Error(), "city") {
		t.Fatalf("missing city not caught: %v", err)
	}
	if api.creates != 0 || cart.cleared != 0 {
		t.Errorf("side effects despite validation failure: creates=%d cleared=%d", api.creates, cart.cleared)
	}
}

func TestCheckoutBackendFailureKeepsCart(t *testing.T) {
	t.Parallel()
	api := &fakeOrderAPI{err: errors.New("backend down")}
	auth := &stubAuth{session: authdto.SessionOutput{Token: "tok"}}
	cart := &stubCart{cart: filledCart()}

	_, err := fixture(api, auth, cart).Checkout(context.Background(), customerInput())
	if err == nil {
		t.Fatal("backend failure swallowed")
	}
	if cart.cleared != 0 {
		t.Error("cart cleared although the order was not placed")
	}
}

func TestListMine(t *testing.T) {
	t.Parallel()
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeOrderAPI{orders: []domain.PlacedOrder{{ID: "o1", Status: "shipped", Total: 18000, CreatedAt: created}}}
	auth := &stubAuth{session: authdto.SessionOutput{Token: "tok"}}

	out, err := fixture(api, auth, &stubCart{}).ListMine(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if api.gotToken != "tok" {
		t.Errorf("token not forwarded: %q", api.gotToken)
	}
	if len(out) != 1 || out[0].Status != "shipped" || !out[0].CreatedAt.Equal(created) {
		t.Fatalf("orders wrong: %+v", out)
	}
}

func TestListMineRequiresSession(t *testing.T) {
	t.Parallel()
	auth := &stubAuth{err: apperrors.ErrNotAuthenticated}
	_, err := fixture(&fakeOrderAPI{}, auth, &stubCart{}).ListMine(context.Background())
	if !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated, got %v", err)
	}
}
