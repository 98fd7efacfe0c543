package domain_test

import (
	"strings"
	"testing"

	"github.com/Nickgiresse/aurastyle/internal/modules/order/domain"
)

func TestNewQuoteWithoutPromo(t *testing.T) {
	t.Parallel()
	quote := domain.NewQuote(8000, false)
	if quote.Discount != 0 {
		t.Errorf("unexpected discount %v", quote.Discount)
	}
	if quote.Shipping != domain.ShippingFee {
		t.Errorf("expected shipping on a small order, got %v", quote.Shipping)
	}
	if quote.Total != 10000 {
		t.Errorf("total = %v, want 10000", quote.Total)
	}
}

func TestNewQuotePromoTakesTenPercent(t *testing.T) {
	t.Parallel()
	quote := domain.NewQuote(20000, true)
	if quote.Discount != 2000 {
		t.Errorf("discount = %v, want 2000", quote.Discount)
	}
	if quote.Shipping != 0 {
		t.Errorf("expected free shipping, got %v", quote.Shipping)
	}
	if quote.Total != 18000 {
		t.Errorf("total = %v, want 18000", quote.Total)
	}
}

func TestNewQuoteShippingThresholdUsesDiscountedSubtotal(t *testing.T) {
	t.Parallel()
	// Subtotal clears the threshold but the discounted amount does not.
	quote := domain.NewQuote(10500, true)
	if quote.Shipping != domain.ShippingFee {
		t.Errorf("discounted subtotal %v should still pay shipping", quote.Subtotal-quote.Discount)
	}

	// Exactly at the threshold after discount ships free.
	quote = domain.NewQuote(10000, false)
	if quote.Shipping != 0 {
		t.Errorf("threshold boundary should ship free, got %v", quote.Shipping)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0 FCFA"},
		{500, "500 FCFA"},
		{2000, "2 000 FCFA"},
		{15000, "15 000 FCFA"},
		{1234567, "1 234 567 FCFA"},
		{999.6, "1 000 FCFA"},
		{-2000, "-2 000 FCFA"},
	}
	for _, tc := range cases {
		if got := domain.FormatPrice(tc.amount); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestCustomerInfoValidate(t *testing.T) {
	t.Parallel()
	complete := domain.CustomerInfo{
		FirstName: "Awa", LastName: "Mbarga", Phone: "690000000",
		City: "Douala", Street: "Rue 12, Akwa",
	}
	if err := complete.Validate(); err != nil {
		t.Fatalf("complete info rejected: %v", err)
	}

	missingPhone := complete
	missingPhone.Phone = "  "
	err := missingPhone.Validate()
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Fatalf("blank phone not caught: %v", err)
	}
}

func TestWhatsAppMessageContents(t *testing.T) {
	t.Parallel()
	customer := domain.CustomerInfo{
		FirstName: "Awa", LastName: "Mbarga", Phone: "690000000",
		City: "Douala", Street: "Rue 12, Akwa",
	}
	lines := []domain.Line{
		{Name: "Robe Wax", Price: 15000, Quantity: 2, Size: "M"},
		{Name: "Foulard", Price: 3000, Quantity: 1},
	}
	quote := domain.NewQuote(33000, false)

	msg := domain.WhatsAppMessage(customer, lines, quote)
	for _, want := range []string{
		"Awa Mbarga",
		"690000000",
		"Douala",
		"Robe Wax (x2)",
		"Taille: M",
		"30 000 FCFA",
		"Taille: N/A",
		"Total : 33 000 FCFA",
		"Gratuite",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message misses %q:\n%s", want, msg)
		}
	}
}

func TestWhatsAppMessageShowsShippingFee(t *testing.T) {
	t.Parallel()
	quote := domain.NewQuote(5000, false)
	msg := domain.WhatsAppMessage(domain.CustomerInfo{}, nil, quote)
	if !strings.Contains(msg, "2 000 FCFA") || strings.Contains(msg, "Gratuite") {
		t.Fatalf("paid shipping not shown:\n%s", msg)
	}
}

func TestWhatsAppURLEscaping(t *testing.T) {
	t.Parallel()
	got := domain.WhatsAppURL("237690021434", "Bonjour Aura & Style")
	if !strings.HasPrefix(got, "https://wa.me/237690021434?text=") {
		t.Fatalf("url shape wrong: %s", got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("spaces must be %%20, not +: %s", got)
	}
	if !strings.Contains(got, "Bonjour%20Aura%20%26%20Style") {
		t.Errorf("message not escaped: %s", got)
	}
}
