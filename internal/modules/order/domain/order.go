package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// PromoCode is the only promo the storefront honors; it takes 10% off
	// the merchandise subtotal.
	PromoCode     = "AURA10"
	promoDiscount = 0.10

	// Shipping is free once the discounted subtotal reaches the threshold.
	FreeShippingThreshold = 10000
	ShippingFee           = 2000
)

type CustomerInfo struct {
	FirstName string
	LastName  string
	Phone     string
	City      string
	Street    string
}

func (c CustomerInfo) Validate() error {
	for _, field := range []struct{ name, value string }{
		{"first name", c.FirstName},
		{"last name", c.LastName},
		{"phone", c.Phone},
		{"city", c.City},
		{"address", c.Street},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}
	return nil
}

type Line struct {
	ProductID string
	Name      string
	Image     string
	Price     float64
	Quantity  int
	Size      string
}

type Draft struct {
	Lines     []Line
	PromoCode string
	Customer  CustomerInfo
}

type PlacedOrder struct {
	ID        string
	Status    string
	Total     float64
	CreatedAt time.Time
}

// Quote is the checkout price breakdown, derived in one place so the order
// payload and the WhatsApp summary can never disagree.
type Quote struct {
	Subtotal float64
	Discount float64
	Shipping float64
	Total    float64
}

func NewQuote(subtotal float64, promoApplied bool) Quote {
	quote := Quote{Subtotal: subtotal}
	if promoApplied {
		quote.Discount = subtotal * promoDiscount
	}
	discounted := subtotal - quote.Discount
	if discounted < FreeShippingThreshold {
		quote.Shipping = ShippingFee
	}
	quote.Total = discounted + quote.Shipping
	return quote
}

// FormatPrice renders an XAF amount the way the storefront does: no decimals,
// space-grouped thousands, FCFA suffix.
func FormatPrice(amount float64) string {
	n := int64(amount + 0.5)
	if amount < 0 {
		n = int64(amount - 0.5)
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, " ") + " FCFA"
}

// WhatsAppMessage builds the order summary the customer sends to the shop.
func WhatsAppMessage(customer CustomerInfo, lines []Line, quote Quote) string {
	var items []string
	for _, line := range lines {
		size := line.Size
		if size == "" {
			size = "N/A"
		}
		items = append(items, fmt.Sprintf("  • %s (x%d) — Taille: %s — %s",
			line.Name, line.Quantity, size, FormatPrice(line.Price*float64(line.Quantity))))
	}
	shipping := FormatPrice(ShippingFee)
	if quote.Shipping == 0 {
		shipping = "Gratuite"
	}
	return strings.TrimSpace(fmt.Sprintf(`🛍️ *NOUVELLE COMMANDE — Aura & Style*

👤 *Client :* %s %s
📞 *Téléphone :* %s
📍 *Ville :* %s
🏠 *Adresse :* %s

📦 *Articles commandés :*
%s

💰 *Total : %s*
🚚 *Livraison :* %s

Merci de confirmer la disponibilité et le délai de livraison. 🙏`,
		customer.FirstName, customer.LastName,
		customer.Phone, customer.City, customer.Street,
		strings.Join(items, "\n"),
		FormatPrice(quote.Total), shipping))
}

func WhatsAppURL(phone, message string) string {
	// wa.me expects %20 for spaces, not the form-style "+".
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + escaped
}
