package dto

import "time"

type CheckoutInput struct {
	FirstName string
	LastName  string
	Phone     string
	City      string
	Street    string
	PromoCode string
}

type CheckoutOutput struct {
	OrderID     string
	Subtotal    float64
	Discount    float64
	Shipping    float64
	Total       float64
	WhatsAppURL string
}

type OrderOutput struct {
	ID        string
	Status    string
	Total     float64
	CreatedAt time.Time
}
