package domain

import "fmt"

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (a Address) Validate() error {
	if a.Street == "" || a.City == "" {
		return fmt.Errorf("street and city are required")
	}
	return nil
}

type Profile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone,omitempty"`
	Address   Address `json:"address"`
}

// ProfileUpdate carries only the fields the user wants to change; empty
// fields are not sent.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// WishlistItem is the catalog summary the wishlist endpoints return.
type WishlistItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
