package domain

import "fmt"

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Badge       string   `json:"badge,omitempty"`
	Description string   `json:"description,omitempty"`
	SubTitle    string   `json:"subTitle,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Stock       int      `json:"stock"`
	IsActive    bool     `json:"isActive"`
}

func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	return nil
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// ListQuery narrows a product listing. Sort accepts the storefront values
// "new" (default ordering, sent as nothing), "price-asc" and "price-desc".
type ListQuery struct {
	Category string
	Sort     string
	Page     int
	Limit    int
}

type ProductPage struct {
	Products []Product
	Page     int
	Pages    int
	Total    int
}
