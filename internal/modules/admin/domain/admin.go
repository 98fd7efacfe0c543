package domain

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Validate() error {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return nil
	default:
		return fmt.Errorf("unsupported order status %q", string(s))
	}
}

// ProductDraft is the writable product shape for create and update. Image is
// a URL; the web back-office's multipart upload is not part of this client.
type ProductDraft struct {
	Name        string
	Price       float64
	Category    string
	Image       string
	Badge       string
	Description string
	SubTitle    string
	Sizes       []string
	Stock       int
	IsActive    bool
}

func (d ProductDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if d.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if d.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}

type Product struct {
	ID          string
	Name        string
	Price       float64
	Category    string
	Image       string
	Badge       string
	Description string
	SubTitle    string
	Sizes       []string
	Stock       int
	IsActive    bool
}

type CategoryDraft struct {
	Name  string
	Image string
}

func (d CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	return nil
}

type Category struct {
	ID    string
	Name  string
	Image string
}

type Order struct {
	ID        string
	Customer  string
	Status    OrderStatus
	Total     float64
	CreatedAt time.Time
}

type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	IsAdmin   bool
	CreatedAt time.Time
}

// UserUpdate carries only the fields to change; IsAdmin is a pointer so
// "leave unchanged" and "demote" stay distinguishable.
type UserUpdate struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	IsAdmin   *bool
}

type Stats struct {
	Revenue  float64
	Orders   int
	Users    int
	Products int
}
