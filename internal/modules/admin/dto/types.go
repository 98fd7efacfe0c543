package dto

import "time"

type ProductDraftInput struct {
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

type ProductOutput struct {
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

type CategoryDraftInput struct {
	Name  string
	Image string
}

type CategoryOutput struct {
	ID    string
	Name  string
	Image string
}

type OrderOutput struct {
	ID        string
	Customer  string
	Status    string
	Total     float64
	CreatedAt time.Time
}

type UserOutput struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	IsAdmin   bool
	CreatedAt time.Time
}

type UserUpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	IsAdmin   *bool
}

type StatsOutput struct {
	Revenue  float64
	Orders   int
	Users    int
	Products int
}
