package dto

type ListInput struct {
	Category string
	Sort     string
	Page     int
	Limit    int
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

type ProductPageOutput struct {
	Products []ProductOutput
	Page     int
	Pages    int
	Total    int
}

type CategoryOutput struct {
	ID    string
	Name  string
	Image string
}
