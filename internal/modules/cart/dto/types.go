package dto

type ProductInput struct {
	ID       string
	Name     string
	Price    float64
	Category string
	Image    string
}

type AddItemInput struct {
	Product  ProductInput
	Quantity int
	Size     string
}

type LineOutput struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
	Size      string
	Subtotal  float64
}

type CartOutput struct {
	Items     []LineOutput
	Total     float64
	ItemCount int
}
