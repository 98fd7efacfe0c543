package dto

type AddressOutput struct {
	Street  string
	City    string
	Zip     string
	Country string
}

type ProfileOutput struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Address   AddressOutput
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type UpdateAddressInput struct {
	Street  string
	City    string
	Zip     string
	Country string
}

type WishlistItemOutput struct {
	ID    string
	Name  string
	Price float64
	Image string
}
