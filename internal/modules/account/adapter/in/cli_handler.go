package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/account/dto"
	accountin "github.com/Nickgiresse/aurastyle/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, firstName, lastName, email, phone string) (dto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, dto.UpdateProfileInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
	})
}

func (h CLIHandler) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	return h.usecase.UpdatePassword(ctx, currentPassword, newPassword)
}

func (h CLIHandler) UpdateAddress(ctx context.Context, street, city, zip, country string) error {
	return h.usecase.UpdateAddress(ctx, dto.UpdateAddressInput{Street: street, City: city, Zip: zip, Country: country})
}

func (h CLIHandler) Wishlist(ctx context.Context) ([]dto.WishlistItemOutput, error) {
	return h.usecase.Wishlist(ctx)
}

func (h CLIHandler) AddToWishlist(ctx context.Context, productID string) error {
	return h.usecase.AddToWishlist(ctx, productID)
}

func (h CLIHandler) RemoveFromWishlist(ctx context.Context, productID string) error {
	return h.usecase.RemoveFromWishlist(ctx, productID)
}
