package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/account/dto"
)

type Usecase interface {
	Profile(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error)
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error
	UpdateAddress(ctx context.Context, input dto.UpdateAddressInput) error
	Wishlist(ctx context.Context) ([]dto.WishlistItemOutput, error)
	AddToWishlist(ctx context.Context, productID string) error
	RemoveFromWishlist(ctx context.Context, productID string) error
}
