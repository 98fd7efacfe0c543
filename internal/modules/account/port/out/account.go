package out

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/account/domain"
)

type AccountAPI interface {
	Profile(ctx context.Context, token string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, token string, update domain.ProfileUpdate) (domain.Profile, error)
	UpdatePassword(ctx context.Context, token, currentPassword, newPassword string) error
	UpdateAddress(ctx context.Context, token string, address domain.Address) error
	Wishlist(ctx context.Context, token string) ([]domain.WishlistItem, error)
	AddToWishlist(ctx context.Context, token, productID string) error
	RemoveFromWishlist(ctx context.Context, token, productID string) error
}
