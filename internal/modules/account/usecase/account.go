package usecase

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/account/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/account/dto"
	accountin "github.com/Nickgiresse/aurastyle/internal/modules/account/port/in"
	accountout "github.com/Nickgiresse/aurastyle/internal/modules/account/port/out"
	authin "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/in"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

// Interactor has no service layer: account operations hold no local state,
// they only forward to the backend with the session's token.
type Interactor struct {
	api  accountout.AccountAPI
	auth authin.Usecase
}

func NewInteractor(api accountout.AccountAPI, auth authin.Usecase) accountin.Usecase {
	return &Interactor{api: api, auth: auth}
}

func (i *Interactor) token(ctx context.Context) (string, error) {
	session, err := i.auth.Current(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

func (i *Interactor) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	token, err := i.token(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	profile, err := i.api.Profile(ctx, token)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error) {
	token, err := i.token(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	profile, err := i.api.UpdateProfile(ctx, token, domain.ProfileUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	})
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(profile), nil
}

func (i *Interactor) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.ErrInvalidInput
	}
	token, err := i.token(ctx)
	if err != nil {
		return err
	}
	return i.api.UpdatePassword(ctx, token, currentPassword, newPassword)
}

func (i *Interactor) UpdateAddress(ctx context.Context, input dto.UpdateAddressInput) error {
	address := domain.Address{
		Street:  input.Street,
		City:    input.City,
		Zip:     input.Zip,
		Country: input.Country,
	}
	if err := address.Validate(); err != nil {
		return err
	}
	token, err := i.token(ctx)
	if err != nil {
		return err
	}
	return i.api.UpdateAddress(ctx, token, address)
}

func (i *Interactor) Wishlist(ctx context.Context) ([]dto.WishlistItemOutput, error) {
	token, err := i.token(ctx)
	if err != nil {
		return nil, err
	}
	items, err := i.api.Wishlist(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WishlistItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.WishlistItemOutput{ID: item.ID, Name: item.Name, Price: item.Price, Image: item.Image})
	}
	return out, nil
}

func (i *Interactor) AddToWishlist(ctx context.Context, productID string) error {
	if productID == "" {
		return apperrors.ErrInvalidInput
	}
	token, err := i.token(ctx)
	if err != nil {
		return err
	}
	return i.api.AddToWishlist(ctx, token, productID)
}

func (i *Interactor) RemoveFromWishlist(ctx context.Context, productID string) error {
	if productID == "" {
		return apperrors.ErrInvalidInput
	}
	token, err := i.token(ctx)
	if err != nil {
		return err
	}
	return i.api.RemoveFromWishlist(ctx, token, productID)
}

func toOutput(profile domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{
		ID:        profile.ID,
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Phone:     profile.Phone,
		Address: dto.AddressOutput{
			Street:  profile.Address.Street,
			City:    profile.Address.City,
			Zip:     profile.Address.Zip,
			Country: profile.Address.Country,
		},
	}
}
