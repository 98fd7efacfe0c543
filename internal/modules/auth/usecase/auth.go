package usecase

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
	authin "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/in"
	authout "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/out"
	"github.com/Nickgiresse/aurastyle/internal/modules/auth/service"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type Interactor struct {
	svc *service.SessionService
	api authout.AuthAPI
}

func NewInteractor(svc *service.SessionService, api authout.AuthAPI) authin.Usecase {
	return &Interactor{svc: svc, api: api}
}

func (i *Interactor) Hydrate(ctx context.Context) error {
	return i.svc.Hydrate(ctx)
}

func (i *Interactor) Ready() <-chan struct{} {
	return i.svc.Ready()
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	if input.Email == "" || input.Password == "" {
		return dto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	session, err := i.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.svc.Install(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.SessionOutput, error) {
	registration := domain.Registration{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  input.Password,
	}
	if err := registration.Validate(); err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.api.Register(ctx, registration)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.svc.Install(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) SetFromRegistration(ctx context.Context, token string, user dto.UserInput) (dto.SessionOutput, error) {
	session := domain.Session{
		User: &domain.User{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			IsAdmin:   user.IsAdmin,
		},
		Token: token,
	}
	if err := i.svc.Install(ctx, session); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Current()
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if !session.LoggedIn() {
		return dto.SessionOutput{}, apperrors.ErrNotAuthenticated
	}
	return toOutput(session), nil
}

func toOutput(session domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		UserID:    session.User.ID,
		Email:     session.User.Email,
		FirstName: session.User.FirstName,
		LastName:  session.User.LastName,
		IsAdmin:   session.User.IsAdmin,
		Token:     session.Token,
	}
}
