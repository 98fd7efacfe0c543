package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
)

type Usecase interface {
	// Hydrate restores the persisted session. It runs once; later calls are
	// no-ops. Consumers must not read Current before Ready is closed.
	Hydrate(ctx context.Context) error
	Ready() <-chan struct{}

	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.SessionOutput, error)
	SetFromRegistration(ctx context.Context, token string, user dto.UserInput) (dto.SessionOutput, error)
	Logout(ctx context.Context) error

	// Current returns the active session, apperrors.ErrNotHydrated before
	// hydration, or apperrors.ErrNotAuthenticated when logged out.
	Current(ctx context.Context) (dto.SessionOutput, error)
}
