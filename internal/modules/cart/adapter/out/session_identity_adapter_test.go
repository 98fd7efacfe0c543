package out_test

import (
	"context"
	"testing"

	authdto "github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
	adapter "github.com/Nickgiresse/aurastyle/internal/modules/cart/adapter/out"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type stubAuth struct {
	session authdto.SessionOutput
	err     error
}

func (s *stubAuth) Hydrate(context.Context) error { return nil }
func (s *stubAuth) Ready() <-chan struct{}        { return nil }
func (s *stubAuth) Login(context.Context, authdto.LoginInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{}, nil
}
func (s *stubAuth) Register(context.Context, authdto.RegisterInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{}, nil
}
func (s *stubAuth) SetFromRegistration(context.Context, string, authdto.UserInput) (authdto.SessionOutput, error) {
	return authdto.SessionOutput{}, nil
}
func (s *stubAuth) Logout(context.Context) error { return nil }
func (s *stubAuth) Current(context.Context) (authdto.SessionOutput, error) {
	return s.session, s.err
}

func TestActiveUserIDFromSession(t *testing.T) {
	t.Parallel()
	identity := adapter.NewSessionIdentityAdapter(&stubAuth{
		session: authdto.SessionOutput{UserID: "u42", Email: "a@b.cm", Token: "t"},
	})
	if got := identity.ActiveUserID(context.Background()); got != "u42" {
		t.Fatalf("ActiveUserID = %q, want u42", got)
	}
}

func TestActiveUserIDGuestOnError(t *testing.T) {
	t.Parallel()
	for _, err := range []error{apperrors.ErrNotAuthenticated, apperrors.ErrNotHydrated} {
		identity := adapter.NewSessionIdentityAdapter(&stubAuth{err: err})
		if got := identity.ActiveUserID(context.Background()); got != "" {
			t.Fatalf("ActiveUserID with %v = %q, want guest", err, got)
		}
	}
}
