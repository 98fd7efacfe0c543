package out

import (
	"context"

	authin "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/in"
	cartout "github.com/Nickgiresse/aurastyle/internal/modules/cart/port/out"
)

// SessionIdentityAdapter resolves the cart partition owner from the session
// store. Anything short of a logged-in session maps to the guest partition.
type SessionIdentityAdapter struct {
	auth authin.Usecase
}

func NewSessionIdentityAdapter(auth authin.Usecase) cartout.Identity {
	return &SessionIdentityAdapter{auth: auth}
}

func (a *SessionIdentityAdapter) ActiveUserID(ctx context.Context) string {
	session, err := a.auth.Current(ctx)
	if err != nil {
		return ""
	}
	return session.UserID
}
