package in

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/auth/dto"
	authin "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.SessionOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, firstName, lastName, email, phone, password string) (dto.SessionOutput, error) {
	return h.usecase.Register(ctx, dto.RegisterInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Password:  password,
	})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Whoami(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}
