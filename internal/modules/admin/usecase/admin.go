package usecase

import (
	"context"

	"github.com/Nickgiresse/aurastyle/internal/modules/admin/domain"
	"github.com/Nickgiresse/aurastyle/internal/modules/admin/dto"
	adminin "github.com/Nickgiresse/aurastyle/internal/modules/admin/port/in"
	adminout "github.com/Nickgiresse/aurastyle/internal/modules/admin/port/out"
	authin "github.com/Nickgiresse/aurastyle/internal/modules/auth/port/in"
	apperrors "github.com/Nickgiresse/aurastyle/internal/platform/errors"
)

type Interactor struct {
	api  adminout.AdminAPI
	auth authin.Usecase
}

func NewInteractor(api adminout.AdminAPI, auth authin.Usecase) adminin.Usecase {
	return &Interactor{api: api, auth: auth}
}

// adminToken gates every operation. The backend checks again; this only
// saves a doomed round trip.
func (i *Interactor) adminToken(ctx context.Context) (string, error) {
	session, err := i.auth.Current(ctx)
	if err != nil {
		return "", err
	}
	if !session.IsAdmin {
		return "", apperrors.ErrNotAdmin
	}
	return session.Token, nil
}

func (i *Interactor) ListProducts(ctx context.Context) ([]dto.ProductOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return nil, err
	}
	products, err := i.api.ListProducts(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductOutput, 0, len(products))
	for _, product := range products {
		out = append(out, productOutput(product))
	}
	return out, nil
}

func (i *Interactor) CreateProduct(ctx context.Context, input dto.ProductDraftInput) (dto.ProductOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.ProductOutput{}, err
	}
	draft := productDraft(input)
	if err := draft.Validate(); err != nil {
		return dto.ProductOutput{}, err
	}
	product, err := i.api.CreateProduct(ctx, token, draft)
	if err != nil {
		return dto.ProductOutput{}, err
	}
	return productOutput(product), nil
}

func (i *Interactor) UpdateProduct(ctx context.Context, id string, input dto.ProductDraftInput) (dto.ProductOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.ProductOutput{}, err
	}
	if id == "" {
		return dto.ProductOutput{}, apperrors.ErrInvalidInput
	}
	draft := productDraft(input)
	if err := draft.Validate(); err != nil {
		return dto.ProductOutput{}, err
	}
	product, err := i.api.UpdateProduct(ctx, token, id, draft)
	if err != nil {
		return dto.ProductOutput{}, err
	}
	return productOutput(product), nil
}

func (i *Interactor) DeleteProduct(ctx context.Context, id string) error {
	token, err := i.adminToken(ctx)
	if err != nil {
		return err
	}
	if id == "" {
		return apperrors.ErrInvalidInput
	}
	return i.api.DeleteProduct(ctx, token, id)
}

func (i *Interactor) ListCategories(ctx context.Context) ([]dto.CategoryOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := i.api.ListCategories(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.CategoryOutput{ID: category.ID, Name: category.Name, Image: category.Image})
	}
	return out, nil
}

func (i *Interactor) CreateCategory(ctx context.Context, input dto.CategoryDraftInput) (dto.CategoryOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	draft := domain.CategoryDraft{Name: input.Name, Image: input.Image}
	if err := draft.Validate(); err != nil {
		return dto.CategoryOutput{}, err
	}
	category, err := i.api.CreateCategory(ctx, token, draft)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	return dto.CategoryOutput{ID: category.ID, Name: category.Name, Image: category.Image}, nil
}

func (i *Interactor) UpdateCategory(ctx context.Context, id string, input dto.CategoryDraftInput) (dto.CategoryOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	if id == "" {
		return dto.CategoryOutput{}, apperrors.ErrInvalidInput
	}
	draft := domain.CategoryDraft{Name: input.Name, Image: input.Image}
	if err := draft.Validate(); err != nil {
		return dto.CategoryOutput{}, err
	}
	category, err := i.api.UpdateCategory(ctx, token, id, draft)
	if err != nil {
		return dto.CategoryOutput{}, err
	}
	return dto.CategoryOutput{ID: category.ID, Name: category.Name, Image: category.Image}, nil
}

func (i *Interactor) DeleteCategory(ctx context.Context, id string) error {
	token, err := i.adminToken(ctx)
	if err != nil {
		return err
	}
	if id == "" {
		return apperrors.ErrInvalidInput
	}
	return i.api.DeleteCategory(ctx, token, id)
}

func (i *Interactor) ListOrders(ctx context.Context) ([]dto.OrderOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := i.api.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderOutput, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderOutput(order))
	}
	return out, nil
}

func (i *Interactor) UpdateOrderStatus(ctx context.Context, orderID, status string) (dto.OrderOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.OrderOutput{}, err
	}
	if orderID == "" {
		return dto.OrderOutput{}, apperrors.ErrInvalidInput
	}
	orderStatus := domain.OrderStatus(status)
	if err := orderStatus.Validate(); err != nil {
		return dto.OrderOutput{}, err
	}
	order, err := i.api.UpdateOrderStatus(ctx, token, orderID, orderStatus)
	if err != nil {
		return dto.OrderOutput{}, err
	}
	return orderOutput(order), nil
}

func (i *Interactor) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return nil, err
	}
	users, err := i.api.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, user := range users {
		out = append(out, userOutput(user))
	}
	return out, nil
}

func (i *Interactor) GetUser(ctx context.Context, id string) (dto.UserOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	if id == "" {
		return dto.UserOutput{}, apperrors.ErrInvalidInput
	}
	user, err := i.api.GetUser(ctx, token, id)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return userOutput(user), nil
}

func (i *Interactor) UpdateUser(ctx context.Context, id string, input dto.UserUpdateInput) (dto.UserOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	if id == "" {
		return dto.UserOutput{}, apperrors.ErrInvalidInput
	}
	user, err := i.api.UpdateUser(ctx, token, id, domain.UserUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		IsAdmin:   input.IsAdmin,
	})
	if err != nil {
		return dto.UserOutput{}, err
	}
	return userOutput(user), nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	token, err := i.adminToken(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	stats, err := i.api.Stats(ctx, token)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		Revenue:  stats.Revenue,
		Orders:   stats.Orders,
		Users:    stats.Users,
		Products: stats.Products,
	}, nil
}

func productDraft(input dto.ProductDraftInput) domain.ProductDraft {
	return domain.ProductDraft{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Badge:       input.Badge,
		Description: input.Description,
		SubTitle:    input.SubTitle,
		Sizes:       input.Sizes,
		Stock:       input.Stock,
		IsActive:    input.IsActive,
	}
}

func productOutput(product domain.Product) dto.ProductOutput {
	return dto.ProductOutput{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Category:    product.Category,
		Image:       product.Image,
		Badge:       product.Badge,
		Description: product.Description,
		SubTitle:    product.SubTitle,
		Sizes:       product.Sizes,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
	}
}

func orderOutput(order domain.Order) dto.OrderOutput {
	return dto.OrderOutput{
		ID:        order.ID,
		Customer:  order.Customer,
		Status:    string(order.Status),
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}

func userOutput(user domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
