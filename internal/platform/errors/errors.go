package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNotHydrated      = errors.New("session not hydrated")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAdmin         = errors.New("admin access required")
	ErrEmptyCart        = errors.New("cart is empty")
)
