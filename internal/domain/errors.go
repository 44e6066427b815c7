package domain

import "errors"

var (
	ErrDishNotFound   = errors.New("dish not found")
	ErrBasketNotFound = errors.New("basket not found")
	ErrLineNotFound   = errors.New("dish not found in basket")
	ErrOrderNotFound  = errors.New("order not found")
	ErrUserNotFound   = errors.New("user not found")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidScore    = errors.New("score must be between 1 and 5")
	ErrInvalidCategory = errors.New("unknown dish category")
	ErrInvalidDish     = errors.New("dish requires a name and a non-negative price")
	ErrDeliveryTooSoon = errors.New("delivery time must be at least 60 minutes in the future")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPhone    = errors.New("invalid phone number format")

	ErrEmptyBasket      = errors.New("basket is empty")
	ErrAlreadyRated     = errors.New("user has already rated this dish")
	ErrAlreadyDelivered = errors.New("order has already been delivered")
	ErrNotConfirmable   = errors.New("order is not in a confirmable state")
	ErrEmailTaken       = errors.New("user already registered with this email")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrAdminRequired      = errors.New("admin access required")
)
