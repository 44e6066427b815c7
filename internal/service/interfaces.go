package service

import (
	"context"
	"time"

	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

type DishRepository interface {
	CreateDish(dish *domain.Dish) error
	GetDish(id uuid.UUID) (*domain.Dish, error)
	ListDishes(filter domain.DishFilter) ([]domain.Dish, int, error)
}

type BasketRepository interface {
	GetOrCreateBasket(userID int) (*domain.Basket, error)
	GetBasketItems(userID int) ([]domain.BasketItem, error)
	AddDishToBasket(userID int, dishID uuid.UUID, quantity int) (*domain.Basket, error)
	RemoveDishFromBasket(userID int, dishID uuid.UUID, quantity int, decrementOnly bool) (*domain.Basket, error)
}

type OrderRepository interface {
	CreateOrderFromBasket(userID int, deliveryTime time.Time, address string) (*domain.Order, error)
	GetOrder(orderID uuid.UUID, userID int) (*domain.Order, error)
	ListOrders(userID int) ([]domain.Order, error)
	MarkDelivered(orderID uuid.UUID, userID int) (int64, error)
	SaveQRCode(orderID uuid.UUID, qr []byte) error
	GetQRCode(orderID uuid.UUID, userID int) ([]byte, error)
}

type RatingRepository interface {
	InsertRating(rating *domain.Rating) (float64, error)
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	UpdateUser(user *domain.User) error
}

type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(orderID uuid.UUID) ([]byte, error)
}

type BasketServiceInterface interface {
	GetOrCreateBasket(userID int) (*domain.Basket, error)
	AddDish(userID int, dishID uuid.UUID, quantity int) (*domain.Basket, error)
	RemoveOrDecrement(userID int, dishID uuid.UUID, quantity int, decrementOnly bool) (*domain.Basket, error)
	GetBasketView(userID int) ([]domain.BasketItem, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, userID int, deliveryTime time.Time, address string) (*domain.Order, error)
	ConfirmDelivery(ctx context.Context, orderID uuid.UUID, userID int) error
	GetOrder(orderID uuid.UUID, userID int) (*domain.Order, error)
	ListOrders(userID int) ([]domain.Order, error)
	GetQRCode(orderID uuid.UUID, userID int) ([]byte, error)
}

type RatingServiceInterface interface {
	SetRating(ctx context.Context, dishID uuid.UUID, userID int, score int) (float64, error)
}

type DishServiceInterface interface {
	AddDish(dish *domain.Dish) error
	GetDish(id uuid.UUID) (*domain.Dish, error)
	ListDishes(filter domain.DishFilter) (*domain.DishPage, error)
}

type AuthServiceInterface interface {
	Register(req RegisterRequest, adminSecret string) (*domain.User, error)
	Login(email, password string) (string, error)
	Logout(ctx context.Context, claims *Claims) error
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
	GetProfile(email string) (*domain.Profile, error)
	UpdateProfile(email string, req UpdateProfileRequest) (*domain.Profile, error)
}
