package service

import (
	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

// BasketService owns the mutable per-user basket. Each user has at most
// one basket, created lazily on first access and retired at checkout.
type BasketService struct {
	repo BasketRepository
}

func NewBasketService(repo BasketRepository) *BasketService {
	return &BasketService{repo: repo}
}

func (s *BasketService) GetOrCreateBasket(userID int) (*domain.Basket, error) {
	return s.repo.GetOrCreateBasket(userID)
}

func (s *BasketService) AddDish(userID int, dishID uuid.UUID, quantity int) (*domain.Basket, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.repo.AddDishToBasket(userID, dishID, quantity)
}

func (s *BasketService) RemoveOrDecrement(userID int, dishID uuid.UUID, quantity int, decrementOnly bool) (*domain.Basket, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.repo.RemoveDishFromBasket(userID, dishID, quantity, decrementOnly)
}

func (s *BasketService) GetBasketView(userID int) ([]domain.BasketItem, error) {
	// Viewing the basket creates it if missing, same as GetOrCreateBasket.
	if _, err := s.repo.GetOrCreateBasket(userID); err != nil {
		return nil, err
	}
	return s.repo.GetBasketItems(userID)
}

var _ BasketServiceInterface = (*BasketService)(nil)
