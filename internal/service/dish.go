package service

import (
	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func (s *DishService) AddDish(dish *domain.Dish) error {
	if dish.Name == "" || dish.Price < 0 {
		return domain.ErrInvalidDish
	}
	if !dish.Category.Valid() {
		return domain.ErrInvalidCategory
	}
	return s.repo.CreateDish(dish)
}

func (s *DishService) GetDish(id uuid.UUID) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *DishService) ListDishes(filter domain.DishFilter) (*domain.DishPage, error) {
	for _, c := range filter.Categories {
		if !c.Valid() {
			return nil, domain.ErrInvalidCategory
		}
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	dishes, total, err := s.repo.ListDishes(filter)
	if err != nil {
		return nil, err
	}
	return &domain.DishPage{
		Dishes: dishes,
		Pagination: domain.Pagination{
			Size:    domain.DishPageSize,
			Count:   total,
			Current: filter.Page,
		},
	}, nil
}

var _ DishServiceInterface = (*DishService)(nil)
