package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	dish.ID = uuid.New()
	return r.DB.QueryRow(`
		INSERT INTO dishes (id, name, description, price, image, vegetarian, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, dish.ID, dish.Name, dish.Description, dish.Price, dish.Image, dish.Vegetarian, dish.Category).
		Scan(&dish.CreatedAt)
}

func (r *PostgresRepository) GetDish(id uuid.UUID) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, ''), vegetarian, rating, category, created_at
		FROM dishes
		WHERE id = $1
	`, id).Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Price, &dish.Image,
		&dish.Vegetarian, &dish.Rating, &dish.Category, &dish.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrDishNotFound
		}
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) ListDishes(filter domain.DishFilter) ([]domain.Dish, int, error) {
	conds := []string{}
	args := []interface{}{}

	if len(filter.Categories) > 0 {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = string(c)
		}
		args = append(args, pq.Array(categories))
		conds = append(conds, fmt.Sprintf("category = ANY($%d)", len(args)))
	}
	if filter.Vegetarian != nil {
		args = append(args, *filter.Vegetarian)
		conds = append(conds, fmt.Sprintf("vegetarian = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var orderBy string
	switch filter.Sorting {
	case "NameDesc":
		orderBy = "name DESC"
	case "PriceAsc":
		orderBy = "price ASC"
	case "PriceDesc":
		orderBy = "price DESC"
	case "RatingAsc":
		orderBy = "rating ASC NULLS FIRST"
	case "RatingDesc":
		orderBy = "rating DESC NULLS LAST"
	default:
		orderBy = "name ASC"
	}

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM dishes"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, domain.DishPageSize, (filter.Page-1)*domain.DishPageSize)
	query := fmt.Sprintf(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, ''), vegetarian, rating, category, created_at
		FROM dishes%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, where, orderBy, len(args)-1, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Price, &dish.Image,
			&dish.Vegetarian, &dish.Rating, &dish.Category, &dish.CreatedAt); err != nil {
			return nil, 0, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, total, rows.Err()
}
