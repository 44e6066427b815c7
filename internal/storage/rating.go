package storage

import (
	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

// InsertRating stores a new rating and recomputes the dish aggregate in
// the same transaction, so the returned mean always reflects the
// just-inserted score. The UNIQUE (dish_id, user_id) constraint enforces
// one rating per user per dish.
func (r *PostgresRepository) InsertRating(rating *domain.Rating) (float64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1)`, rating.DishID).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrDishNotFound
	}

	rating.ID = uuid.New()
	err = tx.QueryRow(`
		INSERT INTO ratings (id, dish_id, user_id, score)
		VALUES ($1, $2, $3, $4)
		RETURNING rated_at
	`, rating.ID, rating.DishID, rating.UserID, rating.Score).Scan(&rating.RatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAlreadyRated
		}
		return 0, err
	}

	var average float64
	if err := tx.QueryRow(`SELECT AVG(score) FROM ratings WHERE dish_id = $1`, rating.DishID).Scan(&average); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`UPDATE dishes SET rating = $1 WHERE id = $2`, average, rating.DishID); err != nil {
		return 0, err
	}

	return average, tx.Commit()
}
