package storage

import (
	"database/sql"

	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

// ensureBasket creates the user's basket if it does not exist yet. The
// UNIQUE constraint on user_id makes this race-free: two first-time
// callers end up sharing the same row.
func ensureBasket(q querier, userID int) error {
	_, err := q.Exec(`
		INSERT INTO baskets (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, uuid.New(), userID)
	return err
}

// lockBasket takes a row lock on the user's basket, serializing every
// mutation of the same basket for the rest of the transaction.
func lockBasket(tx *sql.Tx, userID int) (uuid.UUID, error) {
	var basketID uuid.UUID
	err := tx.QueryRow(`SELECT id FROM baskets WHERE user_id = $1 FOR UPDATE`, userID).Scan(&basketID)
	return basketID, err
}

// recomputeTotal derives the basket total from the current line set. Runs
// as the last write of every mutation, under the basket row lock.
func recomputeTotal(q querier, basketID uuid.UUID) error {
	_, err := q.Exec(`
		UPDATE baskets
		SET total_price = (SELECT COALESCE(SUM(line_total), 0) FROM basket_lines WHERE basket_id = $1),
		    updated_at = NOW()
		WHERE id = $1
	`, basketID)
	return err
}

func getBasket(q querier, basketID uuid.UUID) (*domain.Basket, error) {
	var basket domain.Basket
	err := q.QueryRow(`
		SELECT id, user_id, total_price, created_at, updated_at
		FROM baskets
		WHERE id = $1
	`, basketID).Scan(&basket.ID, &basket.UserID, &basket.TotalPrice, &basket.CreatedAt, &basket.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBasketNotFound
		}
		return nil, err
	}

	rows, err := q.Query(`
		SELECT id, basket_id, dish_id, quantity, line_total
		FROM basket_lines
		WHERE basket_id = $1
		ORDER BY created_at
	`, basketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.BasketLine
		if err := rows.Scan(&line.ID, &line.BasketID, &line.DishID, &line.Quantity, &line.LineTotal); err != nil {
			return nil, err
		}
		basket.Lines = append(basket.Lines, line)
	}
	return &basket, rows.Err()
}

func (r *PostgresRepository) GetOrCreateBasket(userID int) (*domain.Basket, error) {
	// A concurrent checkout can delete the basket between the ensure and
	// the read, so retry the pair once before giving up.
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if err := ensureBasket(r.DB, userID); err != nil {
			return nil, err
		}

		var basketID uuid.UUID
		err := r.DB.QueryRow(`SELECT id FROM baskets WHERE user_id = $1`, userID).Scan(&basketID)
		if err == sql.ErrNoRows {
			lastErr = domain.ErrBasketNotFound
			continue
		}
		if err != nil {
			return nil, err
		}

		basket, err := getBasket(r.DB, basketID)
		if err == domain.ErrBasketNotFound {
			lastErr = err
			continue
		}
		return basket, err
	}
	return nil, lastErr
}

func (r *PostgresRepository) GetBasketItems(userID int) ([]domain.BasketItem, error) {
	rows, err := r.DB.Query(`
		SELECT bl.dish_id, d.name, d.price, bl.quantity, bl.line_total, COALESCE(d.image, '')
		FROM basket_lines bl
		JOIN baskets b ON bl.basket_id = b.id
		JOIN dishes d ON bl.dish_id = d.id
		WHERE b.user_id = $1
		ORDER BY bl.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.BasketItem{}
	for rows.Next() {
		var item domain.BasketItem
		if err := rows.Scan(&item.DishID, &item.Name, &item.UnitPrice, &item.Quantity, &item.LineTotal, &item.Image); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) AddDishToBasket(userID int, dishID uuid.UUID, quantity int) (*domain.Basket, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lines are always repriced at the current catalog price, so adding
	// more of a dish re-prices the whole line.
	var unitPrice float64
	if err := tx.QueryRow(`SELECT price FROM dishes WHERE id = $1`, dishID).Scan(&unitPrice); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrDishNotFound
		}
		return nil, err
	}

	if err := ensureBasket(tx, userID); err != nil {
		return nil, err
	}

	basketID, err := lockBasket(tx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`
		INSERT INTO basket_lines (id, basket_id, dish_id, quantity, line_total)
		VALUES ($1, $2, $3, $4, $4 * $5)
		ON CONFLICT (basket_id, dish_id) DO UPDATE
		SET quantity = basket_lines.quantity + EXCLUDED.quantity,
		    line_total = (basket_lines.quantity + EXCLUDED.quantity) * $5
	`, uuid.New(), basketID, dishID, quantity, unitPrice); err != nil {
		return nil, err
	}

	if err := recomputeTotal(tx, basketID); err != nil {
		return nil, err
	}

	basket, err := getBasket(tx, basketID)
	if err != nil {
		return nil, err
	}
	return basket, tx.Commit()
}

func (r *PostgresRepository) RemoveDishFromBasket(userID int, dishID uuid.UUID, quantity int, decrementOnly bool) (*domain.Basket, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	basketID, err := lockBasket(tx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBasketNotFound
		}
		return nil, err
	}

	var lineID uuid.UUID
	var current int
	err = tx.QueryRow(`
		SELECT id, quantity FROM basket_lines
		WHERE basket_id = $1 AND dish_id = $2
	`, basketID, dishID).Scan(&lineID, &current)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrLineNotFound
		}
		return nil, err
	}

	if decrementOnly && current > quantity {
		var unitPrice float64
		if err := tx.QueryRow(`SELECT price FROM dishes WHERE id = $1`, dishID).Scan(&unitPrice); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(`
			UPDATE basket_lines
			SET quantity = $1, line_total = $1 * $2
			WHERE id = $3
		`, current-quantity, unitPrice, lineID); err != nil {
			return nil, err
		}
	} else {
		// Full removal, and also the decrement path when the remaining
		// quantity would hit zero: a zero-quantity line must not exist.
		if _, err := tx.Exec(`DELETE FROM basket_lines WHERE id = $1`, lineID); err != nil {
			return nil, err
		}
	}

	if err := recomputeTotal(tx, basketID); err != nil {
		return nil, err
	}

	basket, err := getBasket(tx, basketID)
	if err != nil {
		return nil, err
	}
	return basket, tx.Commit()
}
