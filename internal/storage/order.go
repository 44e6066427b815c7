package storage

import (
	"database/sql"
	"time"

	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

// CreateOrderFromBasket converts the user's basket into an order. The
// basket read, the order insert and the basket deletion are one
// transaction under the basket row lock, so concurrent checkouts of the
// same basket cannot both succeed: the loser finds no basket left.
func (r *PostgresRepository) CreateOrderFromBasket(userID int, deliveryTime time.Time, address string) (*domain.Order, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	basketID, err := lockBasket(tx, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrEmptyBasket
		}
		return nil, err
	}

	// Fresh snapshot of the line totals at commit time, never a cached sum.
	var total float64
	var lineCount int
	if err := tx.QueryRow(`
		SELECT COALESCE(SUM(line_total), 0), COUNT(*)
		FROM basket_lines
		WHERE basket_id = $1
	`, basketID).Scan(&total, &lineCount); err != nil {
		return nil, err
	}
	if lineCount == 0 {
		return nil, domain.ErrEmptyBasket
	}

	order := &domain.Order{
		ID:           uuid.New(),
		UserID:       userID,
		DeliveryTime: deliveryTime,
		Status:       domain.StatusPending,
		Price:        total,
		Address:      address,
		BasketID:     &basketID,
	}
	if err := tx.QueryRow(`
		INSERT INTO orders (id, user_id, delivery_time, order_time, status, price, address, basket_id)
		VALUES ($1, $2, $3, NOW(), $4, $5, $6, $7)
		RETURNING order_time
	`, order.ID, order.UserID, order.DeliveryTime, order.Status, order.Price, order.Address, basketID).
		Scan(&order.OrderTime); err != nil {
		return nil, err
	}

	// Retire the basket; its lines go with it via ON DELETE CASCADE.
	if _, err := tx.Exec(`DELETE FROM baskets WHERE id = $1`, basketID); err != nil {
		return nil, err
	}

	return order, tx.Commit()
}

func (r *PostgresRepository) GetOrder(orderID uuid.UUID, userID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, user_id, delivery_time, order_time, status, price, address, basket_id
		FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(&order.ID, &order.UserID, &order.DeliveryTime, &order.OrderTime,
		&order.Status, &order.Price, &order.Address, &order.BasketID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders(userID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, delivery_time, order_time, status, price, address, basket_id
		FROM orders
		WHERE user_id = $1
		ORDER BY order_time DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.DeliveryTime, &order.OrderTime,
			&order.Status, &order.Price, &order.Address, &order.BasketID); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// MarkDelivered is a compare-and-set on the order status. Zero affected
// rows means the order was not Pending anymore (or not owned by the user).
func (r *PostgresRepository) MarkDelivered(orderID uuid.UUID, userID int) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND user_id = $3 AND status = $4
	`, domain.StatusDelivered, orderID, userID, domain.StatusPending)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID uuid.UUID, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID uuid.UUID, userID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`
		SELECT qr_code FROM orders WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(&qr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return qr, nil
}
