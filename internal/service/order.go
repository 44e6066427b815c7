package service

import (
	"context"
	"time"

	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MinDeliveryLead is the minimum gap between ordering and delivery.
// A delivery time of exactly now+MinDeliveryLead is accepted.
const MinDeliveryLead = 60 * time.Minute

// OrderService converts baskets into immutable orders and walks them
// through the Pending -> Delivered lifecycle.
type OrderService struct {
	repo      OrderRepository
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

func (s *OrderService) CreateOrder(ctx context.Context, userID int, deliveryTime time.Time, address string) (*domain.Order, error) {
	order, err := s.repo.CreateOrderFromBasket(userID, deliveryTime, address)
	if err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.Event{
			Type:      domain.EventOrderCreated,
			OrderID:   order.ID.String(),
			UserID:    userID,
			Total:     order.Price,
			Timestamp: time.Now(),
		})
	}

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"price":    order.Price,
	}).Info("order created from basket")

	return order, nil
}

func (s *OrderService) ConfirmDelivery(ctx context.Context, orderID uuid.UUID, userID int) error {
	order, err := s.repo.GetOrder(orderID, userID)
	if err != nil {
		return err
	}

	switch order.Status {
	case domain.StatusPending:
	case domain.StatusDelivered:
		return domain.ErrAlreadyDelivered
	default:
		return domain.ErrNotConfirmable
	}

	rows, err := s.repo.MarkDelivered(orderID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Someone else moved the order off Pending between our read and
		// the compare-and-set.
		return domain.ErrAlreadyDelivered
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.Event{
			Type:      domain.EventOrderDelivered,
			OrderID:   orderID.String(),
			UserID:    userID,
			Timestamp: time.Now(),
		})
	}
	return nil
}

func (s *OrderService) GetOrder(orderID uuid.UUID, userID int) (*domain.Order, error) {
	return s.repo.GetOrder(orderID, userID)
}

func (s *OrderService) ListOrders(userID int) ([]domain.Order, error) {
	return s.repo.ListOrders(userID)
}

func (s *OrderService) GetQRCode(orderID uuid.UUID, userID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID, userID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
