package tests

import (
	"context"
	"testing"
	"time"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/mocks"
	"restaurant-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_CreateOrder(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)

	svc := service.NewOrderService(repository, publisher, qr)

	ctx := context.Background()
	deliveryTime := time.Now().Add(2 * time.Hour)
	order := &domain.Order{
		ID:     uuid.New(),
		UserID: 7,
		Status: domain.StatusPending,
		Price:  42.50,
	}

	t.Run("success", func(t *testing.T) {
		repository.On("CreateOrderFromBasket", 7, deliveryTime, "Baker St 221b").Return(order, nil).Once()
		qr.On("Generate", order.ID).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil).Once()
		repository.On("SaveQRCode", order.ID, mock.Anything).Return(nil).Once()
		publisher.On("PublishEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventOrderCreated && e.OrderID == order.ID.String() && e.Total == 42.50
		})).Return(nil).Once()

		result, err := svc.CreateOrder(ctx, 7, deliveryTime, "Baker St 221b")
		assert.NoError(t, err)
		assert.Equal(t, order, result)
	})

	t.Run("empty_basket", func(t *testing.T) {
		repository.On("CreateOrderFromBasket", 7, deliveryTime, "Baker St 221b").
			Return(nil, domain.ErrEmptyBasket).Once()

		_, err := svc.CreateOrder(ctx, 7, deliveryTime, "Baker St 221b")
		assert.ErrorIs(t, err, domain.ErrEmptyBasket)
	})
}

func TestOrderService_ConfirmDelivery(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)

	svc := service.NewOrderService(repository, publisher, qr)

	ctx := context.Background()
	orderID := uuid.New()

	tests := []struct {
		name          string
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "pending_to_delivered",
			prepareMocks: func() {
				repository.On("GetOrder", orderID, 7).
					Return(&domain.Order{ID: orderID, UserID: 7, Status: domain.StatusPending}, nil).Once()
				repository.On("MarkDelivered", orderID, 7).Return(int64(1), nil).Once()
				publisher.On("PublishEvent", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventOrderDelivered && e.OrderID == orderID.String()
				})).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "already_delivered",
			prepareMocks: func() {
				repository.On("GetOrder", orderID, 7).
					Return(&domain.Order{ID: orderID, UserID: 7, Status: domain.StatusDelivered}, nil).Once()
			},
			expectedError: domain.ErrAlreadyDelivered,
		},
		{
			name: "unknown_status",
			prepareMocks: func() {
				repository.On("GetOrder", orderID, 7).
					Return(&domain.Order{ID: orderID, UserID: 7, Status: "Cancelled"}, nil).Once()
			},
			expectedError: domain.ErrNotConfirmable,
		},
		{
			name: "lost_race_to_another_confirm",
			prepareMocks: func() {
				repository.On("GetOrder", orderID, 7).
					Return(&domain.Order{ID: orderID, UserID: 7, Status: domain.StatusPending}, nil).Once()
				repository.On("MarkDelivered", orderID, 7).Return(int64(0), nil).Once()
			},
			expectedError: domain.ErrAlreadyDelivered,
		},
		{
			name: "not_found",
			prepareMocks: func() {
				repository.On("GetOrder", orderID, 7).Return(nil, domain.ErrOrderNotFound).Once()
			},
			expectedError: domain.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.ConfirmDelivery(ctx, orderID, 7)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_GetQRCode(t *testing.T) {
	repository := mocks.NewOrderRepository(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)

	svc := service.NewOrderService(repository, publisher, qr)

	orderID := uuid.New()

	t.Run("stored_code", func(t *testing.T) {
		repository.On("GetQRCode", orderID, 7).Return([]byte{1, 2, 3}, nil).Once()

		code, err := svc.GetQRCode(orderID, 7)
		assert.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, code)
	})

	t.Run("regenerated_when_missing", func(t *testing.T) {
		repository.On("GetQRCode", orderID, 7).Return(nil, nil).Once()
		qr.On("Generate", orderID).Return([]byte{9, 9, 9}, nil).Once()
		repository.On("SaveQRCode", orderID, []byte{9, 9, 9}).Return(nil).Once()

		code, err := svc.GetQRCode(orderID, 7)
		assert.NoError(t, err)
		assert.Equal(t, []byte{9, 9, 9}, code)
	})

	t.Run("order_not_found", func(t *testing.T) {
		repository.On("GetQRCode", orderID, 7).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.GetQRCode(orderID, 7)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}
