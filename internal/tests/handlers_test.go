package tests

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "restaurant-backend/internal/api/http"
	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/mocks"
	"restaurant-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type handlerMocks struct {
	auth    *mocks.AuthServiceInterface
	dishes  *mocks.DishServiceInterface
	baskets *mocks.BasketServiceInterface
	orders  *mocks.OrderServiceInterface
	ratings *mocks.RatingServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		auth:    mocks.NewAuthServiceInterface(t),
		dishes:  mocks.NewDishServiceInterface(t),
		baskets: mocks.NewBasketServiceInterface(t),
		orders:  mocks.NewOrderServiceInterface(t),
		ratings: mocks.NewRatingServiceInterface(t),
	}
	handler := &httpapi.Handler{
		Auth:    m.auth,
		Dishes:  m.dishes,
		Baskets: m.baskets,
		Orders:  m.orders,
		Ratings: m.ratings,
	}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func authorize(m handlerMocks, claims *service.Claims) {
	m.auth.On("VerifyToken", mock.Anything, "valid-token").Return(claims, nil).Once()
}

func authedRequest(method, target string, body *bytes.Buffer) *http.Request {
	if body == nil {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func TestHandler_authMiddleware(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("missing_token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/basket", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("revoked_token", func(t *testing.T) {
		m.auth.On("VerifyToken", mock.Anything, "stale-token").
			Return(nil, domain.ErrTokenRevoked).Once()

		req := httptest.NewRequest("GET", "/api/basket", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandler_createOrder(t *testing.T) {
	claims := &service.Claims{UserID: 7, Email: "ada@example.com"}

	tests := []struct {
		name         string
		deliveryIn   time.Duration
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name:       "success",
			deliveryIn: 2 * time.Hour,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("CreateOrder", mock.Anything, 7, mock.Anything, "Baker St 221b").
					Return(&domain.Order{ID: uuid.New(), UserID: 7, Status: domain.StatusPending}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "delivery_too_soon",
			deliveryIn:   59 * time.Minute,
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "empty_basket",
			deliveryIn: 2 * time.Hour,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("CreateOrder", mock.Anything, 7, mock.Anything, "Baker St 221b").
					Return(nil, domain.ErrEmptyBasket).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			authorize(m, claims)
			testCase.prepareMocks(m)

			payload := fmt.Sprintf(`{"delivery_time":%q,"address":"Baker St 221b"}`,
				time.Now().Add(testCase.deliveryIn).Format(time.RFC3339))
			req := authedRequest("POST", "/api/order", bytes.NewBufferString(payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_confirmDelivery(t *testing.T) {
	claims := &service.Claims{UserID: 7}
	orderID := uuid.New()

	tests := []struct {
		name         string
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name: "success",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("ConfirmDelivery", mock.Anything, orderID, 7).Return(nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "already_delivered",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("ConfirmDelivery", mock.Anything, orderID, 7).
					Return(domain.ErrAlreadyDelivered).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "not_found",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("ConfirmDelivery", mock.Anything, orderID, 7).
					Return(domain.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			authorize(m, claims)
			testCase.prepareMocks(m)

			req := authedRequest("POST", "/api/order/"+orderID.String()+"/status", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_basketRoutes(t *testing.T) {
	claims := &service.Claims{UserID: 7}
	dishID := uuid.New()
	basket := &domain.Basket{ID: uuid.New(), UserID: 7, TotalPrice: 23.80}

	t.Run("add_with_quantity", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)
		m.baskets.On("AddDish", 7, dishID, 2).Return(basket, nil).Once()

		req := authedRequest("POST", "/api/basket/dish/"+dishID.String()+"?quantity=2", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total_price":23.8`)
	})

	t.Run("add_defaults_to_one", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)
		m.baskets.On("AddDish", 7, dishID, 1).Return(basket, nil).Once()

		req := authedRequest("POST", "/api/basket/dish/"+dishID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("decrement_only", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)
		m.baskets.On("RemoveOrDecrement", 7, dishID, 1, true).Return(basket, nil).Once()

		req := authedRequest("DELETE", "/api/basket/dish/"+dishID.String()+"?increase=true", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed_increase_flag", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)

		// No basket call expected: a flag that is not a bool must not
		// fall through to a full line removal.
		req := authedRequest("DELETE", "/api/basket/dish/"+dishID.String()+"?increase=yes", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown_dish", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)
		m.baskets.On("AddDish", 7, dishID, 1).Return(nil, domain.ErrDishNotFound).Once()

		req := authedRequest("POST", "/api/basket/dish/"+dishID.String(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_addDish(t *testing.T) {
	payload := `{"name":"Margherita","price":11.9,"category":"Pizza"}`

	t.Run("admin_creates_dish", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, &service.Claims{UserID: 1, IsAdmin: true})
		m.dishes.On("AddDish", mock.AnythingOfType("*domain.Dish")).Return(nil).Once()

		req := authedRequest("PUT", "/api/dish", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("non_admin_forbidden", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, &service.Claims{UserID: 7})

		req := authedRequest("PUT", "/api/dish", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestHandler_listDishes(t *testing.T) {
	router, m := setupTestRouter(t)

	vegetarian := true
	m.dishes.On("ListDishes", mock.MatchedBy(func(f domain.DishFilter) bool {
		return len(f.Categories) == 1 && f.Categories[0] == domain.CategoryWok &&
			f.Vegetarian != nil && *f.Vegetarian == vegetarian &&
			f.Sorting == "PriceAsc" && f.Page == 2
	})).Return(&domain.DishPage{
		Dishes:     []domain.Dish{{Name: "Veggie Wok"}},
		Pagination: domain.Pagination{Size: domain.DishPageSize, Count: 6, Current: 2},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/dish?categories=Wok&vegetarian=true&sorting=PriceAsc&page=2", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Veggie Wok")
}

func TestHandler_setRating(t *testing.T) {
	claims := &service.Claims{UserID: 7}
	dishID := uuid.New()

	t.Run("success", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)
		m.ratings.On("SetRating", mock.Anything, dishID, 7, 5).Return(4.7, nil).Once()

		req := authedRequest("POST", "/api/dish/"+dishID.String()+"/rating", bytes.NewBufferString("5"))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "4.7")
	})

	t.Run("duplicate_rating", func(t *testing.T) {
		router, m := setupTestRouter(t)
		authorize(m, claims)
		m.ratings.On("SetRating", mock.Anything, dishID, 7, 3).
			Return(0.0, domain.ErrAlreadyRated).Once()

		req := authedRequest("POST", "/api/dish/"+dishID.String()+"/rating", bytes.NewBufferString("3"))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHandler_login(t *testing.T) {
	router, m := setupTestRouter(t)

	t.Run("success", func(t *testing.T) {
		m.auth.On("Login", "ada@example.com", "s3cret").Return("signed-token", nil).Once()

		req := httptest.NewRequest("POST", "/api/account/login",
			bytes.NewBufferString(`{"email":"ada@example.com","password":"s3cret"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "signed-token")
	})

	t.Run("bad_credentials", func(t *testing.T) {
		m.auth.On("Login", "ada@example.com", "nope").
			Return("", domain.ErrInvalidCredentials).Once()

		req := httptest.NewRequest("POST", "/api/account/login",
			bytes.NewBufferString(`{"email":"ada@example.com","password":"nope"}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
