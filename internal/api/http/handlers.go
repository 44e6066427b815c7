package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-backend/internal/domain"
	"restaurant-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Auth    service.AuthServiceInterface
	Dishes  service.DishServiceInterface
	Baskets service.BasketServiceInterface
	Orders  service.OrderServiceInterface
	Ratings service.RatingServiceInterface
}

func NewHandler(auth service.AuthServiceInterface, dishes service.DishServiceInterface,
	baskets service.BasketServiceInterface, orders service.OrderServiceInterface,
	ratings service.RatingServiceInterface) *Handler {
	return &Handler{
		Auth:    auth,
		Dishes:  dishes,
		Baskets: baskets,
		Orders:  orders,
		Ratings: ratings,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/account/register", h.register).Methods("POST")
	r.HandleFunc("/api/account/login", h.login).Methods("POST")
	r.HandleFunc("/api/account/logout", h.withAuth(h.logout)).Methods("POST")
	r.HandleFunc("/api/account/profile", h.withAuth(h.getProfile)).Methods("GET")
	r.HandleFunc("/api/account/profile", h.withAuth(h.updateProfile)).Methods("PUT")

	r.HandleFunc("/api/dish", h.listDishes).Methods("GET")
	r.HandleFunc("/api/dish", h.withAuth(h.addDish)).Methods("PUT")
	r.HandleFunc("/api/dish/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/api/dish/{id}/rating/check", h.getDishRating).Methods("GET")
	r.HandleFunc("/api/dish/{id}/rating", h.withAuth(h.setRating)).Methods("POST")

	r.HandleFunc("/api/basket", h.withAuth(h.getBasket)).Methods("GET")
	r.HandleFunc("/api/basket/dish/{dishId}", h.withAuth(h.addToBasket)).Methods("POST")
	r.HandleFunc("/api/basket/dish/{dishId}", h.withAuth(h.removeFromBasket)).Methods("DELETE")

	r.HandleFunc("/api/order", h.withAuth(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/order", h.withAuth(h.createOrder)).Methods("POST")
	r.HandleFunc("/api/order/{id}", h.withAuth(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/order/{id}/status", h.withAuth(h.confirmDelivery)).Methods("POST")
	r.HandleFunc("/api/order/{id}/qrcode", h.withAuth(h.getOrderQRCode)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDishNotFound),
		errors.Is(err, domain.ErrBasketNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrAlreadyDelivered),
		errors.Is(err, domain.ErrNotConfirmable),
		errors.Is(err, domain.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidScore),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidDish),
		errors.Is(err, domain.ErrDeliveryTooSoon),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrEmptyBasket):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenRevoked):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrAdminRequired):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	filter := domain.DishFilter{Sorting: r.URL.Query().Get("sorting")}

	for _, c := range r.URL.Query()["categories"] {
		filter.Categories = append(filter.Categories, domain.DishCategory(c))
	}
	if v := r.URL.Query().Get("vegetarian"); v != "" {
		vegetarian, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Invalid vegetarian flag", http.StatusBadRequest)
			return
		}
		filter.Vegetarian = &vegetarian
	}
	if p := r.URL.Query().Get("page"); p != "" {
		filter.Page, _ = strconv.Atoi(p)
	}

	page, err := h.Dishes.ListDishes(filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	dish, err := h.Dishes.GetDish(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) getDishRating(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	dish, err := h.Dishes.GetDish(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish.Rating)
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	if !claims.IsAdmin {
		writeError(w, domain.ErrAdminRequired)
		return
	}
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.AddDish(&dish); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) setRating(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	var score int
	if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
		http.Error(w, "Invalid score payload", http.StatusBadRequest)
		return
	}
	average, err := h.Ratings.SetRating(r.Context(), id, claims.UserID, score)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Rating set successfully",
		"rating":  average,
	})
}

func (h *Handler) getBasket(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	items, err := h.Baskets.GetBasketView(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addToBasket(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	dishID, err := parseID(r, "dishId")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			http.Error(w, "Invalid quantity", http.StatusBadRequest)
			return
		}
	}
	basket, err := h.Baskets.AddDish(claims.UserID, dishID, quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) removeFromBasket(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	dishID, err := parseID(r, "dishId")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			http.Error(w, "Invalid quantity", http.StatusBadRequest)
			return
		}
	}
	// increase=true means "only take some out", false drops the whole line.
	decrementOnly := false
	if inc := r.URL.Query().Get("increase"); inc != "" {
		decrementOnly, err = strconv.ParseBool(inc)
		if err != nil {
			http.Error(w, "Invalid increase flag", http.StatusBadRequest)
			return
		}
	}

	basket, err := h.Baskets.RemoveOrDecrement(claims.UserID, dishID, quantity, decrementOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, basket)
}

type createOrderRequest struct {
	DeliveryTime time.Time `json:"delivery_time"`
	Address      string    `json:"address"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Boundary rule: delivery no earlier than 60 minutes from now,
	// exactly +60 minutes is still accepted.
	if req.DeliveryTime.Before(time.Now().Add(service.MinDeliveryLead)) {
		writeError(w, domain.ErrDeliveryTooSoon)
		return
	}

	order, err := h.Orders.CreateOrder(r.Context(), claims.UserID, req.DeliveryTime, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	orders, err := h.Orders.ListOrders(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	order, err := h.Orders.GetOrder(id, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) confirmDelivery(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	if err := h.Orders.ConfirmDelivery(r.Context(), id, claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order delivered"})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	id, err := parseID(r, "id")
	if err != nil {
		http.Error(w, "Invalid ID format", http.StatusBadRequest)
		return
	}
	qr, err := h.Orders.GetQRCode(id, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
