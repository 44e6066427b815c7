package domain

import (
	"time"

	"github.com/google/uuid"
)

type DishCategory string

const (
	CategoryWok     DishCategory = "Wok"
	CategoryPizza   DishCategory = "Pizza"
	CategorySoup    DishCategory = "Soup"
	CategoryDessert DishCategory = "Dessert"
	CategoryDrink   DishCategory = "Drink"
)

func (c DishCategory) Valid() bool {
	switch c {
	case CategoryWok, CategoryPizza, CategorySoup, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

type Dish struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	Vegetarian  bool         `json:"vegetarian"`
	Rating      *float64     `json:"rating"`
	Category    DishCategory `json:"category"`
	CreatedAt   time.Time    `json:"created_at"`
}

// DishPageSize is the fixed page size of the dish listing.
const DishPageSize = 5

type DishFilter struct {
	Categories []DishCategory
	Vegetarian *bool
	Sorting    string
	Page       int
}

type Pagination struct {
	Size    int `json:"size"`
	Count   int `json:"count"`
	Current int `json:"current"`
}

type DishPage struct {
	Dishes     []Dish     `json:"dishes"`
	Pagination Pagination `json:"pagination"`
}

type Basket struct {
	ID         uuid.UUID    `json:"id"`
	UserID     int          `json:"user_id"`
	TotalPrice float64      `json:"total_price"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Lines      []BasketLine `json:"lines"`
}

type BasketLine struct {
	ID        uuid.UUID `json:"id"`
	BasketID  uuid.UUID `json:"basket_id"`
	DishID    uuid.UUID `json:"dish_id"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
}

// BasketItem is the display projection of a basket line, joined with
// the current dish record.
type BasketItem struct {
	DishID    uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"price"`
	Quantity  int       `json:"amount"`
	LineTotal float64   `json:"total_price"`
	Image     string    `json:"image"`
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusDelivered OrderStatus = "Delivered"
)

type Order struct {
	ID           uuid.UUID   `json:"id"`
	UserID       int         `json:"user_id"`
	DeliveryTime time.Time   `json:"delivery_time"`
	OrderTime    time.Time   `json:"order_time"`
	Status       OrderStatus `json:"status"`
	Price        float64     `json:"price"`
	Address      string      `json:"address"`
	// BasketID points at the basket the order was created from. The basket
	// row is deleted at checkout, so this stays nullable and the order never
	// depends on it.
	BasketID *uuid.UUID `json:"basket_id,omitempty"`
}

type Rating struct {
	ID      uuid.UUID `json:"id"`
	DishID  uuid.UUID `json:"dish_id"`
	UserID  int       `json:"user_id"`
	Score   int       `json:"score"`
	RatedAt time.Time `json:"rated_at"`
}

type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	BirthDate    time.Time `json:"birth_date"`
	Gender       string    `json:"gender"`
	PhoneNumber  string    `json:"phone_number"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	BirthDate   time.Time `json:"birth_date"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number"`
	IsAdmin     bool      `json:"is_admin"`
}

// Event is the payload published to Kafka when something worth telling
// downstream consumers about happens.
type Event struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id,omitempty"`
	DishID    string    `json:"dish_id,omitempty"`
	UserID    int       `json:"user_id"`
	Total     float64   `json:"total,omitempty"`
	Score     int       `json:"score,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderCreated   = "order_created"
	EventOrderDelivered = "order_delivered"
	EventDishRated      = "dish_rated"
)
