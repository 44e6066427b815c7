package main

import (
	"net/http"

	"restaurant-backend/config"
	httpapi "restaurant-backend/internal/api/http"
	"restaurant-backend/internal/service"
	"restaurant-backend/internal/storage"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logrus.Fatal("Failed to ensure schema: ", err)
	}

	redisClient := config.MustInitRedis()
	defer redisClient.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.OrdersTopic)
	defer kafkaWriter.Close()

	blacklist := storage.NewRedisBlacklist(redisClient)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qrEncoder := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	authService := service.NewAuthService(repo, blacklist, cfg.JWTSecret, cfg.AdminSecretKey)
	dishService := service.NewDishService(repo)
	basketService := service.NewBasketService(repo)
	orderService := service.NewOrderService(repo, publisher, qrEncoder)
	ratingService := service.NewRatingService(repo, publisher)

	h := httpapi.NewHandler(authService, dishService, basketService, orderService, ratingService)

	r := mux.NewRouter()
	h.RegisterRoutes(r)

	handler := cors.Default().Handler(r)

	logrus.WithField("port", cfg.Port).Info("Restaurant backend starting")
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
