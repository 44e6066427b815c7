package service

import (
	"context"
	"time"

	"restaurant-backend/internal/domain"

	"github.com/google/uuid"
)

// RatingService enforces one rating per user per dish and keeps the
// dish aggregate equal to the mean of all its scores.
type RatingService struct {
	repo      RatingRepository
	publisher EventPublisher
}

func NewRatingService(repo RatingRepository, publisher EventPublisher) *RatingService {
	return &RatingService{repo: repo, publisher: publisher}
}

func (s *RatingService) SetRating(ctx context.Context, dishID uuid.UUID, userID int, score int) (float64, error) {
	if score < 1 || score > 5 {
		return 0, domain.ErrInvalidScore
	}

	rating := &domain.Rating{DishID: dishID, UserID: userID, Score: score}
	average, err := s.repo.InsertRating(rating)
	if err != nil {
		return 0, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.Event{
			Type:      domain.EventDishRated,
			DishID:    dishID.String(),
			UserID:    userID,
			Score:     score,
			Timestamp: time.Now(),
		})
	}
	return average, nil
}

var _ RatingServiceInterface = (*RatingService)(nil)
