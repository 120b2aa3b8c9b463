package review

import (
	"errors"
	"fmt"

	destinationRepo "tourmate/database/repository/destination"
	hotelRepo "tourmate/database/repository/hotel"
	reviewRepo "tourmate/database/repository/review"
	safetyRepo "tourmate/database/repository/safety"
	"tourmate/models"
	"tourmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTargetNotFound reports a review target id that does not resolve.
var ErrTargetNotFound = errors.New("review target not found")

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// ReviewService defines business logic for reviews and safety reviews.
type ReviewService interface {
	Create(userID string, review models.Review) (*models.Review, error)
	ListByTarget(targetType, targetID string) ([]models.Review, error)
	CreateSafety(userID string, review models.SafetyReview) (*models.SafetyReview, error)
	ListSafetyByDestination(destinationID string) ([]models.SafetyReview, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews      reviewRepo.ReviewRepository
	Safety       safetyRepo.SafetyReviewRepository
	Destinations destinationRepo.DestinationRepository
	Hotels       hotelRepo.HotelRepository
}

// Create validates the target and persists a review. Hotel reviews trigger an
// average-rating recompute on the hotel record.
func (s *DefaultReviewService) Create(userID string, review models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ValidationError{Msg: "rating must be between 1 and 5"}
	}
	if review.TargetID == "" {
		return nil, ValidationError{Msg: "targetId is required"}
	}

	switch review.TargetType {
	case models.TargetDestination:
		dest, err := s.Destinations.GetByID(review.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch review target: %w", err)
		}
		if dest == nil {
			return nil, ErrTargetNotFound
		}
	case models.TargetHotel:
		hotel, err := s.Hotels.GetByID(review.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch review target: %w", err)
		}
		if hotel == nil {
			return nil, ErrTargetNotFound
		}
	default:
		return nil, ValidationError{Msg: "targetType must be 'destination' or 'hotel'"}
	}

	review.ID = uuid.New().String()
	review.UserID = userID
	if err := s.Reviews.Create(&review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if review.TargetType == models.TargetHotel {
		s.recomputeHotelRating(review.TargetID)
	}
	return &review, nil
}

// ListByTarget returns all reviews for one destination or hotel.
func (s *DefaultReviewService) ListByTarget(targetType, targetID string) ([]models.Review, error) {
	if targetType != models.TargetDestination && targetType != models.TargetHotel {
		return nil, ValidationError{Msg: "targetType must be 'destination' or 'hotel'"}
	}
	reviews, err := s.Reviews.ListByTarget(targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// CreateSafety validates the destination and persists a safety review.
func (s *DefaultReviewService) CreateSafety(userID string, review models.SafetyReview) (*models.SafetyReview, error) {
	if review.SafetyRating < 1 || review.SafetyRating > 5 {
		return nil, ValidationError{Msg: "safetyRating must be between 1 and 5"}
	}
	if review.DestinationID == "" {
		return nil, ValidationError{Msg: "destinationId is required"}
	}

	dest, err := s.Destinations.GetByID(review.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch destination: %w", err)
	}
	if dest == nil {
		return nil, ErrTargetNotFound
	}

	review.ID = uuid.New().String()
	review.UserID = userID
	if err := s.Safety.Create(&review); err != nil {
		return nil, fmt.Errorf("failed to create safety review: %w", err)
	}
	return &review, nil
}

// ListSafetyByDestination returns all safety reviews for one destination.
func (s *DefaultReviewService) ListSafetyByDestination(destinationID string) ([]models.SafetyReview, error) {
	reviews, err := s.Safety.ListByDestination(destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list safety reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.SafetyReview{}
	}
	return reviews, nil
}

// recomputeHotelRating averages all hotel reviews and stores the result. A failure
// here never fails the review write itself.
func (s *DefaultReviewService) recomputeHotelRating(hotelID string) {
	logger := utils.GetLogger()
	reviews, err := s.Reviews.ListByTarget(models.TargetHotel, hotelID)
	if err != nil || len(reviews) == 0 {
		if err != nil {
			logger.Warn("failed to load reviews for rating recompute", zap.String("hotelId", hotelID), zap.Error(err))
		}
		return
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	if err := s.Hotels.SetAvgRating(hotelID, avg); err != nil {
		logger.Warn("failed to store recomputed rating", zap.String("hotelId", hotelID), zap.Error(err))
	}
}
