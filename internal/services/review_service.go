// internal/services/review_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sanatevi/storefront-api/internal/display"
	"github.com/sanatevi/storefront-api/internal/models"
	"github.com/sanatevi/storefront-api/internal/repositories"
	"github.com/sanatevi/storefront-api/internal/utils"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 50
)

type ReviewService struct {
	reviews repositories.ReviewRepository
}

func NewReviewService(reviews repositories.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

type ReviewListParams struct {
	ProductID uuid.UUID
	Rating    *int
	Limit     *int
	Offset    int
}

type ReviewPage struct {
	Reviews []models.ProductReview `json:"reviews"`
	Total   int64                  `json:"total"`
	HasMore bool                   `json:"has_more"`
}

type CreateReviewRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	UserID    string `json:"user_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title,omitempty" validate:"omitempty,max=255"`
	Comment   string `json:"comment,omitempty"`
}

type RatingSummary struct {
	Distribution  []display.RatingBucket `json:"distribution"`
	TotalReviews  int                    `json:"total_reviews"`
	AverageRating float64                `json:"average_rating"`
}

// ListByProduct returns approved reviews only, newest first.
func (s *ReviewService) ListByProduct(ctx context.Context, params ReviewListParams) (*ReviewPage, error) {
	if params.ProductID == uuid.Nil {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	limit, err := normalizeLimit(params.Limit, defaultReviewLimit, maxReviewLimit)
	if err != nil {
		return nil, err
	}
	if params.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must be at least 0", ErrInvalidInput)
	}
	if params.Rating != nil && (*params.Rating < 1 || *params.Rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	reviews, total, err := s.reviews.ListByProduct(ctx, params.ProductID, params.Rating, limit, params.Offset)
	if err != nil {
		return nil, err
	}

	return &ReviewPage{
		Reviews: reviews,
		Total:   total,
		HasMore: utils.HasMore(total, limit, params.Offset),
	}, nil
}

// RatingSummary aggregates approved reviews into the 5..1 distribution with
// total and average.
func (s *ReviewService) RatingSummary(ctx context.Context, productID uuid.UUID) (*RatingSummary, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	reviews, err := s.reviews.ApprovedRatings(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &RatingSummary{
		Distribution:  display.RatingDistribution(reviews),
		TotalReviews:  len(reviews),
		AverageRating: display.AverageRating(reviews),
	}, nil
}

// Create stores a review pending moderation. The record is always created
// unapproved and will not show up in reads until approved.
func (s *ReviewService) Create(ctx context.Context, req *CreateReviewRequest) (*models.ProductReview, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", ErrInvalidInput)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	}

	review := &models.ProductReview{
		ProductID:  productID,
		UserID:     userID,
		Rating:     req.Rating,
		Title:      req.Title,
		Comment:    req.Comment,
		IsApproved: false,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
