// internal/repositories/review_repository.go
package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sanatevi/storefront-api/internal/models"
)

type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, rating *int, limit, offset int) ([]models.ProductReview, int64, error)
	ApprovedRatings(ctx context.Context, productID uuid.UUID) ([]models.ProductReview, error)
	Create(ctx context.Context, review *models.ProductReview) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func reviewerName(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID, rating *int, limit, offset int) ([]models.ProductReview, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Where("product_id = ? AND is_approved = ?", productID, true)
	if rating != nil {
		query = query.Where("rating = ?", *rating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	var reviews []models.ProductReview
	err := query.
		Preload("User", reviewerName).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, total, nil
}

// ApprovedRatings loads only the rating column of every approved review for
// a product, for distribution and average computation.
func (r *reviewRepository) ApprovedRatings(ctx context.Context, productID uuid.UUID) ([]models.ProductReview, error) {
	var reviews []models.ProductReview
	err := r.db.WithContext(ctx).
		Select("rating").
		Where("product_id = ? AND is_approved = ?", productID, true).
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load review ratings: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.ProductReview) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return r.db.WithContext(ctx).Preload("User", reviewerName).First(review, review.ID).Error
}
