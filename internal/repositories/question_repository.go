// internal/repositories/question_repository.go
package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sanatevi/storefront-api/internal/models"
)

type QuestionRepository interface {
	ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]models.ProductQuestion, int64, error)
	Create(ctx context.Context, question *models.ProductQuestion) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]models.ProductQuestion, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ProductQuestion{}).
		Where("product_id = ? AND is_approved = ?", productID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	var questions []models.ProductQuestion
	err := query.
		Preload("User", reviewerName).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, total, nil
}

func (r *questionRepository) Create(ctx context.Context, question *models.ProductQuestion) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return r.db.WithContext(ctx).Preload("User", reviewerName).First(question, question.ID).Error
}
