// internal/services/question_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sanatevi/storefront-api/internal/models"
	"github.com/sanatevi/storefront-api/internal/repositories"
	"github.com/sanatevi/storefront-api/internal/utils"
)

type QuestionService struct {
	questions repositories.QuestionRepository
}

func NewQuestionService(questions repositories.QuestionRepository) *QuestionService {
	return &QuestionService{questions: questions}
}

type QuestionListParams struct {
	ProductID uuid.UUID
	Limit     *int
	Offset    int
}

type QuestionPage struct {
	Questions []models.ProductQuestion `json:"questions"`
	Total     int64                    `json:"total"`
	HasMore   bool                     `json:"has_more"`
}

type CreateQuestionRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	UserID    string `json:"user_id" validate:"required,uuid"`
	Question  string `json:"question" validate:"required"`
}

func (s *QuestionService) ListByProduct(ctx context.Context, params QuestionListParams) (*QuestionPage, error) {
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

	questions, total, err := s.questions.ListByProduct(ctx, params.ProductID, limit, params.Offset)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions: questions,
		Total:     total,
		HasMore:   utils.HasMore(total, limit, params.Offset),
	}, nil
}

// Create stores a question pending moderation, always unapproved.
func (s *QuestionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.ProductQuestion, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("%w: question must not be empty", ErrInvalidInput)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id", ErrInvalidInput)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrInvalidInput)
	}

	question := &models.ProductQuestion{
		ProductID:  productID,
		UserID:     userID,
		Question:   strings.TrimSpace(req.Question),
		IsApproved: false,
	}

	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}
