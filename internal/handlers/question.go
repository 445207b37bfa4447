// internal/handlers/question.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanatevi/storefront-api/internal/services"
	"github.com/sanatevi/storefront-api/internal/utils"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GET /questions?product_id=&limit=&offset=
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	productID, bad := parseUUIDQuery(c, "product_id")
	if bad || productID == nil {
		utils.BadRequestResponse(c, "product_id must be a valid UUID", nil)
		return
	}

	window, err := utils.ParseLimitOffset(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	page, err := h.questionService.ListByProduct(c.Request.Context(), services.QuestionListParams{
		ProductID: *productID,
		Limit:     window.Limit,
		Offset:    window.Offset,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"questions": page.Questions,
		"total":     page.Total,
		"has_more":  page.HasMore,
	})
}

// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"question": question,
	})
}
