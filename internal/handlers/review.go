// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanatevi/storefront-api/internal/services"
	"github.com/sanatevi/storefront-api/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GET /reviews?product_id=&limit=&offset=&rating=
func (h *ReviewHandler) GetReviews(c *gin.Context) {
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

	params := services.ReviewListParams{
		ProductID: *productID,
		Limit:     window.Limit,
		Offset:    window.Offset,
	}

	rating, err := parseIntQuery(c, "rating")
	if err != nil {
		utils.BadRequestResponse(c, "rating must be an integer", nil)
		return
	}
	params.Rating = rating

	page, err := h.reviewService.ListByProduct(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews":  page.Reviews,
		"total":    page.Total,
		"has_more": page.HasMore,
	})
}

// GET /reviews/summary?product_id=
func (h *ReviewHandler) GetRatingSummary(c *gin.Context) {
	productID, bad := parseUUIDQuery(c, "product_id")
	if bad || productID == nil {
		utils.BadRequestResponse(c, "product_id must be a valid UUID", nil)
		return
	}

	summary, err := h.reviewService.RatingSummary(c.Request.Context(), *productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, summary)
}

// POST /reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"review": review,
	})
}
