// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sanatevi/storefront-api/internal/display"
	"github.com/sanatevi/storefront-api/internal/services"
	"github.com/sanatevi/storefront-api/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	window, err := utils.ParseLimitOffset(c)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	params := services.ProductListParams{
		Limit:  window.Limit,
		Offset: window.Offset,
	}

	categoryID, bad := parseUUIDQuery(c, "category_id")
	if bad {
		utils.BadRequestResponse(c, "category_id must be a valid UUID", nil)
		return
	}
	params.CategoryID = categoryID

	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequestResponse(c, "featured must be a boolean", nil)
			return
		}
		params.FeaturedOnly = featured
	}

	page, err := h.catalogService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": page.Products,
		"total":    page.Total,
		"has_more": page.HasMore,
	})
}

// GET /products/featured
func (h *ProductHandler) FeaturedProducts(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		utils.BadRequestResponse(c, "limit must be an integer", nil)
		return
	}

	products, err := h.catalogService.FeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		utils.BadRequestResponse(c, "limit must be an integer", nil)
		return
	}

	categoryID, bad := parseUUIDQuery(c, "category_id")
	if bad {
		utils.BadRequestResponse(c, "category_id must be a valid UUID", nil)
		return
	}

	products, err := h.catalogService.SearchProducts(c.Request.Context(), services.SearchParams{
		Query:      c.Query("q"),
		CategoryID: categoryID,
		Limit:      limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /products/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if product == nil {
		utils.SuccessResponse(c, gin.H{
			"product": nil,
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"display": display.Summarize(product),
	})
}
