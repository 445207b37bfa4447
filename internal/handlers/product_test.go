// internal/handlers/product_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sanatevi/storefront-api/internal/models"
	"github.com/sanatevi/storefront-api/internal/repositories"
	"github.com/sanatevi/storefront-api/internal/services"
)

type stubCategoryRepo struct {
	categories []models.Category
	bySlug     map[string]*models.Category
}

func (s *stubCategoryRepo) ListActive(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *stubCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.bySlug[slug], nil
}

func (s *stubCategoryRepo) CountActiveProducts(ctx context.Context) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

type stubProductRepo struct {
	products  []models.Product
	total     int64
	bySlug    map[string]*models.Product
	listCalls int
}

func (s *stubProductRepo) List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	s.listCalls++
	return s.products, s.total, nil
}

func (s *stubProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.bySlug[slug], nil
}

func (s *stubProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) Search(ctx context.Context, query string, categoryID *uuid.UUID, limit int) ([]models.Product, error) {
	return s.products, nil
}

type ProductHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	products *stubProductRepo
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.products = &stubProductRepo{bySlug: map[string]*models.Product{}}
	catalogService := services.NewCatalogService(
		&stubCategoryRepo{bySlug: map[string]*models.Category{}},
		suite.products,
	)
	handler := NewProductHandler(catalogService)

	suite.router = gin.New()
	products := suite.router.Group("/v1/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/featured", handler.FeaturedProducts)
		products.GET("/search", handler.SearchProducts)
		products.GET("/:slug", handler.GetProductBySlug)
	}
}

func (suite *ProductHandlerTestSuite) get(path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	return w, response
}

func (suite *ProductHandlerTestSuite) TestListProducts() {
	suite.products.products = []models.Product{{Name: "Kehribar Doğal 33lü Tesbih"}}
	suite.products.total = 1

	w, response := suite.get("/v1/products")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), data["total"])
	assert.False(suite.T(), data["has_more"].(bool))
	assert.Len(suite.T(), data["products"], 1)
}

func (suite *ProductHandlerTestSuite) TestListProductsRejectsBadLimit() {
	for _, limit := range []string{"0", "-1", "500"} {
		w, response := suite.get("/v1/products?limit=" + limit)

		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, "limit %s", limit)
		assert.False(suite.T(), response["success"].(bool))

		apiError := response["error"].(map[string]interface{})
		assert.Equal(suite.T(), "VALIDATION_ERROR", apiError["code"])
	}
	assert.Zero(suite.T(), suite.products.listCalls, "repository must not be reached")
}

func (suite *ProductHandlerTestSuite) TestListProductsRejectsMalformedCategoryID() {
	w, _ := suite.get("/v1/products?category_id=not-a-uuid")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestGetProductBySlug() {
	suite.products.bySlug["kehribar-dogal-33lu-tesbih"] = &models.Product{
		Name:         "Kehribar Doğal 33lü Tesbih",
		Slug:         "kehribar-dogal-33lu-tesbih",
		Price:        decimal.NewFromFloat(850),
		ComparePrice: decimal.NewNullDecimal(decimal.NewFromFloat(1100)),
		Inventory:    &models.Inventory{Quantity: 12, TrackQuantity: true},
	}

	w, response := suite.get("/v1/products/kehribar-dogal-33lu-tesbih")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})

	product := data["product"].(map[string]interface{})
	assert.Equal(suite.T(), "kehribar-dogal-33lu-tesbih", product["slug"])

	displayData := data["display"].(map[string]interface{})
	assert.True(suite.T(), displayData["available"].(bool))
	assert.Equal(suite.T(), "in stock", displayData["stock_label"])
	assert.Equal(suite.T(), float64(23), displayData["discount_percent"])
}

func (suite *ProductHandlerTestSuite) TestGetProductBySlugMissReturnsNull() {
	w, response := suite.get("/v1/products/silinmis-urun")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Nil(suite.T(), data["product"])
}

func (suite *ProductHandlerTestSuite) TestSearchRequiresQuery() {
	w, response := suite.get("/v1/products/search")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	apiError := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "VALIDATION_ERROR", apiError["code"])
}

func (suite *ProductHandlerTestSuite) TestSearch() {
	suite.products.products = []models.Product{{Name: "Sandal Ağacı Kokulu Tesbih"}}

	w, response := suite.get("/v1/products/search?q=tesbih")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Len(suite.T(), data["products"], 1)
}

func (suite *ProductHandlerTestSuite) TestFeaturedRejectsBadLimit() {
	for _, limit := range []string{"0", "100"} {
		w, _ := suite.get("/v1/products/featured?limit=" + limit)
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code, "limit %s", limit)
	}
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
