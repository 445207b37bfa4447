// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanatevi/storefront-api/internal/config"
	"github.com/sanatevi/storefront-api/internal/handlers"
	"github.com/sanatevi/storefront-api/internal/middleware"
	"github.com/sanatevi/storefront-api/internal/repositories"
	"github.com/sanatevi/storefront-api/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(categoryRepo, productRepo)
	reviewService := services.NewReviewService(reviewRepo)
	questionService := services.NewQuestionService(questionRepo)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:slug", categoryHandler.GetCategoryBySlug)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/featured", productHandler.FeaturedProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/:slug", productHandler.GetProductBySlug)
		}

		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReviews)
			reviews.GET("/summary", reviewHandler.GetRatingSummary)
			reviews.POST("", middleware.WriteRateLimit(), reviewHandler.CreateReview)
		}

		questions := v1.Group("/questions")
		{
			questions.GET("", questionHandler.GetQuestions)
			questions.POST("", middleware.WriteRateLimit(), questionHandler.CreateQuestion)
		}
	}

	return r
}
