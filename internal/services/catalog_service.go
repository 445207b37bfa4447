// internal/services/catalog_service.go
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

const (
	defaultListLimit = 20
	maxListLimit     = 100

	defaultFeaturedLimit = 8
	maxFeaturedLimit     = 20

	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

// CatalogService answers read-only questions about categories and products.
// All operations are stateless, idempotent reads; input bounds are checked
// here, before any repository call.
type CatalogService struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
}

func NewCatalogService(categories repositories.CategoryRepository, products repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
	}
}

type ProductListParams struct {
	CategoryID   *uuid.UUID
	FeaturedOnly bool
	Limit        *int
	Offset       int
}

type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	HasMore  bool             `json:"has_more"`
}

type SearchParams struct {
	Query      string
	CategoryID *uuid.UUID
	Limit      *int
}

// ListCategories returns every active category ordered by (sortOrder, name)
// with its active children and active-product count.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.categories.CountActiveProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
		for j := range categories[i].Children {
			categories[i].Children[j].ProductCount = counts[categories[i].Children[j].ID]
		}
	}
	return categories, nil
}

// GetCategoryBySlug resolves an active category with parent, children and
// active products. A missing or blank slug is a miss, not an error.
func (s *CatalogService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	return s.categories.GetBySlug(ctx, slug)
}

func (s *CatalogService) ListProducts(ctx context.Context, params ProductListParams) (*ProductPage, error) {
	limit, err := normalizeLimit(params.Limit, defaultListLimit, maxListLimit)
	if err != nil {
		return nil, err
	}
	if params.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must be at least 0", ErrInvalidInput)
	}

	products, total, err := s.products.List(ctx, repositories.ProductFilter{
		CategoryID:   params.CategoryID,
		FeaturedOnly: params.FeaturedOnly,
		Limit:        limit,
		Offset:       params.Offset,
	})
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: products,
		Total:    total,
		HasMore:  utils.HasMore(total, limit, params.Offset),
	}, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}
	return s.products.GetBySlug(ctx, slug)
}

func (s *CatalogService) FeaturedProducts(ctx context.Context, limit *int) ([]models.Product, error) {
	normalized, err := normalizeLimit(limit, defaultFeaturedLimit, maxFeaturedLimit)
	if err != nil {
		return nil, err
	}
	return s.products.Featured(ctx, normalized)
}

// SearchProducts matches the query as a case-insensitive substring of name,
// description, short description, tags or SKU. A blank query is invalid
// input, not "match all".
func (s *CatalogService) SearchProducts(ctx context.Context, params SearchParams) ([]models.Product, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", ErrInvalidInput)
	}

	limit, err := normalizeLimit(params.Limit, defaultSearchLimit, maxSearchLimit)
	if err != nil {
		return nil, err
	}

	return s.products.Search(ctx, query, params.CategoryID, limit)
}

// normalizeLimit applies the default for an absent limit and rejects, never
// clamps, out-of-range values. A supplied 0 is out of range, not "unset".
func normalizeLimit(limit *int, def, max int) (int, error) {
	if limit == nil {
		return def, nil
	}
	if *limit < 1 || *limit > max {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, max)
	}
	return *limit, nil
}
