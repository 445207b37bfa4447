// internal/services/catalog_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanatevi/storefront-api/internal/models"
	"github.com/sanatevi/storefront-api/internal/repositories"
)

type fakeCategoryRepo struct {
	categories []models.Category
	bySlug     map[string]*models.Category
	counts     map[uuid.UUID]int64
	err        error
}

func (f *fakeCategoryRepo) ListActive(ctx context.Context) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySlug[slug], nil
}

func (f *fakeCategoryRepo) CountActiveProducts(ctx context.Context) (map[uuid.UUID]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.counts, nil
}

type fakeProductRepo struct {
	products   []models.Product
	total      int64
	bySlug     map[string]*models.Product
	err        error
	lastFilter repositories.ProductFilter
	lastQuery  string
	lastLimit  int
}

func (f *fakeProductRepo) List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.lastFilter = filter
	return f.products, f.total, nil
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySlug[slug], nil
}

func (f *fakeProductRepo) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit
	return f.products, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, query string, categoryID *uuid.UUID, limit int) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = query
	f.lastLimit = limit
	return f.products, nil
}

func limitOf(n int) *int { return &n }

func newCatalogService(categories *fakeCategoryRepo, products *fakeProductRepo) *CatalogService {
	if categories == nil {
		categories = &fakeCategoryRepo{}
	}
	if products == nil {
		products = &fakeProductRepo{}
	}
	return NewCatalogService(categories, products)
}

func TestListCategoriesAssignsProductCounts(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()
	root := models.Category{
		BaseModel: models.BaseModel{ID: rootID},
		Name:      "Sanat Eserleri",
		Children: []models.Category{
			{BaseModel: models.BaseModel{ID: childID}, Name: "Tesbihler"},
		},
	}

	svc := newCatalogService(&fakeCategoryRepo{
		categories: []models.Category{root},
		counts:     map[uuid.UUID]int64{rootID: 12, childID: 8},
	}, nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)

	assert.Equal(t, int64(12), categories[0].ProductCount)
	assert.Equal(t, int64(8), categories[0].Children[0].ProductCount)
}

func TestListCategoriesZeroCountForUnlisted(t *testing.T) {
	id := uuid.New()
	svc := newCatalogService(&fakeCategoryRepo{
		categories: []models.Category{{BaseModel: models.BaseModel{ID: id}}},
		counts:     map[uuid.UUID]int64{},
	}, nil)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), categories[0].ProductCount)
}

func TestListCategoriesPropagatesRepositoryError(t *testing.T) {
	repoErr := errors.New("connection reset")
	svc := newCatalogService(&fakeCategoryRepo{err: repoErr}, nil)

	_, err := svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, repoErr)
}

func TestGetCategoryBySlug(t *testing.T) {
	category := &models.Category{Slug: "tesbihler"}
	svc := newCatalogService(&fakeCategoryRepo{
		bySlug: map[string]*models.Category{"tesbihler": category},
	}, nil)

	got, err := svc.GetCategoryBySlug(context.Background(), "tesbihler")
	require.NoError(t, err)
	assert.Equal(t, category, got)
}

func TestGetCategoryBySlugMissIsNotAnError(t *testing.T) {
	svc := newCatalogService(&fakeCategoryRepo{bySlug: map[string]*models.Category{}}, nil)

	got, err := svc.GetCategoryBySlug(context.Background(), "yok-boyle-bir-kategori")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = svc.GetCategoryBySlug(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListProductsDefaultsLimit(t *testing.T) {
	products := &fakeProductRepo{total: 45}
	svc := newCatalogService(nil, products)

	page, err := svc.ListProducts(context.Background(), ProductListParams{})
	require.NoError(t, err)

	assert.Equal(t, defaultListLimit, products.lastFilter.Limit)
	assert.Equal(t, int64(45), page.Total)
	assert.True(t, page.HasMore)
}

func TestListProductsHasMoreHonestAtBoundary(t *testing.T) {
	products := &fakeProductRepo{total: 20}
	svc := newCatalogService(nil, products)

	page, err := svc.ListProducts(context.Background(), ProductListParams{Limit: limitOf(20)})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
}

func TestListProductsRejectsOutOfRangeLimit(t *testing.T) {
	products := &fakeProductRepo{}
	svc := newCatalogService(nil, products)

	// A supplied 0 is out of bounds, not a request for the default.
	for _, limit := range []int{0, -1, 101, 1000} {
		_, err := svc.ListProducts(context.Background(), ProductListParams{Limit: limitOf(limit)})
		assert.ErrorIs(t, err, ErrInvalidInput, "limit %d", limit)
	}
	assert.Zero(t, products.lastFilter, "repository must not be reached")
}

func TestListProductsRejectsNegativeOffset(t *testing.T) {
	svc := newCatalogService(nil, nil)

	_, err := svc.ListProducts(context.Background(), ProductListParams{Offset: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListProductsPassesFilterThrough(t *testing.T) {
	categoryID := uuid.New()
	products := &fakeProductRepo{}
	svc := newCatalogService(nil, products)

	_, err := svc.ListProducts(context.Background(), ProductListParams{
		CategoryID:   &categoryID,
		FeaturedOnly: true,
		Limit:        limitOf(10),
		Offset:       30,
	})
	require.NoError(t, err)

	assert.Equal(t, &categoryID, products.lastFilter.CategoryID)
	assert.True(t, products.lastFilter.FeaturedOnly)
	assert.Equal(t, 10, products.lastFilter.Limit)
	assert.Equal(t, 30, products.lastFilter.Offset)
}

func TestGetProductBySlugMissIsNotAnError(t *testing.T) {
	svc := newCatalogService(nil, &fakeProductRepo{bySlug: map[string]*models.Product{}})

	got, err := svc.GetProductBySlug(context.Background(), "silinmis-urun")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFeaturedProductsLimits(t *testing.T) {
	products := &fakeProductRepo{}
	svc := newCatalogService(nil, products)

	_, err := svc.FeaturedProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, defaultFeaturedLimit, products.lastLimit)

	_, err = svc.FeaturedProducts(context.Background(), limitOf(21))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.FeaturedProducts(context.Background(), limitOf(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchProductsRejectsBlankQuery(t *testing.T) {
	svc := newCatalogService(nil, nil)

	for _, query := range []string{"", "   ", "\t"} {
		_, err := svc.SearchProducts(context.Background(), SearchParams{Query: query})
		assert.ErrorIs(t, err, ErrInvalidInput, "query %q", query)
	}
}

func TestSearchProductsTrimsQuery(t *testing.T) {
	products := &fakeProductRepo{}
	svc := newCatalogService(nil, products)

	_, err := svc.SearchProducts(context.Background(), SearchParams{Query: "  tesbih  "})
	require.NoError(t, err)

	assert.Equal(t, "tesbih", products.lastQuery)
	assert.Equal(t, defaultSearchLimit, products.lastLimit)
}

func TestSearchProductsRejectsOutOfRangeLimit(t *testing.T) {
	svc := newCatalogService(nil, nil)

	for _, limit := range []int{0, 51} {
		_, err := svc.SearchProducts(context.Background(), SearchParams{Query: "tesbih", Limit: limitOf(limit)})
		assert.ErrorIs(t, err, ErrInvalidInput, "limit %d", limit)
	}
}
