// internal/repositories/product_repository.go
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sanatevi/storefront-api/internal/models"
)

// ProductFilter narrows List to one category and/or featured products.
// Limit and Offset are assumed validated by the caller.
type ProductFilter struct {
	CategoryID   *uuid.UUID
	FeaturedOnly bool
	Limit        int
	Offset       int
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, query string, categoryID *uuid.UUID, limit int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) withListPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Images", orderedImages).
		Preload("Inventory")
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := r.withListPreloads(query).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		Preload("Category").
		Preload("Images", orderedImages).
		Preload("Inventory").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at DESC").Limit(10)
		}).
		Preload("Reviews.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return &product, nil
}

func (r *productRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.withListPreloads(r.db.WithContext(ctx)).
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return products, nil
}

// likeEscaper neutralizes LIKE metacharacters so a query of "%" or "_"
// matches the literal character instead of everything.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *productRepository) Search(ctx context.Context, query string, categoryID *uuid.UUID, limit int) ([]models.Product, error) {
	searchTerm := "%" + escapeLike(strings.ToLower(query)) + "%"

	db := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(short_desc) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\' OR LOWER(sku) LIKE ? ESCAPE '\'`,
			searchTerm, searchTerm, searchTerm, searchTerm, searchTerm,
		)
	if categoryID != nil {
		db = db.Where("category_id = ?", *categoryID)
	}

	var products []models.Product
	err := r.withListPreloads(db).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
