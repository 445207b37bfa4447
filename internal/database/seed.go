// internal/database/seed.go
package database

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sanatevi/storefront-api/internal/models"
)

type seedProduct struct {
	category     *models.Category
	name         string
	slug         string
	description  string
	shortDesc    string
	sku          string
	price        float64
	comparePrice float64
	costPrice    float64
	weight       float64
	length       float64
	width        float64
	height       float64
	images       []string
	stock        int
	tags         string
	seoTitle     string
	seoDesc      string
}

// SeedCatalog wipes the catalog tables and repopulates them with the fixed
// sample data: two root categories with two children each, and twenty
// products with images, inventory and inventory history.
func SeedCatalog(db *gorm.DB) error {
	logrus.Info("seeding storefront catalog")

	// Clear existing data, children before owners
	tables := []interface{}{
		&models.InventoryHistory{},
		&models.Inventory{},
		&models.CartItem{},
		&models.Cart{},
		&models.ProductImage{},
		&models.ProductReview{},
		&models.ProductQuestion{},
		&models.Product{},
		&models.Category{},
	}
	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}

	demoUser := &models.User{
		Name:  "Misafir Kullanıcı",
		Email: "misafir@sanatevi.example",
	}
	if err := demoUser.SetPassword("demo-password-1"); err != nil {
		return fmt.Errorf("failed to hash demo user password: %w", err)
	}
	if err := db.Where(models.User{Email: demoUser.Email}).FirstOrCreate(demoUser).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	categories, err := seedCategories(db)
	if err != nil {
		return err
	}

	products := seedProducts(categories)
	for _, p := range products {
		if err := createProduct(db, p); err != nil {
			return err
		}
	}

	logrus.WithField("products", len(products)).Info("catalog seeding completed")
	return nil
}

func seedCategories(db *gorm.DB) (map[string]*models.Category, error) {
	sanatEserleri := &models.Category{
		Name:        "Sanat Eserleri",
		Slug:        "sanat-eserleri",
		Description: "Osmanlı ve modern Türk sanatı ürünleri",
		IsActive:    true,
		SortOrder:   1,
		SEOTitle:    "Sanat Eserleri | Türk Sanat Ürünleri",
		SEODesc:     "Osmanlı motifleri, hat sanatı ve modern Türk sanatı ürünleri",
	}
	diniUrunler := &models.Category{
		Name:        "Dini Ürünler",
		Slug:        "dini-urunler",
		Description: "Tesbihler, namaz ürünleri ve dini objeler",
		IsActive:    true,
		SortOrder:   2,
		SEOTitle:    "Dini Ürünler | Tesbih ve Namaz Ürünleri",
		SEODesc:     "Kaliteli tesbihler, namaz ürünleri ve dini eserler",
	}
	for _, root := range []*models.Category{sanatEserleri, diniUrunler} {
		if err := db.Create(root).Error; err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", root.Slug, err)
		}
	}

	children := []*models.Category{
		{
			Name:        "Duvar Tabloları",
			Slug:        "duvar-tablolari",
			Description: "El yapımı duvar tabloları ve dekoratif sanat ürünleri",
			IsActive:    true,
			SortOrder:   1,
			ParentID:    &sanatEserleri.ID,
			SEOTitle:    "Duvar Tabloları | El Yapımı Sanat Ürünleri",
			SEODesc:     "El yapımı duvar tabloları, hat sanatı ve dekoratif sanat ürünleri",
		},
		{
			Name:        "Hat Sanatı",
			Slug:        "hat-sanati",
			Description: "Geleneksel ve modern hat sanatı ürünleri",
			IsActive:    true,
			SortOrder:   2,
			ParentID:    &sanatEserleri.ID,
			SEOTitle:    "Hat Sanatı | Hilye ve Esma-ül Hüsna",
			SEODesc:     "Geleneksel Türk hat sanatı, Hilye-i Şerif ve Esma-ül Hüsna ürünleri",
		},
		{
			Name:        "Tesbihler",
			Slug:        "tesbihler",
			Description: "Doğal taşlar ve el yapımı tesbihler",
			IsActive:    true,
			SortOrder:   1,
			ParentID:    &diniUrunler.ID,
			SEOTitle:    "Tesbihler | Kehribar ve Doğal Taş Tesbih",
			SEODesc:     "Kehribar, mercan ve doğal taşlardan yapılmış el işi tesbihler",
		},
		{
			Name:        "Namaz Ürünleri",
			Slug:        "namaz-urunleri",
			Description: "Seccade, hırka ve namaz aksesuarları",
			IsActive:    true,
			SortOrder:   2,
			ParentID:    &diniUrunler.ID,
			SEOTitle:    "Namaz Ürünleri | Seccade ve Namaz Aksesuarları",
			SEODesc:     "Kaliteli seccadeler, hırkalar ve namaz aksesuarları",
		},
	}
	for _, child := range children {
		if err := db.Create(child).Error; err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", child.Slug, err)
		}
	}

	return map[string]*models.Category{
		"sanat-eserleri":  sanatEserleri,
		"dini-urunler":    diniUrunler,
		"duvar-tablolari": children[0],
		"hat-sanati":      children[1],
		"tesbihler":       children[2],
		"namaz-urunleri":  children[3],
	}, nil
}

func createProduct(db *gorm.DB, p seedProduct) error {
	product := &models.Product{
		CategoryID:   p.category.ID,
		Name:         p.name,
		Slug:         p.slug,
		Description:  p.description,
		ShortDesc:    p.shortDesc,
		SKU:          p.sku,
		Price:        decimal.NewFromFloat(p.price),
		ComparePrice: decimal.NewNullDecimal(decimal.NewFromFloat(p.comparePrice)),
		CostPrice:    decimal.NewNullDecimal(decimal.NewFromFloat(p.costPrice)),
		Weight:       &p.weight,
		Dimensions: models.JSONB{
			"length": p.length,
			"width":  p.width,
			"height": p.height,
		},
		Tags:       p.tags,
		IsActive:   true,
		IsFeatured: rand.Float64() > 0.7,
		SEOTitle:   p.seoTitle,
		SEODesc:    p.seoDesc,
	}
	if err := db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product %s: %w", p.slug, err)
	}

	for i, url := range p.images {
		image := &models.ProductImage{
			ProductID: product.ID,
			URL:       url,
			Alt:       fmt.Sprintf("%s - Görsel %d", p.name, i+1),
			SortOrder: i,
		}
		if err := db.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create image for %s: %w", p.slug, err)
		}
	}

	minQuantity := p.stock * 20 / 100
	if minQuantity < 1 {
		minQuantity = 1
	}
	inventory := &models.Inventory{
		ProductID:      product.ID,
		Quantity:       p.stock,
		Reserved:       0,
		MinQuantity:    minQuantity,
		TrackQuantity:  true,
		AllowBackorder: false,
	}
	if err := db.Create(inventory).Error; err != nil {
		return fmt.Errorf("failed to create inventory for %s: %w", p.slug, err)
	}

	history := &models.InventoryHistory{
		InventoryID: inventory.ID,
		Quantity:    p.stock,
		Reason:      models.InventoryChangeInitial,
		Notes:       "Başlangıç stoğu",
	}
	if err := db.Create(history).Error; err != nil {
		return fmt.Errorf("failed to create inventory history for %s: %w", p.slug, err)
	}

	return nil
}
