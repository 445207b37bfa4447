// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	CategoryID   uuid.UUID           `json:"category_id" gorm:"type:uuid;not null;index"`
	Name         string              `json:"name" gorm:"size:255;not null"`
	Slug         string              `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description  string              `json:"description" gorm:"type:text"`
	ShortDesc    string              `json:"short_desc,omitempty" gorm:"size:500"`
	SKU          string              `json:"sku,omitempty" gorm:"size:100;index"`
	Price        decimal.Decimal     `json:"price" gorm:"type:decimal(12,2);not null"`
	ComparePrice decimal.NullDecimal `json:"compare_price,omitempty" gorm:"type:decimal(12,2)"`
	CostPrice    decimal.NullDecimal `json:"-" gorm:"type:decimal(12,2)"`
	Weight       *float64            `json:"weight,omitempty" gorm:"type:decimal(10,2)"`
	Dimensions   JSONB               `json:"dimensions,omitempty" gorm:"type:jsonb"`
	Tags         string              `json:"tags,omitempty" gorm:"size:500"`
	IsActive     bool                `json:"is_active" gorm:"default:true;index"`
	IsFeatured   bool                `json:"is_featured" gorm:"default:false;index"`
	SEOTitle     string              `json:"seo_title,omitempty" gorm:"size:255"`
	SEODesc      string              `json:"seo_desc,omitempty" gorm:"size:500"`

	// Relationships
	Category  *Category         `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images    []ProductImage    `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Inventory *Inventory        `json:"inventory,omitempty" gorm:"foreignKey:ProductID"`
	Reviews   []ProductReview   `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	Questions []ProductQuestion `json:"questions,omitempty" gorm:"foreignKey:ProductID"`
}

type ProductImage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"size:1000;not null"`
	Alt       string    `json:"alt,omitempty" gorm:"size:255"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// Inventory is one-to-one with Product. When TrackQuantity is false the
// product is always considered in stock; AllowBackorder makes a zero
// quantity still purchasable.
type Inventory struct {
	BaseModel
	ProductID      uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex"`
	Quantity       int       `json:"quantity" gorm:"default:0"`
	Reserved       int       `json:"reserved" gorm:"default:0"`
	MinQuantity    int       `json:"min_quantity" gorm:"default:0"`
	TrackQuantity  bool      `json:"track_quantity" gorm:"default:true"`
	AllowBackorder bool      `json:"allow_backorder" gorm:"default:false"`

	History []InventoryHistory `json:"history,omitempty" gorm:"foreignKey:InventoryID"`
}

type InventoryHistory struct {
	ID          uuid.UUID             `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InventoryID uuid.UUID             `json:"inventory_id" gorm:"type:uuid;not null;index"`
	Quantity    int                   `json:"quantity" gorm:"not null"`
	Reason      InventoryChangeReason `json:"reason" gorm:"type:varchar(20);not null"`
	Notes       string                `json:"notes,omitempty" gorm:"size:500"`
	CreatedAt   time.Time             `json:"created_at"`
}
