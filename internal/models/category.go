// internal/models/category.go
package models

import (
	"github.com/google/uuid"
)

type Category struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:255;not null"`
	Slug        string     `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description string     `json:"description" gorm:"type:text"`
	IsActive    bool       `json:"is_active" gorm:"default:true;index"`
	SortOrder   int        `json:"sort_order" gorm:"default:0"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	SEOTitle    string     `json:"seo_title,omitempty" gorm:"size:255"`
	SEODesc     string     `json:"seo_desc,omitempty" gorm:"size:500"`

	// Relationships
	Parent   *Category  `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	Children []Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Products []Product  `json:"products,omitempty" gorm:"foreignKey:CategoryID"`

	// Number of active products, filled by the repository. Not a column.
	ProductCount int64 `json:"product_count" gorm:"-"`
}
