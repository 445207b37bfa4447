// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// Cart and CartItem are part of the persisted schema only. Cart management
// is a separate subsystem; no API in this service reads or writes them.
type Cart struct {
	BaseModel
	UserID    *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	SessionID string     `json:"session_id,omitempty" gorm:"size:255;index"`

	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
