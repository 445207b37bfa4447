// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// ProductReview is created unapproved and stays invisible to reads until a
// moderator flips IsApproved.
type ProductReview struct {
	BaseModel
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Rating     int       `json:"rating" gorm:"not null"`
	Title      string    `json:"title,omitempty" gorm:"size:255"`
	Comment    string    `json:"comment,omitempty" gorm:"type:text"`
	IsApproved bool      `json:"is_approved" gorm:"default:false;index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type ProductQuestion struct {
	BaseModel
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Question   string    `json:"question" gorm:"type:text;not null"`
	Answer     string    `json:"answer,omitempty" gorm:"type:text"`
	IsApproved bool      `json:"is_approved" gorm:"default:false;index"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
