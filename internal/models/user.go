// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User exists so reviews and questions can reference a reviewer. Read paths
// only ever expose the display name; the omitempty tags keep column-limited
// preloads from leaking empty fields.
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email,omitempty" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`

	Reviews   []ProductReview   `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Questions []ProductQuestion `json:"questions,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
