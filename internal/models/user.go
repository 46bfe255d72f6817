package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
