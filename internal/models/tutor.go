package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tutor é o responsável pelo pet. A exclusão é bloqueada pelo handler
// enquanto existir vínculo em PetTutor.
type Tutor struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Email    string `gorm:"size:100" json:"email"`
	Telefone string `gorm:"size:20;not null" json:"telefone"`

	CEP         string `gorm:"size:9" json:"cep"`
	Rua         string `gorm:"size:150" json:"rua"`
	Numero      string `gorm:"size:20" json:"numero"`
	Complemento string `gorm:"size:100" json:"complemento"`
	Bairro      string `gorm:"size:100" json:"bairro"`
	Cidade      string `gorm:"size:100" json:"cidade"`
	Estado      string `gorm:"size:2" json:"estado"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tutor) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
