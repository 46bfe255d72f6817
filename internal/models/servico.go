package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Servico struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nome        string `gorm:"size:100;not null" json:"nome"`
	Observacoes string `gorm:"type:text" json:"observacoes"`

	Precos []Preco `gorm:"constraint:OnDelete:CASCADE;" json:"precos"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Servico) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Preco é uma faixa de preço do serviço. Raca e Peso nulos funcionam como
// curinga; ambos nulos é o preço base.
type Preco struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ServicoID string `gorm:"size:36;index;not null" json:"servicoId"`

	Raca  *string `gorm:"size:100" json:"raca"`
	Peso  *int    `json:"peso"`
	Preco float64 `gorm:"not null" json:"preco"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *Preco) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
