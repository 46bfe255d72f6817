package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Nome           string     `gorm:"size:100;not null" json:"nome"`
	Foto           string     `gorm:"type:text" json:"foto"`
	DataNascimento *time.Time `json:"dataNascimento"`
	Raca           *string    `gorm:"size:100" json:"raca"`
	Peso           *float64   `json:"peso"`
	Sexo           string     `gorm:"size:10" json:"sexo"`
	Alergias       string     `gorm:"type:text" json:"alergias"`
	Observacoes    string     `gorm:"type:text" json:"observacoes"`
	UsaTaxiDog     bool       `gorm:"default:false" json:"usaTaxiDog"`

	Tutores []PetTutor `gorm:"constraint:OnDelete:CASCADE;" json:"tutores,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PetTutor vincula pet e tutor. A lista é reescrita por completo a cada
// atualização do pet (delete + insert dentro de uma transação).
type PetTutor struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PetID   string `gorm:"size:36;index;not null" json:"petId"`
	TutorID string `gorm:"size:36;index;not null" json:"tutorId"`
	Tutor   Tutor  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tutor"`

	IsPrimario bool `gorm:"default:false" json:"isPrimario"`

	CreatedAt time.Time `json:"createdAt"`
}

func (pt *PetTutor) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == "" {
		pt.ID = uuid.NewString()
	}
	return nil
}
