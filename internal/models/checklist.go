package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Checklist é o formulário de observações pós-atendimento, um por
// agendamento. O primeiro envio também conclui o agendamento.
type Checklist struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	AgendamentoID string `gorm:"size:36;uniqueIndex;not null" json:"agendamentoId"`

	TemCarrapatos  bool `gorm:"default:false" json:"temCarrapatos"`
	TemPulgas      bool `gorm:"default:false" json:"temPulgas"`
	ProblemaPele   bool `gorm:"default:false" json:"problemaPele"`
	ProblemaDentes bool `gorm:"default:false" json:"problemaDentes"`

	OutrosProblemas string `gorm:"type:text" json:"outrosProblemas"`
	Observacoes     string `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (cl *Checklist) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == "" {
		cl.ID = uuid.NewString()
	}
	return nil
}
