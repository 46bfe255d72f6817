package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Agendamento struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PetID string `gorm:"size:36;index;not null" json:"petId"`
	Pet   Pet    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	Data       time.Time  `gorm:"not null" json:"data"`
	HoraInicio time.Time  `gorm:"not null" json:"horaInicio"`
	HoraFim    *time.Time `json:"horaFim"`

	Observacoes string `gorm:"type:text" json:"observacoes"`

	Status          string  `gorm:"size:20;default:'AGENDADO'" json:"status"`
	StatusPagamento string  `gorm:"size:20;default:'PENDENTE'" json:"statusPagamento"`
	MetodoPagamento *string `gorm:"size:30" json:"metodoPagamento"`

	ValorTotal float64 `json:"valorTotal"`

	TransporteEntrada string `gorm:"size:20;default:'DONO_TRAZ'" json:"transporteEntrada"`
	TransporteSaida   string `gorm:"size:20;default:'DONO_BUSCA'" json:"transporteSaida"`

	EnviarNotificacao bool `gorm:"default:false" json:"enviarNotificacao"`

	Servicos  []AgendamentoServico `gorm:"constraint:OnDelete:CASCADE;" json:"servicos,omitempty"`
	Checklist *Checklist           `gorm:"constraint:OnDelete:CASCADE;" json:"checklist,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Agendamento) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AgendamentoServico guarda o preço cobrado no momento da criação.
// Alterações posteriores na tabela de preços do serviço não afetam
// agendamentos já feitos.
type AgendamentoServico struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	AgendamentoID string  `gorm:"size:36;index;not null" json:"agendamentoId"`
	ServicoID     string  `gorm:"size:36;index;not null" json:"servicoId"`
	Servico       Servico `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"servico"`

	Preco float64 `gorm:"not null" json:"preco"`

	CreatedAt time.Time `json:"createdAt"`
}

func (as *AgendamentoServico) BeforeCreate(tx *gorm.DB) error {
	if as.ID == "" {
		as.ID = uuid.NewString()
	}
	return nil
}
