package dto

import (
	"time"

	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type TutorPrincipalDTO struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

type PetInfoDTO struct {
	ID             string             `json:"id"`
	Nome           string             `json:"nome"`
	Foto           string             `json:"foto,omitempty"`
	Raca           *string            `json:"raca"`
	Peso           *float64           `json:"peso"`
	TutorPrincipal *TutorPrincipalDTO `json:"tutorPrincipal,omitempty"`
}

type ServicoInfoDTO struct {
	ID    string  `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

type AgendamentoViewDTO struct {
	ID string `json:"id"`

	Pet PetInfoDTO `json:"pet"`

	Data       time.Time  `json:"data"`
	HoraInicio time.Time  `json:"horaInicio"`
	HoraFim    *time.Time `json:"horaFim"`

	Observacoes string `json:"observacoes"`

	Status          string  `json:"status"`
	StatusPagamento string  `json:"statusPagamento"`
	MetodoPagamento *string `json:"metodoPagamento"`

	ValorTotal float64 `json:"valorTotal"`

	TransporteEntrada string `json:"transporteEntrada"`
	TransporteSaida   string `json:"transporteSaida"`

	EnviarNotificacao bool `json:"enviarNotificacao"`

	Servicos  []ServicoInfoDTO  `json:"servicos"`
	Checklist *models.Checklist `json:"checklist"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAgendamentoView monta a visão usada pela listagem e pelo detalhe:
// resumo do pet com tutor principal, serviços com o preço congelado na
// criação e o checklist quando existir.
func NewAgendamentoView(ag models.Agendamento) AgendamentoViewDTO {
	pet := PetInfoDTO{
		ID:   ag.Pet.ID,
		Nome: ag.Pet.Nome,
		Foto: ag.Pet.Foto,
		Raca: ag.Pet.Raca,
		Peso: ag.Pet.Peso,
	}

	for _, pt := range ag.Pet.Tutores {
		if pt.IsPrimario {
			pet.TutorPrincipal = &TutorPrincipalDTO{
				ID:       pt.Tutor.ID,
				Nome:     pt.Tutor.Nome,
				Telefone: pt.Tutor.Telefone,
			}
			break
		}
	}

	servicos := make([]ServicoInfoDTO, 0, len(ag.Servicos))
	for _, as := range ag.Servicos {
		servicos = append(servicos, ServicoInfoDTO{
			ID:    as.Servico.ID,
			Nome:  as.Servico.Nome,
			Preco: as.Preco,
		})
	}

	return AgendamentoViewDTO{
		ID:                ag.ID,
		Pet:               pet,
		Data:              ag.Data,
		HoraInicio:        ag.HoraInicio,
		HoraFim:           ag.HoraFim,
		Observacoes:       ag.Observacoes,
		Status:            ag.Status,
		StatusPagamento:   ag.StatusPagamento,
		MetodoPagamento:   ag.MetodoPagamento,
		ValorTotal:        ag.ValorTotal,
		TransporteEntrada: ag.TransporteEntrada,
		TransporteSaida:   ag.TransporteSaida,
		EnviarNotificacao: ag.EnviarNotificacao,
		Servicos:          servicos,
		Checklist:         ag.Checklist,
		CreatedAt:         ag.CreatedAt,
		UpdatedAt:         ag.UpdatedAt,
	}
}
