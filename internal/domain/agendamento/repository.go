package agendamento

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type Repository interface {
	// -------- Pet --------
	GetPet(
		ctx context.Context,
		petID string,
	) (*models.Pet, error)

	// -------- Servico --------
	ListServicosByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Servico, error)

	// -------- Agendamento --------
	CreateAgendamento(
		ctx context.Context,
		ag *models.Agendamento,
	) error

	GetAgendamento(
		ctx context.Context,
		id string,
	) (*models.Agendamento, error)

	// UpdateAgendamento grava os campos do agendamento e, quando servicos
	// não é nil, substitui a lista inteira de AgendamentoServico na mesma
	// transação.
	UpdateAgendamento(
		ctx context.Context,
		ag *models.Agendamento,
		servicos []models.AgendamentoServico,
	) error

	DeleteAgendamento(
		ctx context.Context,
		id string,
	) error

	ListAgendamentos(
		ctx context.Context,
		f Filters,
	) ([]models.Agendamento, error)

	ListAgendamentosDoDia(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Agendamento, error)

	// -------- Checklist --------
	GetChecklist(
		ctx context.Context,
		agendamentoID string,
	) (*models.Checklist, error)

	// CreateChecklistEConcluir cria o checklist e marca o agendamento como
	// CONCLUIDO na mesma transação.
	CreateChecklistEConcluir(
		ctx context.Context,
		cl *models.Checklist,
	) error

	UpdateChecklist(
		ctx context.Context,
		cl *models.Checklist,
	) error

	// -------- Notificação --------
	MarcarNotificado(
		ctx context.Context,
		agendamentoID string,
	) error
}
