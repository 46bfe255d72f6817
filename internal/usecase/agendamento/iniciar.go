package agendamento

import (
	"context"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type IniciarAtendimento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewIniciarAtendimento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *IniciarAtendimento {
	return &IniciarAtendimento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *IniciarAtendimento) Execute(
	ctx context.Context,
	userID string,
	agendamentoID string,
) (*models.Agendamento, error) {

	ag, err := uc.repo.GetAgendamento(ctx, agendamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	if err := domain.Iniciar(ag); err != nil {
		return nil, err
	}

	ag.Servicos = nil
	ag.Checklist = nil
	ag.Pet = models.Pet{}

	if err := uc.repo.UpdateAgendamento(ctx, ag, nil); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "atendimento_iniciado",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	return uc.repo.GetAgendamento(ctx, agendamentoID)
}
