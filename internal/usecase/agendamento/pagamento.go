package agendamento

import (
	"context"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type RegistrarPagamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegistrarPagamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegistrarPagamento {
	return &RegistrarPagamento{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca o agendamento como pago com o método informado. Não mexe
// no status do atendimento.
func (uc *RegistrarPagamento) Execute(
	ctx context.Context,
	userID string,
	agendamentoID string,
	metodo string,
) (*models.Agendamento, error) {

	ag, err := uc.repo.GetAgendamento(ctx, agendamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	if err := domain.RegistrarPagamento(ag, domain.MetodoPagamento(metodo)); err != nil {
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
		Action:   "pagamento_registrado",
		Entity:   "agendamento",
		EntityID: &ag.ID,
		Metadata: map[string]any{"metodo": metodo},
	})

	return uc.repo.GetAgendamento(ctx, agendamentoID)
}
