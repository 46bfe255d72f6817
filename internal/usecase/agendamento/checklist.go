package agendamento

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type ChecklistInput struct {
	TemCarrapatos  bool
	TemPulgas      bool
	ProblemaPele   bool
	ProblemaDentes bool

	OutrosProblemas string
	Observacoes     string
}

type SubmitChecklist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitChecklist(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitChecklist {
	return &SubmitChecklist{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria ou atualiza o checklist do agendamento. Só o primeiro
// envio conclui o agendamento; edições posteriores não mexem no status,
// para não reverter um agendamento cancelado ou ajustado manualmente.
func (uc *SubmitChecklist) Execute(
	ctx context.Context,
	userID string,
	agendamentoID string,
	in ChecklistInput,
) (*models.Checklist, error) {

	ag, err := uc.repo.GetAgendamento(ctx, agendamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	existing, err := uc.repo.GetChecklist(ctx, agendamentoID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.TemCarrapatos = in.TemCarrapatos
		existing.TemPulgas = in.TemPulgas
		existing.ProblemaPele = in.ProblemaPele
		existing.ProblemaDentes = in.ProblemaDentes
		existing.OutrosProblemas = in.OutrosProblemas
		existing.Observacoes = in.Observacoes

		if err := uc.repo.UpdateChecklist(ctx, existing); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "checklist_atualizado",
			Entity:   "checklist",
			EntityID: &existing.ID,
		})

		return existing, nil
	}

	cl := &models.Checklist{
		AgendamentoID:  agendamentoID,
		TemCarrapatos:  in.TemCarrapatos,
		TemPulgas:      in.TemPulgas,
		ProblemaPele:   in.ProblemaPele,
		ProblemaDentes: in.ProblemaDentes,

		OutrosProblemas: in.OutrosProblemas,
		Observacoes:     in.Observacoes,
	}

	if err := uc.repo.CreateChecklistEConcluir(ctx, cl); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "checklist_criado",
		Entity:   "checklist",
		EntityID: &cl.ID,
		Metadata: map[string]any{"agendamentoId": ag.ID, "statusAnterior": ag.Status},
	})

	return cl, nil
}
