package agendamento

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

// -------------------------
// Repositório em memória
// -------------------------

type fakeRepo struct {
	pets       map[string]models.Pet
	servicos   map[string]models.Servico
	ags        map[string]models.Agendamento
	checklists map[string]models.Checklist // por agendamentoID

	seq int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		pets:       map[string]models.Pet{},
		servicos:   map[string]models.Servico{},
		ags:        map[string]models.Agendamento{},
		checklists: map[string]models.Checklist{},
	}
}

func (r *fakeRepo) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s-%d", prefix, r.seq)
}

func (r *fakeRepo) GetPet(ctx context.Context, petID string) (*models.Pet, error) {
	p, ok := r.pets[petID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeRepo) ListServicosByIDs(ctx context.Context, ids []string) ([]models.Servico, error) {
	out := make([]models.Servico, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := r.servicos[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAgendamento(ctx context.Context, ag *models.Agendamento) error {
	if ag.ID == "" {
		ag.ID = r.nextID("ag")
	}
	r.ags[ag.ID] = *ag
	return nil
}

func (r *fakeRepo) GetAgendamento(ctx context.Context, id string) (*models.Agendamento, error) {
	ag, ok := r.ags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if pet, ok := r.pets[ag.PetID]; ok {
		ag.Pet = pet
	}

	servicos := make([]models.AgendamentoServico, len(ag.Servicos))
	copy(servicos, ag.Servicos)
	for i := range servicos {
		if s, ok := r.servicos[servicos[i].ServicoID]; ok {
			servicos[i].Servico = s
		}
	}
	ag.Servicos = servicos

	return &ag, nil
}

func (r *fakeRepo) UpdateAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
	servicos []models.AgendamentoServico,
) error {
	stored, ok := r.ags[ag.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	if servicos == nil {
		servicos = stored.Servicos
	}

	cp := *ag
	cp.Servicos = servicos
	r.ags[ag.ID] = cp
	return nil
}

func (r *fakeRepo) DeleteAgendamento(ctx context.Context, id string) error {
	delete(r.ags, id)
	return nil
}

func (r *fakeRepo) ListAgendamentos(ctx context.Context, f domain.Filters) ([]models.Agendamento, error) {
	out := make([]models.Agendamento, 0)
	for _, ag := range r.ags {
		if f.PetID != "" && ag.PetID != f.PetID {
			continue
		}
		if f.Status != "" && ag.Status != f.Status {
			continue
		}
		if f.DataInicio != nil && ag.Data.Before(*f.DataInicio) {
			continue
		}
		if f.DataFim != nil && ag.Data.After(*f.DataFim) {
			continue
		}
		out = append(out, ag)
	}
	return out, nil
}

func (r *fakeRepo) ListAgendamentosDoDia(ctx context.Context, start, end time.Time) ([]models.Agendamento, error) {
	out := make([]models.Agendamento, 0)
	for _, ag := range r.ags {
		if ag.HoraInicio.Before(start) || ag.HoraInicio.After(end) {
			continue
		}
		out = append(out, ag)
	}
	return out, nil
}

func (r *fakeRepo) GetChecklist(ctx context.Context, agendamentoID string) (*models.Checklist, error) {
	cl, ok := r.checklists[agendamentoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &cl, nil
}

func (r *fakeRepo) CreateChecklistEConcluir(ctx context.Context, cl *models.Checklist) error {
	if cl.ID == "" {
		cl.ID = r.nextID("cl")
	}
	r.checklists[cl.AgendamentoID] = *cl

	ag, ok := r.ags[cl.AgendamentoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ag.Status = "CONCLUIDO"
	r.ags[cl.AgendamentoID] = ag
	return nil
}

func (r *fakeRepo) UpdateChecklist(ctx context.Context, cl *models.Checklist) error {
	if _, ok := r.checklists[cl.AgendamentoID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.checklists[cl.AgendamentoID] = *cl
	return nil
}

func (r *fakeRepo) MarcarNotificado(ctx context.Context, agendamentoID string) error {
	ag, ok := r.ags[agendamentoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	ag.EnviarNotificacao = true
	r.ags[agendamentoID] = ag
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)
