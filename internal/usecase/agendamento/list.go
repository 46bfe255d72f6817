package agendamento

import (
	"context"

	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/dto"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/timezone"
)

// ParseFilters monta os filtros da listagem a partir da query string.
// Data inválida não derruba a consulta: o filtro é simplesmente ignorado.
func ParseFilters(petID, status, dataInicio, dataFim, search string) domain.Filters {
	f := domain.Filters{
		PetID:  petID,
		Status: status,
		Search: search,
	}

	if dataInicio != "" {
		if d, err := timezone.ParseDate(dataInicio); err == nil {
			start := timezone.StartOfDay(d)
			f.DataInicio = &start
		}
	}

	if dataFim != "" {
		if d, err := timezone.ParseDate(dataFim); err == nil {
			end := timezone.EndOfDay(d)
			f.DataFim = &end
		}
	}

	return f
}

// ======================================================
// LIST
// ======================================================

type ListAgendamentos struct {
	repo domain.Repository
}

func NewListAgendamentos(repo domain.Repository) *ListAgendamentos {
	return &ListAgendamentos{repo: repo}
}

func (uc *ListAgendamentos) Execute(
	ctx context.Context,
	f domain.Filters,
) ([]dto.AgendamentoViewDTO, error) {

	ags, err := uc.repo.ListAgendamentos(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendamentoViewDTO, 0, len(ags))
	for _, ag := range ags {
		out = append(out, dto.NewAgendamentoView(ag))
	}

	return out, nil
}

// ======================================================
// LIST BY DAY
// ======================================================

type ListAgendamentosDoDia struct {
	repo domain.Repository
}

func NewListAgendamentosDoDia(repo domain.Repository) *ListAgendamentosDoDia {
	return &ListAgendamentosDoDia{repo: repo}
}

func (uc *ListAgendamentosDoDia) Execute(
	ctx context.Context,
	dateStr string,
) ([]dto.AgendamentoViewDTO, error) {

	d, err := timezone.ParseDate(dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("data_invalida")
	}

	ags, err := uc.repo.ListAgendamentosDoDia(
		ctx,
		timezone.StartOfDay(d),
		timezone.EndOfDay(d),
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgendamentoViewDTO, 0, len(ags))
	for _, ag := range ags {
		out = append(out, dto.NewAgendamentoView(ag))
	}

	return out, nil
}
