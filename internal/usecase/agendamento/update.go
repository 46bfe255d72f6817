package agendamento

import (
	"context"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
	"github.com/BruksfildServices01/petshop-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAgendamentoInput segue o estilo replace: campo presente substitui
// o valor atual. A lista de serviços, quando enviada, substitui a lista
// inteira (delete + insert na mesma transação).
type UpdateAgendamentoInput struct {
	PetID *string

	Data       *string // YYYY-MM-DD
	HoraInicio *string // HH:MM
	HoraFim    *string // HH:MM

	Observacoes *string

	Status            *string
	StatusPagamento   *string
	MetodoPagamento   *string
	ValorTotal        *float64
	TransporteEntrada *string
	TransporteSaida   *string
	EnviarNotificacao *bool

	Servicos []ServicoPrecoInput
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAgendamento {
	return &UpdateAgendamento{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAgendamento) Execute(
	ctx context.Context,
	userID string,
	agendamentoID string,
	in UpdateAgendamentoInput,
) (*models.Agendamento, error) {

	ag, err := uc.repo.GetAgendamento(ctx, agendamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	if in.PetID != nil {
		if _, err := uc.repo.GetPet(ctx, *in.PetID); err != nil {
			return nil, httperr.ErrBusiness("pet_nao_encontrado")
		}
		ag.PetID = *in.PetID
	}

	if in.Data != nil {
		data, err := timezone.ParseDate(*in.Data)
		if err != nil {
			return nil, httperr.ErrBusiness("data_invalida")
		}
		ag.Data = data

		if in.HoraInicio != nil {
			hi, err := timezone.ParseDateTime(*in.Data, *in.HoraInicio)
			if err != nil {
				return nil, httperr.ErrBusiness("hora_invalida")
			}
			ag.HoraInicio = hi
		}

		// Hora de fim só existe acompanhada da data; sem o par, o campo
		// fica ausente.
		ag.HoraFim = nil
		if in.HoraFim != nil {
			if hf, err := timezone.ParseDateTime(*in.Data, *in.HoraFim); err == nil {
				ag.HoraFim = &hf
			}
		}
	}

	if in.Observacoes != nil {
		ag.Observacoes = *in.Observacoes
	}

	if in.Status != nil {
		if !domain.Status(*in.Status).Valid() {
			return nil, httperr.ErrBusiness("status_invalido")
		}
		ag.Status = *in.Status
	}

	if in.StatusPagamento != nil {
		if !domain.StatusPagamento(*in.StatusPagamento).Valid() {
			return nil, httperr.ErrBusiness("status_pagamento_invalido")
		}
		ag.StatusPagamento = *in.StatusPagamento
	}

	if in.MetodoPagamento != nil {
		if !domain.MetodoPagamento(*in.MetodoPagamento).Valid() {
			return nil, httperr.ErrBusiness("metodo_pagamento_invalido")
		}
		ag.MetodoPagamento = in.MetodoPagamento
	}

	if in.ValorTotal != nil {
		ag.ValorTotal = *in.ValorTotal
	}

	if in.TransporteEntrada != nil {
		if !domain.TransporteEntrada(*in.TransporteEntrada).Valid() {
			return nil, httperr.ErrBusiness("transporte_entrada_invalido")
		}
		ag.TransporteEntrada = *in.TransporteEntrada
	}

	if in.TransporteSaida != nil {
		if !domain.TransporteSaida(*in.TransporteSaida).Valid() {
			return nil, httperr.ErrBusiness("transporte_saida_invalido")
		}
		ag.TransporteSaida = *in.TransporteSaida
	}

	if in.EnviarNotificacao != nil {
		ag.EnviarNotificacao = *in.EnviarNotificacao
	}

	var servicos []models.AgendamentoServico
	if len(in.Servicos) > 0 {
		if err := validarServicosExistem(ctx, uc.repo, in.Servicos); err != nil {
			return nil, err
		}
		servicos = make([]models.AgendamentoServico, 0, len(in.Servicos))
		for _, s := range in.Servicos {
			servicos = append(servicos, models.AgendamentoServico{
				AgendamentoID: ag.ID,
				ServicoID:     s.ID,
				Preco:         s.Preco,
			})
		}
	}

	// Zera as associações carregadas para o Save não regravá-las fora da
	// substituição controlada.
	ag.Servicos = nil
	ag.Checklist = nil
	ag.Pet = models.Pet{}

	if err := uc.repo.UpdateAgendamento(ctx, ag, servicos); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agendamento_atualizado",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	return uc.repo.GetAgendamento(ctx, agendamentoID)
}

func validarServicosExistem(
	ctx context.Context,
	repo domain.Repository,
	servicos []ServicoPrecoInput,
) error {
	ids := make([]string, 0, len(servicos))
	for _, s := range servicos {
		ids = append(ids, s.ID)
	}

	found, err := repo.ListServicosByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(uniqueIDs(ids)) {
		return httperr.ErrBusiness("servico_nao_encontrado")
	}
	return nil
}
