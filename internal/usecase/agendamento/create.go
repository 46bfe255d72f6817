package agendamento

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
	"github.com/BruksfildServices01/petshop-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ServicoPrecoInput struct {
	ID    string
	Preco float64
}

type CreateAgendamentoInput struct {
	PetID string

	Data       string // YYYY-MM-DD
	HoraInicio string // HH:MM
	HoraFim    string // HH:MM, opcional

	Observacoes string

	Status            string
	StatusPagamento   string
	MetodoPagamento   *string
	ValorTotal        float64
	TransporteEntrada string
	TransporteSaida   string
	EnviarNotificacao bool

	Servicos []ServicoPrecoInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAgendamento {
	return &CreateAgendamento{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAgendamento) Execute(
	ctx context.Context,
	userID string,
	in CreateAgendamentoInput,
) (*models.Agendamento, error) {

	if in.PetID == "" {
		return nil, httperr.ErrBusiness("pet_obrigatorio")
	}
	if in.Data == "" || in.HoraInicio == "" {
		return nil, httperr.ErrBusiness("data_hora_obrigatorias")
	}
	if len(in.Servicos) == 0 {
		return nil, httperr.ErrBusiness("servico_obrigatorio")
	}

	if _, err := uc.repo.GetPet(ctx, in.PetID); err != nil {
		return nil, httperr.ErrBusiness("pet_nao_encontrado")
	}

	if err := validarServicosExistem(ctx, uc.repo, in.Servicos); err != nil {
		return nil, err
	}

	data, err := timezone.ParseDate(in.Data)
	if err != nil {
		return nil, httperr.ErrBusiness("data_invalida")
	}

	horaInicio, err := timezone.ParseDateTime(in.Data, in.HoraInicio)
	if err != nil {
		return nil, httperr.ErrBusiness("hora_invalida")
	}

	// Hora de fim sem data (ou vice-versa) fica simplesmente ausente.
	var horaFim *time.Time
	if in.HoraFim != "" {
		if hf, err := timezone.ParseDateTime(in.Data, in.HoraFim); err == nil {
			horaFim = &hf
		}
	}

	status, statusPagamento, entrada, saida, err := resolverEnums(
		in.Status, in.StatusPagamento, in.TransporteEntrada, in.TransporteSaida,
	)
	if err != nil {
		return nil, err
	}

	if in.MetodoPagamento != nil && !domain.MetodoPagamento(*in.MetodoPagamento).Valid() {
		return nil, httperr.ErrBusiness("metodo_pagamento_invalido")
	}

	servicos := make([]models.AgendamentoServico, 0, len(in.Servicos))
	for _, s := range in.Servicos {
		servicos = append(servicos, models.AgendamentoServico{
			ServicoID: s.ID,
			Preco:     s.Preco,
		})
	}

	ag := &models.Agendamento{
		PetID:             in.PetID,
		Data:              data,
		HoraInicio:        horaInicio,
		HoraFim:           horaFim,
		Observacoes:       in.Observacoes,
		Status:            status,
		StatusPagamento:   statusPagamento,
		MetodoPagamento:   in.MetodoPagamento,
		ValorTotal:        in.ValorTotal,
		TransporteEntrada: entrada,
		TransporteSaida:   saida,
		EnviarNotificacao: in.EnviarNotificacao,
		Servicos:          servicos,
	}

	if err := uc.repo.CreateAgendamento(ctx, ag); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agendamento_criado",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	// Recarrega com as associações (pet, serviços) para a resposta.
	return uc.repo.GetAgendamento(ctx, ag.ID)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolverEnums aplica os defaults de criação e valida os valores vindos
// do cliente.
func resolverEnums(
	status, statusPagamento, entrada, saida string,
) (string, string, string, string, error) {

	if status == "" {
		status = string(domain.InitialStatus())
	}
	if !domain.Status(status).Valid() {
		return "", "", "", "", httperr.ErrBusiness("status_invalido")
	}

	if statusPagamento == "" {
		statusPagamento = string(domain.PagamentoPendente)
	}
	if !domain.StatusPagamento(statusPagamento).Valid() {
		return "", "", "", "", httperr.ErrBusiness("status_pagamento_invalido")
	}

	if entrada == "" {
		entrada = string(domain.EntradaDonoTraz)
	}
	if !domain.TransporteEntrada(entrada).Valid() {
		return "", "", "", "", httperr.ErrBusiness("transporte_entrada_invalido")
	}

	if saida == "" {
		saida = string(domain.SaidaDonoBusca)
	}
	if !domain.TransporteSaida(saida).Valid() {
		return "", "", "", "", httperr.ErrBusiness("transporte_saida_invalido")
	}

	return status, statusPagamento, entrada, saida, nil
}
