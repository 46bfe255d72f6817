package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/dto"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/middleware"
	usecase "github.com/BruksfildServices01/petshop-manager/internal/usecase/agendamento"
)

type AgendamentoHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	create   *usecase.CreateAgendamento
	update   *usecase.UpdateAgendamento
	listar   *usecase.ListAgendamentos
	doDia    *usecase.ListAgendamentosDoDia
	iniciar  *usecase.IniciarAtendimento
	cancelar *usecase.CancelarAgendamento
	pagar    *usecase.RegistrarPagamento
	check    *usecase.SubmitChecklist
	notifica *usecase.NotificarTutor
	calcular *usecase.CalcularPreco
}

func NewAgendamentoHandler(repo domain.Repository, dispatcher *audit.Dispatcher) *AgendamentoHandler {
	return &AgendamentoHandler{
		repo:  repo,
		audit: dispatcher,

		create:   usecase.NewCreateAgendamento(repo, dispatcher),
		update:   usecase.NewUpdateAgendamento(repo, dispatcher),
		listar:   usecase.NewListAgendamentos(repo),
		doDia:    usecase.NewListAgendamentosDoDia(repo),
		iniciar:  usecase.NewIniciarAtendimento(repo, dispatcher),
		cancelar: usecase.NewCancelarAgendamento(repo, dispatcher),
		pagar:    usecase.NewRegistrarPagamento(repo, dispatcher),
		check:    usecase.NewSubmitChecklist(repo, dispatcher),
		notifica: usecase.NewNotificarTutor(repo, dispatcher),
		calcular: usecase.NewCalcularPreco(repo),
	}
}

// --------- Requests ---------

type ServicoPrecoRequest struct {
	ID    string  `json:"id" binding:"required"`
	Preco float64 `json:"preco"`
}

type CreateAgendamentoRequest struct {
	PetID string `json:"petId"`

	Data       string `json:"data"`       // YYYY-MM-DD
	HoraInicio string `json:"horaInicio"` // HH:MM
	HoraFim    string `json:"horaFim"`

	Observacoes string `json:"observacoes"`

	Status            string  `json:"status"`
	StatusPagamento   string  `json:"statusPagamento"`
	MetodoPagamento   *string `json:"metodoPagamento"`
	ValorTotal        float64 `json:"valorTotal"`
	TransporteEntrada string  `json:"transporteEntrada"`
	TransporteSaida   string  `json:"transporteSaida"`
	EnviarNotificacao bool    `json:"enviarNotificacao"`

	Servicos []ServicoPrecoRequest `json:"servicos"`
}

type UpdateAgendamentoRequest struct {
	PetID *string `json:"petId"`

	Data       *string `json:"data"`
	HoraInicio *string `json:"horaInicio"`
	HoraFim    *string `json:"horaFim"`

	Observacoes *string `json:"observacoes"`

	Status            *string  `json:"status"`
	StatusPagamento   *string  `json:"statusPagamento"`
	MetodoPagamento   *string  `json:"metodoPagamento"`
	ValorTotal        *float64 `json:"valorTotal"`
	TransporteEntrada *string  `json:"transporteEntrada"`
	TransporteSaida   *string  `json:"transporteSaida"`
	EnviarNotificacao *bool    `json:"enviarNotificacao"`

	Servicos []ServicoPrecoRequest `json:"servicos"`
}

type ChecklistRequest struct {
	TemCarrapatos  bool `json:"temCarrapatos"`
	TemPulgas      bool `json:"temPulgas"`
	ProblemaPele   bool `json:"problemaPele"`
	ProblemaDentes bool `json:"problemaDentes"`

	OutrosProblemas string `json:"outrosProblemas"`
	Observacoes     string `json:"observacoes"`
}

type PagamentoRequest struct {
	MetodoPagamento string `json:"metodoPagamento" binding:"required"`
}

type CalcularPrecoRequest struct {
	PetID      string   `json:"petId" binding:"required"`
	ServicoIDs []string `json:"servicoIds" binding:"required,min=1"`
}

// --------- Error mapping ---------

var businessMessages = map[string]string{
	"agendamento_nao_encontrado":  "Agendamento não encontrado.",
	"pet_nao_encontrado":          "Pet não encontrado.",
	"servico_nao_encontrado":      "Um ou mais serviços não existem.",
	"pet_obrigatorio":             "Pet é obrigatório.",
	"data_hora_obrigatorias":      "Data e hora de início são obrigatórias.",
	"servico_obrigatorio":         "Pelo menos um serviço é obrigatório.",
	"data_invalida":               "Data inválida.",
	"hora_invalida":               "Hora inválida.",
	"status_invalido":             "Status inválido.",
	"status_pagamento_invalido":   "Status de pagamento inválido.",
	"metodo_pagamento_invalido":   "Método de pagamento inválido.",
	"transporte_entrada_invalido": "Transporte de entrada inválido.",
	"transporte_saida_invalido":   "Transporte de saída inválido.",
	"estado_invalido":             "O agendamento não permite essa operação no estado atual.",
	"pagamento_ja_registrado":     "Pagamento já registrado para este agendamento.",
	"tutor_sem_telefone":          "O tutor principal não possui telefone cadastrado.",
	"telefone_invalido":           "Telefone do tutor é inválido.",
	"dados_invalidos":             "Dados inválidos.",
}

func writeAgendamentoError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Operação inválida."
	}

	switch code {
	case "agendamento_nao_encontrado", "pet_nao_encontrado", "servico_nao_encontrado":
		httperr.NotFound(c, code, msg)
	case "estado_invalido", "pagamento_ja_registrado":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

func currentUserID(c *gin.Context) string {
	return c.MustGet(middleware.ContextUserID).(string)
}

// ======================================================
// LIST
// ======================================================

func (h *AgendamentoHandler) List(c *gin.Context) {
	f := usecase.ParseFilters(
		c.Query("petId"),
		c.Query("status"),
		c.Query("dataInicio"),
		c.Query("dataFim"),
		c.Query("search"),
	)

	out, err := h.listar.Execute(c.Request.Context(), f)
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AgendamentoHandler) ListDoDia(c *gin.Context) {
	out, err := h.doDia.Execute(c.Request.Context(), c.Query("data"))
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// GET
// ======================================================

func (h *AgendamentoHandler) Get(c *gin.Context) {
	ag, err := h.repo.GetAgendamento(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_agendamento", "Erro ao buscar agendamento.")
		return
	}

	c.JSON(http.StatusOK, dto.NewAgendamentoView(*ag))
}

// ======================================================
// CREATE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := usecase.CreateAgendamentoInput{
		PetID:             req.PetID,
		Data:              req.Data,
		HoraInicio:        req.HoraInicio,
		HoraFim:           req.HoraFim,
		Observacoes:       req.Observacoes,
		Status:            req.Status,
		StatusPagamento:   req.StatusPagamento,
		MetodoPagamento:   req.MetodoPagamento,
		ValorTotal:        req.ValorTotal,
		TransporteEntrada: req.TransporteEntrada,
		TransporteSaida:   req.TransporteSaida,
		EnviarNotificacao: req.EnviarNotificacao,
		Servicos:          toServicoInputs(req.Servicos),
	}

	ag, err := h.create.Execute(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAgendamentoView(*ag))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AgendamentoHandler) Update(c *gin.Context) {
	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := usecase.UpdateAgendamentoInput{
		PetID:             req.PetID,
		Data:              req.Data,
		HoraInicio:        req.HoraInicio,
		HoraFim:           req.HoraFim,
		Observacoes:       req.Observacoes,
		Status:            req.Status,
		StatusPagamento:   req.StatusPagamento,
		MetodoPagamento:   req.MetodoPagamento,
		ValorTotal:        req.ValorTotal,
		TransporteEntrada: req.TransporteEntrada,
		TransporteSaida:   req.TransporteSaida,
		EnviarNotificacao: req.EnviarNotificacao,
		Servicos:          toServicoInputs(req.Servicos),
	}

	ag, err := h.update.Execute(c.Request.Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAgendamentoView(*ag))
}

func toServicoInputs(req []ServicoPrecoRequest) []usecase.ServicoPrecoInput {
	if len(req) == 0 {
		return nil
	}
	out := make([]usecase.ServicoPrecoInput, 0, len(req))
	for _, s := range req {
		out = append(out, usecase.ServicoPrecoInput{ID: s.ID, Preco: s.Preco})
	}
	return out
}

// ======================================================
// DELETE
// ======================================================

func (h *AgendamentoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.repo.GetAgendamento(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_agendamento", "Erro ao buscar agendamento.")
		return
	}

	if err := h.repo.DeleteAgendamento(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_agendamento", "Erro ao excluir agendamento.")
		return
	}

	userID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agendamento_excluido",
		Entity:   "agendamento",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// TRANSIÇÕES
// ======================================================

func (h *AgendamentoHandler) Iniciar(c *gin.Context) {
	ag, err := h.iniciar.Execute(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAgendamentoView(*ag))
}

func (h *AgendamentoHandler) Cancelar(c *gin.Context) {
	ag, err := h.cancelar.Execute(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAgendamentoView(*ag))
}

func (h *AgendamentoHandler) RegistrarPagamento(c *gin.Context) {
	var req PagamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Método de pagamento é obrigatório.")
		return
	}

	ag, err := h.pagar.Execute(
		c.Request.Context(), currentUserID(c), c.Param("id"), req.MetodoPagamento,
	)
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAgendamentoView(*ag))
}

// ======================================================
// CHECKLIST
// ======================================================

func (h *AgendamentoHandler) GetChecklist(c *gin.Context) {
	check, err := h.repo.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "checklist_nao_encontrado", "Checklist não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_checklist", "Erro ao buscar checklist.")
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *AgendamentoHandler) SubmitChecklist(c *gin.Context) {
	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := usecase.ChecklistInput{
		TemCarrapatos:   req.TemCarrapatos,
		TemPulgas:       req.TemPulgas,
		ProblemaPele:    req.ProblemaPele,
		ProblemaDentes:  req.ProblemaDentes,
		OutrosProblemas: req.OutrosProblemas,
		Observacoes:     req.Observacoes,
	}

	check, err := h.check.Execute(c.Request.Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, check)
}

// ======================================================
// NOTIFICAÇÃO
// ======================================================

func (h *AgendamentoHandler) NotificarTutor(c *gin.Context) {
	result, err := h.notifica.Execute(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// CÁLCULO DE PREÇO
// ======================================================

func (h *AgendamentoHandler) CalcularPreco(c *gin.Context) {
	var req CalcularPrecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Pet e serviços são obrigatórios.")
		return
	}

	result, err := h.calcular.Execute(c.Request.Context(), req.PetID, req.ServicoIDs)
	if err != nil {
		writeAgendamentoError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
