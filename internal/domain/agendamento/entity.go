package agendamento

import (
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Iniciar(ag *models.Agendamento) error {
	if err := CanIniciar(Status(ag.Status)); err != nil {
		return err
	}

	ag.Status = string(StatusEmAndamento)
	return nil
}

func Cancelar(ag *models.Agendamento) error {
	if err := CanCancelar(Status(ag.Status)); err != nil {
		return err
	}

	ag.Status = string(StatusCancelado)
	return nil
}

// Concluir é disparado pelo primeiro envio do checklist e não valida o
// estado atual: o checklist conclui o agendamento incondicionalmente.
func Concluir(ag *models.Agendamento) {
	ag.Status = string(StatusConcluido)
}

func RegistrarPagamento(ag *models.Agendamento, metodo MetodoPagamento) error {
	if err := CanPagar(StatusPagamento(ag.StatusPagamento)); err != nil {
		return err
	}
	if !metodo.Valid() {
		return httperr.ErrBusiness("metodo_pagamento_invalido")
	}

	ag.StatusPagamento = string(PagamentoPago)
	m := string(metodo)
	ag.MetodoPagamento = &m
	return nil
}
