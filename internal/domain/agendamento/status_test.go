package agendamento

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

func TestCanIniciar(t *testing.T) {
	assert.NoError(t, CanIniciar(StatusAgendado))

	for _, s := range []Status{StatusEmAndamento, StatusConcluido, StatusCancelado} {
		err := CanIniciar(s)
		assert.True(t, httperr.IsBusiness(err, "estado_invalido"), "status %s", s)
	}
}

func TestCanCancelar(t *testing.T) {
	assert.NoError(t, CanCancelar(StatusAgendado))
	assert.NoError(t, CanCancelar(StatusEmAndamento))

	for _, s := range []Status{StatusConcluido, StatusCancelado} {
		err := CanCancelar(s)
		assert.True(t, httperr.IsBusiness(err, "estado_invalido"), "status %s", s)
	}
}

func TestCanPagar(t *testing.T) {
	assert.NoError(t, CanPagar(PagamentoPendente))
	assert.True(t, httperr.IsBusiness(CanPagar(PagamentoPago), "pagamento_ja_registrado"))
}

func TestIniciar(t *testing.T) {
	ag := &models.Agendamento{Status: string(StatusAgendado)}

	require.NoError(t, Iniciar(ag))
	assert.Equal(t, string(StatusEmAndamento), ag.Status)

	// Segundo início não é permitido.
	err := Iniciar(ag)
	assert.True(t, httperr.IsBusiness(err, "estado_invalido"))
	assert.Equal(t, string(StatusEmAndamento), ag.Status)
}

func TestCancelar(t *testing.T) {
	ag := &models.Agendamento{Status: string(StatusEmAndamento)}

	require.NoError(t, Cancelar(ag))
	assert.Equal(t, string(StatusCancelado), ag.Status)

	err := Cancelar(ag)
	assert.True(t, httperr.IsBusiness(err, "estado_invalido"))
}

func TestConcluir_NaoValidaEstado(t *testing.T) {
	// O checklist conclui incondicionalmente, até um cancelado.
	ag := &models.Agendamento{Status: string(StatusCancelado)}

	Concluir(ag)
	assert.Equal(t, string(StatusConcluido), ag.Status)
}

func TestRegistrarPagamento(t *testing.T) {
	ag := &models.Agendamento{StatusPagamento: string(PagamentoPendente)}

	require.NoError(t, RegistrarPagamento(ag, MetodoPix))
	assert.Equal(t, string(PagamentoPago), ag.StatusPagamento)
	require.NotNil(t, ag.MetodoPagamento)
	assert.Equal(t, "PIX", *ag.MetodoPagamento)

	err := RegistrarPagamento(ag, MetodoDinheiro)
	assert.True(t, httperr.IsBusiness(err, "pagamento_ja_registrado"))
	assert.Equal(t, "PIX", *ag.MetodoPagamento)
}

func TestRegistrarPagamento_MetodoInvalido(t *testing.T) {
	ag := &models.Agendamento{StatusPagamento: string(PagamentoPendente)}

	err := RegistrarPagamento(ag, MetodoPagamento("CHEQUE"))
	assert.True(t, httperr.IsBusiness(err, "metodo_pagamento_invalido"))
	assert.Equal(t, string(PagamentoPendente), ag.StatusPagamento)
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusAgendado.Terminal())
	assert.False(t, StatusEmAndamento.Terminal())
	assert.True(t, StatusConcluido.Terminal())
	assert.True(t, StatusCancelado.Terminal())
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, Status("AGENDADO").Valid())
	assert.False(t, Status("PENDENTE").Valid())

	assert.True(t, MetodoPagamento("CARTAO_CREDITO").Valid())
	assert.False(t, MetodoPagamento("").Valid())

	assert.True(t, TransporteEntrada("TAXI_DOG").Valid())
	assert.False(t, TransporteEntrada("DONO_BUSCA").Valid())

	assert.True(t, TransporteSaida("DONO_BUSCA").Valid())
	assert.False(t, TransporteSaida("DONO_TRAZ").Valid())
}
