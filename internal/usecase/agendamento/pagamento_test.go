package agendamento

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

func TestIniciarAtendimento(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedAgendamento(repo, "ag-1", "AGENDADO")

	uc := NewIniciarAtendimento(repo, audit.NewNop())

	ag, err := uc.Execute(context.Background(), "user-1", "ag-1")
	require.NoError(t, err)
	assert.Equal(t, "EM_ANDAMENTO", ag.Status)

	_, err = uc.Execute(context.Background(), "user-1", "ag-1")
	assert.True(t, httperr.IsBusiness(err, "estado_invalido"))
}

func TestCancelarAgendamento(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedAgendamento(repo, "ag-1", "EM_ANDAMENTO")

	uc := NewCancelarAgendamento(repo, audit.NewNop())

	ag, err := uc.Execute(context.Background(), "user-1", "ag-1")
	require.NoError(t, err)
	assert.Equal(t, "CANCELADO", ag.Status)
}

func TestCancelarAgendamento_JaConcluido(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedAgendamento(repo, "ag-1", "CONCLUIDO")

	uc := NewCancelarAgendamento(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), "user-1", "ag-1")
	assert.True(t, httperr.IsBusiness(err, "estado_invalido"))
	assert.Equal(t, "CONCLUIDO", repo.ags["ag-1"].Status)
}

func TestRegistrarPagamentoUseCase(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	repo.ags["ag-1"] = models.Agendamento{
		ID:              "ag-1",
		PetID:           "pet-1",
		Status:          "CONCLUIDO",
		StatusPagamento: "PENDENTE",
	}

	uc := NewRegistrarPagamento(repo, audit.NewNop())

	ag, err := uc.Execute(context.Background(), "user-1", "ag-1", "PIX")
	require.NoError(t, err)

	assert.Equal(t, "PAGO", ag.StatusPagamento)
	require.NotNil(t, ag.MetodoPagamento)
	assert.Equal(t, "PIX", *ag.MetodoPagamento)

	// o status do atendimento não muda junto
	assert.Equal(t, "CONCLUIDO", ag.Status)

	_, err = uc.Execute(context.Background(), "user-1", "ag-1", "DINHEIRO")
	assert.True(t, httperr.IsBusiness(err, "pagamento_ja_registrado"))
}

func TestRegistrarPagamento_MetodoDesconhecido(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedAgendamento(repo, "ag-1", "CONCLUIDO")

	uc := NewRegistrarPagamento(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), "user-1", "ag-1", "CHEQUE")
	assert.True(t, httperr.IsBusiness(err, "metodo_pagamento_invalido"))
	assert.Equal(t, "", repo.ags["ag-1"].StatusPagamento)
}
