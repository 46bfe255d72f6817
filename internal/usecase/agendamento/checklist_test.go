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

func seedAgendamento(r *fakeRepo, id, status string) {
	r.ags[id] = models.Agendamento{ID: id, PetID: "pet-1", Status: status}
}

func TestSubmitChecklist_PrimeiroEnvioConclui(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedAgendamento(repo, "ag-1", "EM_ANDAMENTO")

	uc := NewSubmitChecklist(repo, audit.NewNop())

	cl, err := uc.Execute(context.Background(), "user-1", "ag-1", ChecklistInput{
		TemPulgas:   true,
		Observacoes: "pelagem embaraçada",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, cl.ID)
	assert.True(t, cl.TemPulgas)
	assert.Equal(t, "ag-1", cl.AgendamentoID)

	ag, err := repo.GetAgendamento(context.Background(), "ag-1")
	require.NoError(t, err)
	assert.Equal(t, "CONCLUIDO", ag.Status)
}

func TestSubmitChecklist_SegundoEnvioNaoMexeNoStatus(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedAgendamento(repo, "ag-1", "EM_ANDAMENTO")

	uc := NewSubmitChecklist(repo, audit.NewNop())

	first, err := uc.Execute(context.Background(), "user-1", "ag-1", ChecklistInput{
		TemPulgas: true,
	})
	require.NoError(t, err)

	// agendamento cancelado na mão depois do primeiro envio
	ag := repo.ags["ag-1"]
	ag.Status = "CANCELADO"
	repo.ags["ag-1"] = ag

	second, err := uc.Execute(context.Background(), "user-1", "ag-1", ChecklistInput{
		TemPulgas:      false,
		ProblemaDentes: true,
	})
	require.NoError(t, err)

	// mesmo registro, campos atualizados
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.TemPulgas)
	assert.True(t, second.ProblemaDentes)

	// a edição não reverte o cancelamento
	assert.Equal(t, "CANCELADO", repo.ags["ag-1"].Status)
}

func TestSubmitChecklist_AgendamentoNaoEncontrado(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSubmitChecklist(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), "user-1", "ag-999", ChecklistInput{})
	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_encontrado"))
}
