package agendamento

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

func seedPetComTutor(r *fakeRepo, telefone string) {
	r.pets["pet-1"] = models.Pet{
		ID:   "pet-1",
		Nome: "Rex",
		Tutores: []models.PetTutor{
			{
				TutorID:    "t2",
				IsPrimario: false,
				Tutor:      models.Tutor{ID: "t2", Nome: "João", Telefone: "11911112222"},
			},
			{
				TutorID:    "t1",
				IsPrimario: true,
				Tutor:      models.Tutor{ID: "t1", Nome: "Maria", Telefone: telefone},
			},
		},
	}
}

func TestNotificarTutor(t *testing.T) {
	repo := newFakeRepo()
	seedPetComTutor(repo, "(11) 98765-4321")
	seedAgendamento(repo, "ag-1", "CONCLUIDO")

	uc := NewNotificarTutor(repo, audit.NewNop())

	result, err := uc.Execute(context.Background(), "user-1", "ag-1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Rex", result.PetNome)
	assert.Equal(t, "Maria", result.TutorNome) // primário, não o primeiro da lista
	assert.True(t, strings.HasPrefix(result.WhatsappURL, "https://wa.me/5511987654321?text="))

	// marca o agendamento como notificado
	assert.True(t, repo.ags["ag-1"].EnviarNotificacao)
}

func TestNotificarTutor_SemTelefone(t *testing.T) {
	repo := newFakeRepo()
	seedPetComTutor(repo, "")
	seedAgendamento(repo, "ag-1", "CONCLUIDO")

	uc := NewNotificarTutor(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), "user-1", "ag-1")
	assert.True(t, httperr.IsBusiness(err, "tutor_sem_telefone"))
}

func TestNotificarTutor_TelefoneCurto(t *testing.T) {
	repo := newFakeRepo()
	seedPetComTutor(repo, "4321")
	seedAgendamento(repo, "ag-1", "CONCLUIDO")

	uc := NewNotificarTutor(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), "user-1", "ag-1")
	assert.True(t, httperr.IsBusiness(err, "telefone_invalido"))

	// nada é marcado quando o link não sai
	assert.False(t, repo.ags["ag-1"].EnviarNotificacao)
}

func TestNotificarTutor_SemTutorPrimario(t *testing.T) {
	repo := newFakeRepo()
	repo.pets["pet-1"] = models.Pet{
		ID:   "pet-1",
		Nome: "Rex",
		Tutores: []models.PetTutor{
			{TutorID: "t1", Tutor: models.Tutor{ID: "t1", Nome: "Maria", Telefone: "11987654321"}},
		},
	}
	seedAgendamento(repo, "ag-1", "CONCLUIDO")

	uc := NewNotificarTutor(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), "user-1", "ag-1")
	assert.True(t, httperr.IsBusiness(err, "tutor_sem_telefone"))
}
