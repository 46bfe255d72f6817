package agendamento

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

func TestCalcularPreco(t *testing.T) {
	repo := newFakeRepo()

	raca := "Poodle"
	peso := 8.3
	repo.pets["pet-1"] = models.Pet{ID: "pet-1", Nome: "Rex", Raca: &raca, Peso: &peso}

	pesoFaixa := 8
	repo.servicos["sv-banho"] = models.Servico{
		ID:   "sv-banho",
		Nome: "Banho",
		Precos: []models.Preco{
			{Raca: nil, Peso: nil, Preco: 40},
			{Raca: &raca, Peso: &pesoFaixa, Preco: 55},
		},
	}
	repo.servicos["sv-tosa"] = models.Servico{
		ID:   "sv-tosa",
		Nome: "Tosa",
		Precos: []models.Preco{
			{Raca: nil, Peso: nil, Preco: 70},
		},
	}

	uc := NewCalcularPreco(repo)

	result, err := uc.Execute(context.Background(), "pet-1", []string{"sv-banho", "sv-tosa"})
	require.NoError(t, err)

	require.Len(t, result.Servicos, 2)
	assert.Equal(t, 55.0, result.Servicos[0].Preco) // faixa exata (8.3 → 8)
	assert.Equal(t, 70.0, result.Servicos[1].Preco) // preço base
	assert.Equal(t, 125.0, result.ValorTotal)
}

func TestCalcularPreco_ServicoSemFaixas(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	repo.servicos["sv-1"] = models.Servico{ID: "sv-1", Nome: "Hidratação"}

	uc := NewCalcularPreco(repo)

	result, err := uc.Execute(context.Background(), "pet-1", []string{"sv-1"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Servicos[0].Preco)
	assert.Equal(t, 0.0, result.ValorTotal)
}

func TestCalcularPreco_Erros(t *testing.T) {
	repo := newFakeRepo()
	seedPet(repo, "pet-1")
	seedServico(repo, "sv-1")

	uc := NewCalcularPreco(repo)
	ctx := context.Background()

	_, err := uc.Execute(ctx, "", []string{"sv-1"})
	assert.True(t, httperr.IsBusiness(err, "dados_invalidos"))

	_, err = uc.Execute(ctx, "pet-1", nil)
	assert.True(t, httperr.IsBusiness(err, "dados_invalidos"))

	_, err = uc.Execute(ctx, "pet-999", []string{"sv-1"})
	assert.True(t, httperr.IsBusiness(err, "pet_nao_encontrado"))

	_, err = uc.Execute(ctx, "pet-1", []string{"sv-1", "sv-999"})
	assert.True(t, httperr.IsBusiness(err, "servico_nao_encontrado"))
}
