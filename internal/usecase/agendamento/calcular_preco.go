package agendamento

import (
	"context"

	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/domain/pricing"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
)

type ServicoCalculado struct {
	ID    string  `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
}

type CalculoPrecoResult struct {
	Servicos   []ServicoCalculado `json:"servicos"`
	ValorTotal float64            `json:"valorTotal"`
}

type CalcularPreco struct {
	repo domain.Repository
}

func NewCalcularPreco(repo domain.Repository) *CalcularPreco {
	return &CalcularPreco{repo: repo}
}

// Execute resolve o preço de cada serviço para o pet informado e soma o
// total. Só leitura, nada é gravado.
func (uc *CalcularPreco) Execute(
	ctx context.Context,
	petID string,
	servicoIDs []string,
) (*CalculoPrecoResult, error) {

	if petID == "" || len(servicoIDs) == 0 {
		return nil, httperr.ErrBusiness("dados_invalidos")
	}

	pet, err := uc.repo.GetPet(ctx, petID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_nao_encontrado")
	}

	servicos, err := uc.repo.ListServicosByIDs(ctx, servicoIDs)
	if err != nil {
		return nil, err
	}
	if len(servicos) != len(uniqueIDs(servicoIDs)) {
		return nil, httperr.ErrBusiness("servico_nao_encontrado")
	}

	result := &CalculoPrecoResult{
		Servicos: make([]ServicoCalculado, 0, len(servicos)),
	}

	for _, s := range servicos {
		preco := pricing.Resolve(pet.Raca, pet.Peso, s.Precos)

		result.Servicos = append(result.Servicos, ServicoCalculado{
			ID:    s.ID,
			Nome:  s.Nome,
			Preco: preco,
		})
		result.ValorTotal += preco
	}

	return result, nil
}
