package pricing

import (
	"math"

	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

// Resolve devolve o preço de um serviço para um pet, seguindo a
// precedência das faixas:
//
//  1. raça + peso arredondado (só se o pet tem os dois)
//  2. só raça (peso da faixa nulo)
//  3. só peso (raça da faixa nula)
//  4. preço base (raça e peso nulos)
//  5. primeira faixa da lista, quando nenhuma casou
//  6. zero, quando o serviço não tem faixa nenhuma
//
// O peso do pet é arredondado para o quilo inteiro mais próximo antes da
// comparação; o peso da faixa já é inteiro.
func Resolve(raca *string, peso *float64, precos []models.Preco) float64 {
	if len(precos) == 0 {
		return 0
	}

	var pesoKg int
	if peso != nil {
		pesoKg = int(math.Round(*peso))
	}

	if raca != nil && peso != nil {
		for _, p := range precos {
			if p.Raca != nil && *p.Raca == *raca && p.Peso != nil && *p.Peso == pesoKg {
				return p.Preco
			}
		}
	}

	if raca != nil {
		for _, p := range precos {
			if p.Raca != nil && *p.Raca == *raca && p.Peso == nil {
				return p.Preco
			}
		}
	}

	if peso != nil {
		for _, p := range precos {
			if p.Raca == nil && p.Peso != nil && *p.Peso == pesoKg {
				return p.Preco
			}
		}
	}

	for _, p := range precos {
		if p.Raca == nil && p.Peso == nil {
			return p.Preco
		}
	}

	// Nenhuma faixa casou: usa a primeira da lista. Escolha arbitrária,
	// mantida por compatibilidade com o comportamento histórico.
	return precos[0].Preco
}
