package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestResolve_Precedencia(t *testing.T) {
	precos := []models.Preco{
		{Raca: nil, Peso: nil, Preco: 50},                          // base
		{Raca: strPtr("Poodle"), Peso: nil, Preco: 60},             // só raça
		{Raca: nil, Peso: intPtr(8), Preco: 70},                    // só peso
		{Raca: strPtr("Poodle"), Peso: intPtr(8), Preco: 80},       // exata
		{Raca: strPtr("Shih Tzu"), Peso: intPtr(12), Preco: 90},
	}

	tests := []struct {
		name string
		raca *string
		peso *float64
		want float64
	}{
		{
			name: "raça e peso casam na faixa exata",
			raca: strPtr("Poodle"),
			peso: f64Ptr(8.0),
			want: 80,
		},
		{
			name: "peso arredonda para baixo antes de comparar",
			raca: strPtr("Poodle"),
			peso: f64Ptr(8.4),
			want: 80,
		},
		{
			name: "peso arredonda para cima antes de comparar",
			raca: strPtr("Poodle"),
			peso: f64Ptr(7.6),
			want: 80,
		},
		{
			name: "sem faixa exata cai para só raça",
			raca: strPtr("Poodle"),
			peso: f64Ptr(20.0),
			want: 60,
		},
		{
			name: "pet sem raça casa na faixa de peso",
			raca: nil,
			peso: f64Ptr(8.0),
			want: 70,
		},
		{
			name: "pet sem raça nem peso usa o preço base",
			raca: nil,
			peso: nil,
			want: 50,
		},
		{
			name: "raça desconhecida sem peso usa o preço base",
			raca: strPtr("Vira-lata"),
			peso: nil,
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raca, tt.peso, precos)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_SemFaixaQueCase(t *testing.T) {
	// Nenhuma faixa curinga: cai na primeira da lista.
	precos := []models.Preco{
		{Raca: strPtr("Poodle"), Peso: intPtr(8), Preco: 80},
		{Raca: strPtr("Shih Tzu"), Peso: intPtr(12), Preco: 90},
	}

	got := Resolve(strPtr("Vira-lata"), f64Ptr(30), precos)
	assert.Equal(t, float64(80), got)
}

func TestResolve_SemFaixas(t *testing.T) {
	assert.Equal(t, float64(0), Resolve(strPtr("Poodle"), f64Ptr(8), nil))
}
