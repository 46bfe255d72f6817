package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
)

func TestValidarVinculos(t *testing.T) {
	tests := []struct {
		name     string
		vinculos []Vinculo
		wantCode string
	}{
		{
			name:     "lista vazia",
			vinculos: nil,
			wantCode: "tutor_obrigatorio",
		},
		{
			name: "nenhum primário",
			vinculos: []Vinculo{
				{TutorID: "t1"},
				{TutorID: "t2"},
			},
			wantCode: "tutor_primario_obrigatorio",
		},
		{
			name: "dois primários",
			vinculos: []Vinculo{
				{TutorID: "t1", IsPrimario: true},
				{TutorID: "t2", IsPrimario: true},
			},
			wantCode: "tutor_primario_duplicado",
		},
		{
			name: "um primário e um secundário",
			vinculos: []Vinculo{
				{TutorID: "t1", IsPrimario: true},
				{TutorID: "t2"},
			},
			wantCode: "",
		},
		{
			name: "único tutor primário",
			vinculos: []Vinculo{
				{TutorID: "t1", IsPrimario: true},
			},
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidarVinculos(tt.vinculos)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode))
		})
	}
}

func TestTutorPrincipal(t *testing.T) {
	vinculos := []Vinculo{
		{TutorID: "t1"},
		{TutorID: "t2", IsPrimario: true},
		{TutorID: "t3"},
	}

	assert.Equal(t, 1, TutorPrincipal(vinculos))
	assert.Equal(t, -1, TutorPrincipal([]Vinculo{{TutorID: "t1"}}))
}

func TestSexo_Valid(t *testing.T) {
	assert.True(t, Sexo("MACHO").Valid())
	assert.True(t, Sexo("FEMEA").Valid())
	assert.True(t, Sexo("").Valid()) // sexo é opcional
	assert.False(t, Sexo("macho").Valid())
}
