package pet

import "github.com/BruksfildServices01/petshop-manager/internal/httperr"

// Vinculo representa a ligação pedida entre um pet e um tutor.
type Vinculo struct {
	TutorID    string
	IsPrimario bool
}

// ValidarVinculos garante a invariante: lista não vazia e exatamente um
// tutor primário.
func ValidarVinculos(vinculos []Vinculo) error {
	if len(vinculos) == 0 {
		return httperr.ErrBusiness("tutor_obrigatorio")
	}

	primarios := 0
	for _, v := range vinculos {
		if v.IsPrimario {
			primarios++
		}
	}

	if primarios == 0 {
		return httperr.ErrBusiness("tutor_primario_obrigatorio")
	}
	if primarios > 1 {
		return httperr.ErrBusiness("tutor_primario_duplicado")
	}

	return nil
}

// TutorPrincipal devolve o índice do primeiro vínculo primário, ou -1.
func TutorPrincipal(vinculos []Vinculo) int {
	for i, v := range vinculos {
		if v.IsPrimario {
			return i
		}
	}
	return -1
}
