package pet

type Sexo string

const (
	SexoMacho Sexo = "MACHO"
	SexoFemea Sexo = "FEMEA"
)

// Valid aceita vazio: o sexo do pet é opcional.
func (s Sexo) Valid() bool {
	return s == "" || s == SexoMacho || s == SexoFemea
}
