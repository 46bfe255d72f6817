package agendamento

import "time"

// Filters da listagem de agendamentos. Ponteiros nulos significam
// "sem filtro".
type Filters struct {
	PetID  string
	Status string
	Search string

	// DataInicio entra como início do dia (00:00:00) e DataFim como fim
	// do dia (23:59:59.999), ambos inclusivos.
	DataInicio *time.Time
	DataFim    *time.Time
}
