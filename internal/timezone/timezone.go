package timezone

import "time"

// A loja opera num fuso só; datas e horários chegam sem offset e são
// interpretados aqui.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// ParseDate interpreta "YYYY-MM-DD" no fuso da loja (meia-noite local).
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, Location())
}

// ParseDateTime combina "YYYY-MM-DD" e "HH:MM" num único instante.
func ParseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, Location())
}

// StartOfDay devolve 00:00:00 do dia informado.
func StartOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfDay devolve 23:59:59.999 do dia informado, para limites de filtro
// inclusivos.
func EndOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999_000_000, d.Location())
}
