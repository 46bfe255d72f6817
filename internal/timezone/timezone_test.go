package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01 00:00:00", d.Format("2006-01-02 15:04:05"))
	assert.Equal(t, DefaultTimezone, d.Location().String())

	_, err = ParseDate("01/09/2026")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2026-09-01", "14:30")
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01 14:30:00", dt.Format("2006-01-02 15:04:05"))

	_, err = ParseDateTime("2026-09-01", "25:00")
	assert.Error(t, err)
}

func TestStartAndEndOfDay(t *testing.T) {
	d, err := ParseDateTime("2026-09-01", "14:30")
	require.NoError(t, err)

	assert.Equal(t, "00:00:00.000", StartOfDay(d).Format("15:04:05.000"))
	assert.Equal(t, "23:59:59.999", EndOfDay(d).Format("15:04:05.000"))
	assert.Equal(t, d.Location(), EndOfDay(d).Location())
}
