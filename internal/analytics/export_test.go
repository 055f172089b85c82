package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin-backend/internal/model"
)

func TestExportCSV(t *testing.T) {
	records := []model.Reservation{
		reservation(1, "2026-08-29", model.StatusConfirmed),
		bare(2, "2026-08-30", model.StatusNoShow),
	}

	lines := strings.Split(strings.TrimRight(string(ExportCSV(records)), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `"Usuario","Email","Clase","Instructor","Sede","Fecha Reserva","Hora","Estado","Fecha Creación"`, lines[0])
	assert.Equal(t, `"Ana García","ana@example.com","Yoga","Carlos Pérez","Sede Centro","29/08/2026","18:00","Confirmada","27/08/2026"`, lines[1])
	// Missing nested data yields fallback labels for the display
	// columns and empty strings for member fields.
	assert.Equal(t, `"","","Sin clase","Sin instructor","Sin sede","30/08/2026","","No asistió",""`, lines[2])
}

func TestExportCSV_QuotesEmbeddedQuotes(t *testing.T) {
	r := withMember(reservation(1, "2026-08-29", model.StatusCancelled), `Ana "Tiger" García`, "ana@example.com")

	out := string(ExportCSV([]model.Reservation{r}))
	assert.Contains(t, out, `"Ana ""Tiger"" García"`)
	assert.Contains(t, out, `"Cancelada"`)
}

func TestExportCSV_EmptyList(t *testing.T) {
	lines := strings.Split(strings.TrimRight(string(ExportCSV(nil)), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], `"Usuario"`))
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "reservas-2026-08-29.csv", ExportFilename(filterNow))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Confirmada", StatusLabel(model.StatusConfirmed))
	assert.Equal(t, "Cancelada", StatusLabel(model.StatusCancelled))
	assert.Equal(t, "Completada", StatusLabel(model.StatusCompleted))
	assert.Equal(t, "No asistió", StatusLabel(model.StatusNoShow))
	assert.Equal(t, "pending", StatusLabel(model.ReservationStatus("pending")))
}
