package analytics

import (
	"strings"
	"time"

	"fitclub-admin-backend/internal/model"
)

// exportHeader is the fixed column set of the CSV export.
var exportHeader = []string{
	"Usuario", "Email", "Clase", "Instructor", "Sede",
	"Fecha Reserva", "Hora", "Estado", "Fecha Creación",
}

// statusLabels maps a reservation status to its human label in the
// export.
var statusLabels = map[model.ReservationStatus]string{
	model.StatusConfirmed: "Confirmada",
	model.StatusCancelled: "Cancelada",
	model.StatusCompleted: "Completada",
	model.StatusNoShow:    "No asistió",
}

// ExportCSV serializes the filtered view into a CSV document. Every
// field is double-quoted, one row per reservation in list order;
// missing nested data becomes an empty field.
func ExportCSV(filtered []model.Reservation) []byte {
	var b strings.Builder
	writeRow(&b, exportHeader)

	for _, r := range filtered {
		writeRow(&b, []string{
			memberName(r),
			memberEmail(r),
			ResolveClassName(r),
			ResolveInstructorName(r),
			ResolveLocationName(r),
			shortDate(r.ReservationDate),
			StartTimeHHMM(r),
			StatusLabel(r.Status),
			shortDate(r.CreatedAt),
		})
	}
	return []byte(b.String())
}

// ExportFilename builds the download name for an export taken at now.
func ExportFilename(now time.Time) string {
	return "reservas-" + now.Format(dateLayout) + ".csv"
}

// StatusLabel returns the human label of a status; unknown statuses
// pass through unchanged.
func StatusLabel(status model.ReservationStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// writeRow emits one CSV line with each field quoted. Embedded quotes
// are doubled per RFC 4180.
func writeRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// shortDate renders a date the way the portal shows it (dd/mm/yyyy).
// Zero timestamps become empty fields.
func shortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
