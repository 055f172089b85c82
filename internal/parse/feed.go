package parse

import (
	"fmt"
	"strings"
	"time"

	"fitclub-admin-backend/internal/model"
)

// statusAliases maps the status spellings seen in booking-platform
// feeds to the canonical statuses. Keys are lowercased.
var statusAliases = map[string]model.ReservationStatus{
	"confirmed":  model.StatusConfirmed,
	"confirmada": model.StatusConfirmed,
	"booked":     model.StatusConfirmed,
	"cancelled":  model.StatusCancelled,
	"canceled":   model.StatusCancelled,
	"cancelada":  model.StatusCancelled,
	"completed":  model.StatusCompleted,
	"completada": model.StatusCompleted,
	"attended":   model.StatusCompleted,
	"no_show":    model.StatusNoShow,
	"no-show":    model.StatusNoShow,
	"noshow":     model.StatusNoShow,
	"no asistió": model.StatusNoShow,
}

// dateLayouts are tried in order when parsing a reservation date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// Status normalizes a raw feed status string to a canonical status.
func Status(raw string) (model.ReservationStatus, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if status, ok := statusAliases[s]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown reservation status: %q", raw)
}

// Date parses a reservation date in any of the known feed layouts and
// truncates it to its calendar day.
func Date(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %q", raw)
}

// Timestamp parses a feed timestamp in the given location. Nil or
// empty input yields nil without error.
func Timestamp(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, loc)
	if err != nil {
		return nil, fmt.Errorf("unable to parse timestamp %q: %w", s, err)
	}
	return &t, nil
}

// TimeOfDay normalizes a schedule start time to "HH:MM:SS". Feeds ship
// both "HH:MM" and "HH:MM:SS", occasionally without a leading zero.
func TimeOfDay(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04", "3:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("unable to parse time of day: %q", raw)
}
