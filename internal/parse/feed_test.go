package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin-backend/internal/model"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected model.ReservationStatus
	}{
		{"confirmed", model.StatusConfirmed},
		{"CONFIRMADA", model.StatusConfirmed},
		{" booked ", model.StatusConfirmed},
		{"cancelled", model.StatusCancelled},
		{"canceled", model.StatusCancelled},
		{"Cancelada", model.StatusCancelled},
		{"completed", model.StatusCompleted},
		{"attended", model.StatusCompleted},
		{"no_show", model.StatusNoShow},
		{"No-Show", model.StatusNoShow},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			status, err := Status(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}

	_, err := Status("pending")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	expected := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2026-08-29", "2026-08-29T18:30:00Z", "29/08/2026"} {
		t.Run(raw, func(t *testing.T) {
			parsed, err := Date(raw)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		})
	}

	_, err := Date("agosto 29")
	assert.Error(t, err)
}

func TestTimestamp(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	raw := "2026-08-27 09:15:00"
	parsed, err := Timestamp(&raw, loc)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, time.August, 27, 9, 15, 0, 0, loc), *parsed)

	rfc := "2026-08-27T09:15:00Z"
	parsed, err = Timestamp(&rfc, loc)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.True(t, parsed.Equal(time.Date(2026, time.August, 27, 9, 15, 0, 0, time.UTC)))

	parsed, err = Timestamp(nil, loc)
	require.NoError(t, err)
	assert.Nil(t, parsed)

	bad := "yesterday"
	_, err = Timestamp(&bad, loc)
	assert.Error(t, err)
}

func TestTimeOfDay(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"18:00:00", "18:00:00"},
		{"18:00", "18:00:00"},
		{"9:05", "09:05:00"},
		{"6:30 PM", "18:30:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			normalized, err := TimeOfDay(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, normalized)
		})
	}

	_, err := TimeOfDay("mediodía")
	assert.Error(t, err)
}
