package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fitclub-admin-backend/internal/model"
)

func TestOccupancyCounts_ConfirmedOnly(t *testing.T) {
	records := []model.Reservation{
		reservation(1, "2026-08-29", model.StatusConfirmed),
		reservation(2, "2026-08-29", model.StatusConfirmed),
		reservation(3, "2026-08-29", model.StatusCancelled),
		reservation(4, "2026-08-29", model.StatusNoShow),
		reservation(5, "2026-08-30", model.StatusConfirmed),
	}

	counts := OccupancyCounts(records)

	assert.Equal(t, 2, counts[KeyOf(records[0])])
	assert.Equal(t, 1, counts[KeyOf(records[4])])
	// Cancelled and no-show members never contribute.
	assert.Len(t, counts, 2)
}

func TestOccupancyCounts_FilterIndependent(t *testing.T) {
	records := []model.Reservation{
		reservation(1, "2026-08-29", model.StatusConfirmed),
		withClass(reservation(2, "2026-08-29", model.StatusConfirmed), 11, 2, "Spinning", "09:00:00"),
	}

	// Occupancy is computed from the full list; a filter that would
	// exclude Spinning must not change the counts.
	before := OccupancyCounts(records)
	_ = Filter(records, FilterParams{Search: "yoga"}, filterNow)
	after := OccupancyCounts(records)

	assert.Equal(t, before, after)
	assert.Equal(t, 1, after[KeyOf(records[1])])
}

func TestOccupancyCounts_Empty(t *testing.T) {
	assert.Empty(t, OccupancyCounts(nil))
}
