package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub-admin-backend/internal/model"
)

func TestRankByClass(t *testing.T) {
	records := []model.Reservation{
		reservation(1, "2026-08-29", model.StatusConfirmed),
		reservation(2, "2026-08-29", model.StatusCancelled),
		withClass(reservation(3, "2026-08-30", model.StatusConfirmed), 11, 2, "Spinning", "09:00:00"),
		bare(4, "2026-08-29", model.StatusConfirmed),
	}

	entries := RankByClass(records)

	require.Len(t, entries, 3)
	assert.Equal(t, RankEntry{Label: "Yoga", Count: 2}, entries[0])
	// Ties break alphabetically.
	assert.Equal(t, RankEntry{Label: "Sin clase", Count: 1}, entries[1])
	assert.Equal(t, RankEntry{Label: "Spinning", Count: 1}, entries[2])
}

func TestRankByClass_TopTen(t *testing.T) {
	var records []model.Reservation
	for i := 0; i < 15; i++ {
		name := fmt.Sprintf("Clase %02d", i)
		for j := 0; j <= i; j++ {
			r := withClass(reservation(int64(i*100+j), "2026-08-29", model.StatusConfirmed),
				int64(100+i), int64(100+i), name, "10:00:00")
			records = append(records, r)
		}
	}

	entries := RankByClass(records)

	require.Len(t, entries, 10)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Count, entries[i].Count)
	}
	assert.Equal(t, RankEntry{Label: "Clase 14", Count: 15}, entries[0])
}

func TestRankByInstructor(t *testing.T) {
	records := []model.Reservation{
		reservation(1, "2026-08-29", model.StatusConfirmed),
		withInstructor(reservation(2, "2026-08-29", model.StatusConfirmed), 4, "María López"),
		withInstructor(reservation(3, "2026-08-29", model.StatusConfirmed), 4, "María López"),
		bare(4, "2026-08-29", model.StatusConfirmed),
	}

	entries := RankByInstructor(records)

	require.Len(t, entries, 3)
	assert.Equal(t, RankEntry{Label: "María López", Count: 2}, entries[0])
	assert.Equal(t, RankEntry{Label: "Carlos Pérez", Count: 1}, entries[1])
	assert.Equal(t, RankEntry{Label: "Sin instructor", Count: 1}, entries[2])
}

func TestRankByWeekday_FixedOrder(t *testing.T) {
	records := []model.Reservation{
		reservation(1, "2026-08-30", model.StatusConfirmed), // Sunday
		reservation(2, "2026-08-30", model.StatusConfirmed), // Sunday
		reservation(3, "2026-08-30", model.StatusConfirmed), // Sunday
		reservation(4, "2026-08-25", model.StatusConfirmed), // Tuesday
		reservation(5, "2026-08-28", model.StatusCancelled), // Friday
		reservation(6, "2026-08-28", model.StatusConfirmed), // Friday
	}

	entries := RankByWeekday(records)

	// Monday-first display order regardless of counts; empty days omitted.
	assert.Equal(t, []RankEntry{
		{Label: "Martes", Count: 1},
		{Label: "Viernes", Count: 2},
		{Label: "Domingo", Count: 3},
	}, entries)
}

func TestRank_Empty(t *testing.T) {
	tables := Rank(nil)
	assert.Empty(t, tables.ByClass)
	assert.Empty(t, tables.ByWeekday)
	assert.Empty(t, tables.ByInstructor)
}
