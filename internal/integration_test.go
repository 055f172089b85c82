package internal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fitclub-admin-backend/internal/analytics"
	"fitclub-admin-backend/internal/db"
	"fitclub-admin-backend/internal/model"
	"fitclub-admin-backend/internal/store"
)

func i64(v int64) *int64 { return &v }

// TestReservationAnalyticsLifecycle drives the whole stack against an
// in-memory database: seed records, load a snapshot, inspect every
// derived view, cancel a reservation and verify the views converge on
// the new server state.
func TestReservationAnalyticsLifecycle(t *testing.T) {
	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))

	today := time.Now().UTC().Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	// Seed: one sede, one instructor, two classes sharing the sede.
	require.NoError(t, testDB.Create(&model.Location{ID: 7, Name: "Sede Centro"}).Error)
	require.NoError(t, testDB.Create(&model.Instructor{ID: 3, Name: "Carlos Pérez"}).Error)
	require.NoError(t, testDB.Create(&model.Class{ID: 1, Name: "Yoga", InstructorID: i64(3), LocationID: i64(7)}).Error)
	require.NoError(t, testDB.Create(&model.Class{ID: 2, Name: "Spinning", LocationID: i64(7)}).Error)
	require.NoError(t, testDB.Create(&model.ClassSchedule{ID: 10, ClassID: i64(1), LocationID: i64(7), StartTime: "18:00:00"}).Error)
	require.NoError(t, testDB.Create(&model.ClassSchedule{ID: 11, ClassID: i64(2), LocationID: i64(7), StartTime: "09:00:00"}).Error)
	require.NoError(t, testDB.Create(&model.Member{ID: 501, FullName: "Ana García", Email: "ana@example.com"}).Error)
	require.NoError(t, testDB.Create(&model.Member{ID: 502, FullName: "Luis Torres", Email: "luis@example.com"}).Error)

	reservations := []model.Reservation{
		{ID: 1, MemberID: i64(501), ScheduleID: i64(10), ReservationDate: today, Status: model.StatusConfirmed},
		{ID: 2, MemberID: i64(502), ScheduleID: i64(10), ReservationDate: today, Status: model.StatusConfirmed},
		{ID: 3, MemberID: i64(501), ScheduleID: i64(10), ReservationDate: today, Status: model.StatusCancelled},
		{ID: 4, MemberID: i64(502), ScheduleID: i64(11), ReservationDate: tomorrow, Status: model.StatusConfirmed},
		{ID: 5, MemberID: i64(501), ScheduleID: i64(10), ReservationDate: yesterday, Status: model.StatusCompleted},
		{ID: 6, MemberID: nil, ScheduleID: nil, ReservationDate: today, Status: model.StatusConfirmed},
	}
	require.NoError(t, testDB.Create(&reservations).Error)

	appStore := store.NewGormStore(testDB)
	engine := analytics.NewEngine(appStore, time.UTC)
	require.NoError(t, engine.Reload(context.Background()))

	// KPIs cover the full unfiltered set.
	summary := engine.Summary()
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 4, summary.Confirmed)
	assert.Equal(t, 1, summary.Cancelled)
	assert.Equal(t, 4, summary.Today)

	// Rows carry resolved names and global occupancy.
	rows := engine.Rows(analytics.FilterParams{Search: "ana"})
	require.Len(t, rows, 3)

	// Occupancy of the Yoga session today: reservations 1 and 2.
	yogaRows := engine.Rows(analytics.FilterParams{Search: "yoga", DateMode: analytics.DateModeToday})
	require.NotEmpty(t, yogaRows)
	assert.Equal(t, 2, yogaRows[0].Occupancy)
	assert.Equal(t, "Yoga", yogaRows[0].ClassName)
	assert.Equal(t, "Carlos Pérez", yogaRows[0].InstructorName)
	assert.Equal(t, "Sede Centro", yogaRows[0].LocationName)

	// Sessions: yesterday's reservation is dropped, the no-reference
	// reservation groups under the fallback labels.
	sessions := engine.Sessions(analytics.FilterParams{})
	require.Len(t, sessions, 3)
	members := 0
	for _, s := range sessions {
		members += len(s.Reservations)
	}
	assert.Equal(t, 5, members)

	var fallback *analytics.SessionGroup
	for i := range sessions {
		if sessions[i].ClassName == "Sin clase" {
			fallback = &sessions[i]
		}
	}
	require.NotNil(t, fallback)
	assert.Equal(t, "Sin instructor", fallback.InstructorName)
	assert.Equal(t, "Sin sede", fallback.LocationName)

	// Charts.
	tables := engine.Charts()
	require.NotEmpty(t, tables.ByClass)
	assert.Equal(t, analytics.RankEntry{Label: "Yoga", Count: 4}, tables.ByClass[0])
	assert.LessOrEqual(t, len(tables.ByWeekday), 7)

	// Export includes the fallback row.
	doc, filename := engine.Export(analytics.FilterParams{})
	assert.True(t, strings.HasPrefix(filename, "reservas-"))
	assert.Contains(t, string(doc), `"Sin clase","Sin instructor","Sin sede"`)

	// Cancel reservation 1 and verify both the database row and the
	// reloaded views.
	cancelled, err := engine.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled.ID)

	var fromDB model.Reservation
	require.NoError(t, testDB.First(&fromDB, 1).Error)
	assert.Equal(t, model.StatusCancelled, fromDB.Status)

	summary = engine.Summary()
	assert.Equal(t, 3, summary.Confirmed)
	assert.Equal(t, 2, summary.Cancelled)

	// Occupancy reflects the cancellation everywhere.
	yogaRows = engine.Rows(analytics.FilterParams{Search: "yoga", DateMode: analytics.DateModeToday})
	require.NotEmpty(t, yogaRows)
	assert.Equal(t, 1, yogaRows[0].Occupancy)

	// A second cancel of the same reservation is rejected and changes
	// nothing.
	_, err = engine.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, analytics.ErrNotCancellable)
	assert.Equal(t, 3, engine.Summary().Confirmed)
}
