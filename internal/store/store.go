package store

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitclub-admin-backend/internal/model"
)

// Store defines the interface for all database operations. It is the
// Record Source the analytics engine is built against.
type Store interface {
	FetchReservationsWithDetails(ctx context.Context) ([]model.Reservation, error)
	FetchLocations(ctx context.Context) ([]model.Location, error)
	FetchInstructors(ctx context.Context) ([]model.Instructor, error)
	CancelReservation(ctx context.Context, id int64) (bool, error)
	UpsertFeed(ctx context.Context, items []FeedItem) error
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying GORM handle for components that need raw
// access (subscription handlers, notification worker).
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// FetchReservationsWithDetails loads every reservation together with
// its nested member, schedule, class, instructor and location rows so
// the engine's fallback resolution never needs another round trip.
func (s *gormStore) FetchReservationsWithDetails(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := s.db.WithContext(ctx).
		Preload("Member").
		Preload("Schedule").
		Preload("Schedule.Location").
		Preload("Schedule.Class").
		Preload("Schedule.Class.Instructor").
		Preload("Schedule.Class.Location").
		Order("reservation_date DESC, id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return reservations, nil
}

// FetchLocations returns all locations ordered by name.
func (s *gormStore) FetchLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := s.db.WithContext(ctx).Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	return locations, nil
}

// FetchInstructors returns all instructors ordered by name.
func (s *gormStore) FetchInstructors(ctx context.Context) ([]model.Instructor, error) {
	var instructors []model.Instructor
	if err := s.db.WithContext(ctx).Order("name").Find(&instructors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch instructors: %w", err)
	}
	return instructors, nil
}

// CancelReservation flips a confirmed reservation to cancelled. The
// status guard lives in the WHERE clause so a reservation that was
// already cancelled (or completed) reports false instead of silently
// overwriting upstream state.
func (s *gormStore) CancelReservation(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ? AND status = ?", id, model.StatusConfirmed).
		Update("status", model.StatusCancelled)
	if result.Error != nil {
		return false, fmt.Errorf("failed to cancel reservation %d: %w", id, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// UpsertFeed persists one batch of feed items transactionally:
// referenced locations, instructors, classes, schedules and members
// first, then the reservations themselves.
func (s *gormStore) UpsertFeed(ctx context.Context, items []FeedItem) error {
	if len(items) == 0 {
		return nil
	}

	locations, instructors, classes, schedules, members := collectReferences(items)
	reservations := make([]model.Reservation, 0, len(items))
	for _, item := range items {
		r := model.Reservation{
			ID:              item.ID,
			MemberID:        item.MemberID,
			ScheduleID:      item.ScheduleID,
			ReservationDate: item.DateParsed,
			Status:          item.StatusParsed,
		}
		if item.CreatedAtParsed != nil {
			r.CreatedAt = *item.CreatedAtParsed
		}
		reservations = append(reservations, r)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsertByID(tx, "locations", locations, "name"); err != nil {
			return err
		}
		if err := upsertByID(tx, "instructors", instructors, "name"); err != nil {
			return err
		}
		if err := upsertByID(tx, "classes", classes, "name", "instructor_id", "location_id"); err != nil {
			return err
		}
		if err := upsertByID(tx, "schedules", schedules, "class_id", "location_id", "start_time"); err != nil {
			return err
		}
		if err := upsertByID(tx, "members", members, "full_name", "email"); err != nil {
			return err
		}
		if err := upsertByID(tx, "reservations", reservations, "member_id", "schedule_id", "reservation_date", "status"); err != nil {
			return err
		}
		return nil
	})
}

// upsertByID batch-upserts rows keyed by their primary id column.
func upsertByID[T any](tx *gorm.DB, label string, rows []T, updateColumns ...string) error {
	if len(rows) == 0 {
		return nil
	}
	log.Printf("Batch upserting %d %s...", len(rows), label)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(updateColumns, "updated_at")),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("batch upsert %s failed: %w", label, err)
	}
	return nil
}

// collectReferences builds deduplicated reference rows out of the
// denormalized feed items.
func collectReferences(items []FeedItem) ([]model.Location, []model.Instructor, []model.Class, []model.ClassSchedule, []model.Member) {
	locationSet := make(map[int64]model.Location)
	instructorSet := make(map[int64]model.Instructor)
	classSet := make(map[int64]model.Class)
	scheduleSet := make(map[int64]model.ClassSchedule)
	memberSet := make(map[int64]model.Member)

	for _, item := range items {
		if item.LocationID != nil {
			locationSet[*item.LocationID] = model.Location{ID: *item.LocationID, Name: item.LocationName}
		}
		if item.InstructorID != nil {
			instructorSet[*item.InstructorID] = model.Instructor{ID: *item.InstructorID, Name: item.InstructorName}
		}
		if item.ClassID != nil {
			classSet[*item.ClassID] = model.Class{
				ID:           *item.ClassID,
				Name:         item.ClassName,
				InstructorID: item.InstructorID,
				LocationID:   item.LocationID,
			}
		}
		if item.ScheduleID != nil {
			scheduleSet[*item.ScheduleID] = model.ClassSchedule{
				ID:         *item.ScheduleID,
				ClassID:    item.ClassID,
				LocationID: item.LocationID,
				StartTime:  item.StartTime,
			}
		}
		if item.MemberID != nil {
			memberSet[*item.MemberID] = model.Member{
				ID:       *item.MemberID,
				FullName: item.MemberName,
				Email:    item.MemberEmail,
			}
		}
	}

	locations := make([]model.Location, 0, len(locationSet))
	for _, l := range locationSet {
		locations = append(locations, l)
	}
	instructors := make([]model.Instructor, 0, len(instructorSet))
	for _, i := range instructorSet {
		instructors = append(instructors, i)
	}
	classes := make([]model.Class, 0, len(classSet))
	for _, c := range classSet {
		classes = append(classes, c)
	}
	schedules := make([]model.ClassSchedule, 0, len(scheduleSet))
	for _, s := range scheduleSet {
		schedules = append(schedules, s)
	}
	members := make([]model.Member, 0, len(memberSet))
	for _, m := range memberSet {
		members = append(members, m)
	}
	return locations, instructors, classes, schedules, members
}
