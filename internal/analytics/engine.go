package analytics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"fitclub-admin-backend/internal/model"
	"fitclub-admin-backend/internal/store"
)

var (
	// ErrReloadInProgress is returned when a reload is requested while
	// another one is still in flight.
	ErrReloadInProgress = errors.New("a reload is already in progress")
	// ErrNotFound is returned when a reservation id is unknown.
	ErrNotFound = errors.New("reservation not found")
	// ErrNotCancellable is returned when a reservation is not in the
	// confirmed state.
	ErrNotCancellable = errors.New("reservation is not confirmed")
)

// Engine owns the record snapshot and recomputes every derived view
// from it. All views are pure functions of (snapshot, params, now);
// the engine adds wholesale reloads, memoization and the cancellation
// workflow on top.
type Engine struct {
	store store.Store
	loc   *time.Location
	memo  *cache.Cache

	mu       sync.RWMutex
	snapshot *Snapshot
	version  uint64

	loading atomic.Bool
}

// NewEngine creates an engine computing date windows in the club's
// timezone. The snapshot starts empty; call Reload before serving.
func NewEngine(s store.Store, loc *time.Location) *Engine {
	return &Engine{
		store: s,
		loc:   loc,
		memo:  cache.New(5*time.Minute, 10*time.Minute),
		snapshot: &Snapshot{
			Occupancy: make(map[SessionKey]int),
		},
	}
}

// Reload fetches reservations, locations and instructors concurrently,
// joins the three loads and swaps the snapshot wholesale. While one
// reload is in flight further calls are rejected; on failure the
// previous snapshot stays available and the loading flag is reset so
// the caller can retry.
func (e *Engine) Reload(ctx context.Context) error {
	if !e.loading.CompareAndSwap(false, true) {
		return ErrReloadInProgress
	}
	defer e.loading.Store(false)

	var (
		wg           sync.WaitGroup
		reservations []model.Reservation
		locations    []model.Location
		instructors  []model.Instructor
		errRes       error
		errLoc       error
		errIns       error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		reservations, errRes = e.store.FetchReservationsWithDetails(ctx)
	}()
	go func() {
		defer wg.Done()
		locations, errLoc = e.store.FetchLocations(ctx)
	}()
	go func() {
		defer wg.Done()
		instructors, errIns = e.store.FetchInstructors(ctx)
	}()
	wg.Wait()

	for _, err := range []error{errRes, errLoc, errIns} {
		if err != nil {
			return fmt.Errorf("reload failed: %w", err)
		}
	}

	next := &Snapshot{
		Reservations: reservations,
		Locations:    locations,
		Instructors:  instructors,
		Occupancy:    OccupancyCounts(reservations),
		LoadedAt:     time.Now().In(e.loc),
	}

	e.mu.Lock()
	e.snapshot = next
	e.version++
	e.mu.Unlock()
	e.memo.Flush()

	log.Printf("snapshot reloaded: %d reservations, %d locations, %d instructors",
		len(reservations), len(locations), len(instructors))
	return nil
}

// Snapshot returns the current record snapshot.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot
}

// Now returns the current time in the club's timezone.
func (e *Engine) Now() time.Time {
	return time.Now().In(e.loc)
}

func (e *Engine) current() (*Snapshot, uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot, e.version
}

// Filtered returns the reservations matching params. Results are
// memoized per (snapshot version, params, date); the cache is flushed
// wholesale on reload.
func (e *Engine) Filtered(params FilterParams) []model.Reservation {
	snap, version := e.current()
	now := e.Now()

	key := fmt.Sprintf("filtered:%d:%s:%s", version, dateKey(now), params.Key())
	if cached, found := e.memo.Get(key); found {
		return cached.([]model.Reservation)
	}

	filtered := Filter(snap.Reservations, params, now)
	e.memo.Set(key, filtered, cache.DefaultExpiration)
	return filtered
}

// Rows returns the filtered reservations annotated with resolved
// display names and the global occupancy of their session.
func (e *Engine) Rows(params FilterParams) []Row {
	snap, _ := e.current()
	filtered := e.Filtered(params)

	rows := make([]Row, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, Row{
			Reservation:    r,
			ClassName:      ResolveClassName(r),
			InstructorName: ResolveInstructorName(r),
			LocationName:   ResolveLocationName(r),
			Time:           StartTimeHHMM(r),
			Occupancy:      snap.Occupancy[KeyOf(r)],
		})
	}
	return rows
}

// Sessions returns the per-session aggregates of the filtered view.
func (e *Engine) Sessions(params FilterParams) []SessionGroup {
	_, version := e.current()
	now := e.Now()

	key := fmt.Sprintf("sessions:%d:%s:%s", version, dateKey(now), params.Key())
	if cached, found := e.memo.Get(key); found {
		return cached.([]SessionGroup)
	}

	sessions := GroupSessions(e.Filtered(params), now)
	e.memo.Set(key, sessions, cache.DefaultExpiration)
	return sessions
}

// Summary returns the KPIs over the full unfiltered record set.
func (e *Engine) Summary() Summary {
	snap, _ := e.current()
	return Summarize(snap.Reservations, e.Now())
}

// Charts returns the three ranking tables over the full unfiltered
// record set.
func (e *Engine) Charts() RankTables {
	snap, version := e.current()

	key := fmt.Sprintf("charts:%d", version)
	if cached, found := e.memo.Get(key); found {
		return cached.(RankTables)
	}

	tables := Rank(snap.Reservations)
	e.memo.Set(key, tables, cache.DefaultExpiration)
	return tables
}

// Export serializes the filtered view to CSV and returns the document
// together with its download filename.
func (e *Engine) Export(params FilterParams) ([]byte, string) {
	return ExportCSV(e.Filtered(params)), ExportFilename(e.Now())
}

// Cancel runs the cancellation workflow for one reservation: verify it
// is currently confirmed, ask the record source to cancel it, then
// reload everything so all derived views reflect server state. There
// is no optimistic local mutation and no retry. The reservation as
// known before the cancel is returned so callers can notify about it.
func (e *Engine) Cancel(ctx context.Context, id int64) (model.Reservation, error) {
	snap, _ := e.current()

	var target *model.Reservation
	for i := range snap.Reservations {
		if snap.Reservations[i].ID == id {
			target = &snap.Reservations[i]
			break
		}
	}
	if target == nil {
		return model.Reservation{}, ErrNotFound
	}
	if target.Status != model.StatusConfirmed {
		return model.Reservation{}, ErrNotCancellable
	}

	ok, err := e.store.CancelReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("cancellation failed: %w", err)
	}
	if !ok {
		return model.Reservation{}, ErrNotCancellable
	}

	if err := e.Reload(ctx); err != nil {
		// The cancel itself succeeded; a failed reload leaves the
		// previous snapshot visible until the next one.
		log.Printf("Warning: reload after cancelling reservation %d failed: %v", id, err)
	}
	return *target, nil
}
