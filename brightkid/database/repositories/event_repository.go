package repositories

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/progress"
	"github.com/uptrace/bun"
)

// InsertResult reports how an event write resolved. A duplicate daily event
// is a successful no-op, not an error.
type InsertResult struct {
	Inserted bool
	Deduped  bool
	Event    *models.ActivityEvent
}

// Totals are the all-time per-kind counts and points for a child.
type Totals struct {
	TotalPoints  int `bun:"total_points"`
	Flashcards   int `bun:"flashcards"`
	Chores       int `bun:"chores"`
	Outdoor      int `bun:"outdoor"`
	Affirmations int `bun:"affirmations"`
}

// TodayStats cover the current UTC calendar day.
type TodayStats struct {
	Points            int `bun:"points"`
	Flashcards        int `bun:"flashcards"`
	FlashcardsCorrect int `bun:"flashcards_correct"`
	Chores            int `bun:"chores"`
	Outdoor           int `bun:"outdoor"`
	Affirmations      int `bun:"affirmations"`
}

func (t TodayStats) HasFlashcards() bool { return t.Flashcards > 0 }
func (t TodayStats) HasChores() bool     { return t.Chores > 0 }
func (t TodayStats) HasOutdoor() bool    { return t.Outdoor > 0 }

// WeekStats cover the Sunday-start UTC week containing now.
type WeekStats struct {
	WeekStart         time.Time `bun:"-"`
	Points            int       `bun:"points"`
	ActiveDays        int       `bun:"active_days"`
	Flashcards        int       `bun:"flashcards"`
	FlashcardsCorrect int       `bun:"flashcards_correct"`
	Chores            int       `bun:"chores"`
	Outdoor           int       `bun:"outdoor"`
	Affirmations      int       `bun:"affirmations"`
	AccuracyPct       int       `bun:"-"`
}

// SubjectFlashcardCounts are the per-subject completed/correct totals.
type SubjectFlashcardCounts struct {
	SubjectID string `bun:"subject_id"`
	Completed int    `bun:"completed"`
	Correct   int    `bun:"correct"`
}

// EventRepository is the append-only activity event store plus its read-side
// aggregations. Methods take an explicit bun.IDB so the write path can run
// them inside the request transaction and the dashboard can run them against
// the plain pool; aggregates read within the same tx see the just-written
// event.
type EventRepository interface {
	Insert(ctx context.Context, idb bun.IDB, event *models.ActivityEvent) (InsertResult, error)
	Totals(ctx context.Context, idb bun.IDB, childID int64) (*Totals, error)
	TodayStats(ctx context.Context, idb bun.IDB, childID int64, now time.Time) (*TodayStats, error)
	WeekStats(ctx context.Context, idb bun.IDB, childID int64, now time.Time) (*WeekStats, error)
	FlashcardCountsBySubject(ctx context.Context, idb bun.IDB, childID int64, subjects []string) ([]SubjectFlashcardCounts, error)
	DistinctSubjects(ctx context.Context, idb bun.IDB, childID int64) ([]string, error)
	ActiveDays(ctx context.Context, idb bun.IDB, childID int64, now time.Time) ([]time.Time, error)
}

type eventRepository struct {
	db *bun.DB
}

func NewEventRepository(db *bun.DB) EventRepository {
	return &eventRepository{db: db}
}

// Insert appends an event. For daily-dedupable kinds the insert runs inside
// a savepoint so a unique violation aborts only this statement: the ambient
// transaction, which the achievement scan runs in afterwards, stays alive.
// Must be called within a transaction.
func (r *eventRepository) Insert(ctx context.Context, idb bun.IDB, event *models.ActivityEvent) (InsertResult, error) {
	dedupes := models.KindDedupesDaily(event.Kind)

	if dedupes {
		if _, err := idb.ExecContext(ctx, "SAVEPOINT activity_event_insert"); err != nil {
			return InsertResult{}, fmt.Errorf("failed to open savepoint: %w", err)
		}
	}

	_, err := idb.NewInsert().
		Model(event).
		Returning("id").
		Exec(ctx)

	if err != nil {
		if dedupes && isUniqueViolation(err) {
			if _, rbErr := idb.ExecContext(ctx, "ROLLBACK TO SAVEPOINT activity_event_insert"); rbErr != nil {
				return InsertResult{}, fmt.Errorf("failed to roll back savepoint: %w", rbErr)
			}
			slog.Debug("Duplicate daily event ignored",
				slog.String("type", "db"),
				slog.Int64("child_id", event.ChildID),
				slog.String("kind", event.Kind))
			return InsertResult{Deduped: true}, nil
		}
		return InsertResult{}, &RepositoryError{Operation: "insert", Entity: "activity_event", Err: err}
	}

	if dedupes {
		if _, err := idb.ExecContext(ctx, "RELEASE SAVEPOINT activity_event_insert"); err != nil {
			return InsertResult{}, fmt.Errorf("failed to release savepoint: %w", err)
		}
	}

	return InsertResult{Inserted: true, Event: event}, nil
}

func (r *eventRepository) Totals(ctx context.Context, idb bun.IDB, childID int64) (*Totals, error) {
	totals := new(Totals)
	err := idb.NewSelect().
		Model((*models.ActivityEvent)(nil)).
		ColumnExpr("COALESCE(SUM(points), 0) AS total_points").
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS flashcards", models.EventKindFlashcard).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS chores", models.EventKindChore).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS outdoor", models.EventKindOutdoor).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS affirmations", models.EventKindAffirmation).
		Where("child_id = ?", childID).
		Scan(ctx, totals)
	if err != nil {
		return nil, &RepositoryError{Operation: "totals", Entity: "activity_event", Err: err}
	}
	return totals, nil
}

func (r *eventRepository) TodayStats(ctx context.Context, idb bun.IDB, childID int64, now time.Time) (*TodayStats, error) {
	start, end := progress.TodayWindowUTC(now)

	stats := new(TodayStats)
	err := idb.NewSelect().
		Model((*models.ActivityEvent)(nil)).
		ColumnExpr("COALESCE(SUM(points), 0) AS points").
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS flashcards", models.EventKindFlashcard).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ? AND is_correct) AS flashcards_correct", models.EventKindFlashcard).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS chores", models.EventKindChore).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS outdoor", models.EventKindOutdoor).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS affirmations", models.EventKindAffirmation).
		Where("child_id = ?", childID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(ctx, stats)
	if err != nil {
		return nil, &RepositoryError{Operation: "today_stats", Entity: "activity_event", Err: err}
	}
	return stats, nil
}

func (r *eventRepository) WeekStats(ctx context.Context, idb bun.IDB, childID int64, now time.Time) (*WeekStats, error) {
	start, end := progress.WeekWindowUTC(now)

	stats := &WeekStats{WeekStart: start}
	err := idb.NewSelect().
		Model((*models.ActivityEvent)(nil)).
		ColumnExpr("COALESCE(SUM(points), 0) AS points").
		ColumnExpr("COUNT(DISTINCT date(created_at)) AS active_days").
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS flashcards", models.EventKindFlashcard).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ? AND is_correct) AS flashcards_correct", models.EventKindFlashcard).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS chores", models.EventKindChore).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS outdoor", models.EventKindOutdoor).
		ColumnExpr("COUNT(*) FILTER (WHERE kind = ?) AS affirmations", models.EventKindAffirmation).
		Where("child_id = ?", childID).
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(ctx, stats)
	if err != nil {
		return nil, &RepositoryError{Operation: "week_stats", Entity: "activity_event", Err: err}
	}
	stats.AccuracyPct = progress.AccuracyPct(stats.FlashcardsCorrect, stats.Flashcards)
	return stats, nil
}

func (r *eventRepository) FlashcardCountsBySubject(ctx context.Context, idb bun.IDB, childID int64, subjects []string) ([]SubjectFlashcardCounts, error) {
	query := idb.NewSelect().
		Model((*models.ActivityEvent)(nil)).
		ColumnExpr("subject_id").
		ColumnExpr("COUNT(*) AS completed").
		ColumnExpr("COUNT(*) FILTER (WHERE is_correct) AS correct").
		Where("child_id = ?", childID).
		Where("kind = ?", models.EventKindFlashcard).
		Where("subject_id IS NOT NULL").
		Group("subject_id")

	if len(subjects) > 0 {
		query = query.Where("subject_id IN (?)", bun.In(subjects))
	}

	var rows []SubjectFlashcardCounts
	if err := query.Scan(ctx, &rows); err != nil {
		return nil, &RepositoryError{Operation: "flashcards_by_subject", Entity: "activity_event", Err: err}
	}
	return rows, nil
}

func (r *eventRepository) DistinctSubjects(ctx context.Context, idb bun.IDB, childID int64) ([]string, error) {
	var subjects []string
	err := idb.NewSelect().
		Model((*models.ActivityEvent)(nil)).
		ColumnExpr("DISTINCT subject_id").
		Where("child_id = ?", childID).
		Where("kind = ?", models.EventKindFlashcard).
		Where("subject_id IS NOT NULL").
		OrderExpr("subject_id ASC").
		Scan(ctx, &subjects)
	if err != nil {
		return nil, &RepositoryError{Operation: "distinct_subjects", Entity: "activity_event", Err: err}
	}
	return subjects, nil
}

// ActiveDays returns the distinct active UTC days in the trailing lookback
// window, oldest first. The window keeps the streak scan bounded no matter
// how long the event history grows.
func (r *eventRepository) ActiveDays(ctx context.Context, idb bun.IDB, childID int64, now time.Time) ([]time.Time, error) {
	cutoff := progress.DayUTC(now).AddDate(0, 0, -progress.StreakLookbackDays)

	var days []time.Time
	err := idb.NewSelect().
		Model((*models.ActivityEvent)(nil)).
		ColumnExpr("DISTINCT date(created_at) AS day").
		Where("child_id = ?", childID).
		Where("created_at >= ?", cutoff).
		OrderExpr("day ASC").
		Scan(ctx, &days)
	if err != nil {
		return nil, &RepositoryError{Operation: "active_days", Entity: "activity_event", Err: err}
	}
	return days, nil
}
