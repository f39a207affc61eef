package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/brightkid/brightkid/brightkid/logger"
	"github.com/brightkid/brightkid/brightkid/progress"
	"github.com/uptrace/bun"
)

// ErrUnknownEventKind is returned for kinds outside the closed event set.
var ErrUnknownEventKind = errors.New("unknown event kind")

// TxRunner is the slice of *bun.DB the write path needs; tests substitute a
// fake that invokes the callback directly.
type TxRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error
}

// RecordEventInput is what callers hand the write path: an owned child id,
// an event kind, and a loosely-typed metadata payload. Ownership must
// already be validated.
type RecordEventInput struct {
	ChildID int64
	Kind    string
	Meta    map[string]any
}

// RecordEventResult reports the resolved write plus everything that became
// true because of it.
type RecordEventResult struct {
	Event           *models.ActivityEvent
	Deduped         bool
	PointsAwarded   int
	NewAchievements []string
}

// ProgressService owns the event write path: insert the event, update the
// subject streak and difficulty it affects, then re-read aggregates and
// evaluate achievement unlocks — all inside one transaction so the
// evaluation sees the just-written event.
type ProgressService struct {
	db           TxRunner
	events       repositories.EventRepository
	streaks      repositories.StreakRepository
	difficulties repositories.DifficultyRepository
	achievements repositories.AchievementRepository
	thresholds   repositories.ThresholdRepository
	now          func() time.Time
}

func NewProgressService(
	db TxRunner,
	events repositories.EventRepository,
	streaks repositories.StreakRepository,
	difficulties repositories.DifficultyRepository,
	achievements repositories.AchievementRepository,
	thresholds repositories.ThresholdRepository,
) *ProgressService {
	return &ProgressService{
		db:           db,
		events:       events,
		streaks:      streaks,
		difficulties: difficulties,
		achievements: achievements,
		thresholds:   thresholds,
		now:          time.Now,
	}
}

func (s *ProgressService) RecordEvent(ctx context.Context, input RecordEventInput) (*RecordEventResult, error) {
	if !models.ValidEventKind(input.Kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventKind, input.Kind)
	}

	start := time.Now()
	now := s.now().UTC()
	event := models.NewActivityEvent(input.ChildID, input.Kind, input.Meta, 0, now)
	event.Points = s.pointsFor(ctx, event)

	result := &RecordEventResult{}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		insert, err := s.events.Insert(ctx, tx, event)
		if err != nil {
			return err
		}
		if insert.Deduped {
			// Idempotent retry: the day's event already exists, nothing
			// downstream changes. The transaction stays healthy thanks to
			// the savepoint around the insert.
			result.Deduped = true
			return nil
		}

		result.Event = insert.Event
		result.PointsAwarded = insert.Event.Points

		if err := s.applyFlashcardProgress(ctx, tx, insert.Event, now); err != nil {
			return err
		}

		snapshot, err := s.buildSnapshot(ctx, tx, input.ChildID, now)
		if err != nil {
			return err
		}

		satisfied := progress.EvaluateAchievementConditions(*snapshot)
		newCodes, err := s.achievements.Unlock(ctx, tx, input.ChildID, satisfied, now)
		if err != nil {
			return err
		}
		result.NewAchievements = newCodes
		return nil
	})
	if err != nil {
		logger.LogEvent(input.Kind, input.ChildID, time.Since(start), err)
		return nil, fmt.Errorf("failed to record %s event for child %d: %w", input.Kind, input.ChildID, err)
	}

	logger.LogEvent(input.Kind, input.ChildID, time.Since(start), nil,
		slog.Bool("deduped", result.Deduped),
		slog.Int("points", result.PointsAwarded),
		slog.Int("new_achievements", len(result.NewAchievements)))

	return result, nil
}

// applyFlashcardProgress advances the subject streak and recomputes the
// difficulty tier for an answered flashcard. Events without a subject or a
// correctness flag (tolerated partial payloads) change nothing.
func (s *ProgressService) applyFlashcardProgress(ctx context.Context, tx bun.IDB, event *models.ActivityEvent, now time.Time) error {
	if event.Kind != models.EventKindFlashcard || event.SubjectID == nil || event.IsCorrect == nil {
		return nil
	}

	streak, err := s.streaks.ApplyAnswer(ctx, tx, event.ChildID, *event.SubjectID, *event.IsCorrect, now)
	if err != nil {
		return err
	}

	thresholds, err := s.thresholds.DifficultyThresholds(ctx)
	if err != nil {
		return err
	}
	code := progress.CalculateDifficulty(streak.CurrentStreak, thresholds)
	return s.difficulties.Set(ctx, tx, event.ChildID, *event.SubjectID, code, now)
}

// buildSnapshot reads the aggregates the achievement evaluator needs, within
// the write transaction so the just-inserted event is visible.
func (s *ProgressService) buildSnapshot(ctx context.Context, tx bun.IDB, childID int64, now time.Time) (*progress.Snapshot, error) {
	totals, err := s.events.Totals(ctx, tx, childID)
	if err != nil {
		return nil, err
	}
	today, err := s.events.TodayStats(ctx, tx, childID, now)
	if err != nil {
		return nil, err
	}
	activeDays, err := s.events.ActiveDays(ctx, tx, childID, now)
	if err != nil {
		return nil, err
	}
	streakStats := progress.ComputeStreaks(activeDays, now)

	difficulties, err := s.difficulties.GetAll(ctx, tx, childID)
	if err != nil {
		return nil, err
	}
	difficultyBySubject := make(map[string]string, len(difficulties))
	for _, row := range difficulties {
		difficultyBySubject[row.SubjectID] = row.DifficultyCode
	}

	subjectCounts, err := s.events.FlashcardCountsBySubject(ctx, tx, childID, nil)
	if err != nil {
		return nil, err
	}
	correctBySubject := make(map[string]int, len(subjectCounts))
	for _, row := range subjectCounts {
		correctBySubject[row.SubjectID] = row.Correct
	}

	return &progress.Snapshot{
		TotalPoints:        totals.TotalPoints,
		CurrentStreak:      streakStats.Current,
		TotalFlashcards:    totals.Flashcards,
		TotalChores:        totals.Chores,
		TotalOutdoor:       totals.Outdoor,
		TodayHasFlashcards: today.HasFlashcards(),
		TodayHasChores:     today.HasChores(),
		TodayHasOutdoor:    today.HasOutdoor(),
		SubjectDifficulty:  difficultyBySubject,
		SubjectCorrect:     correctBySubject,
	}, nil
}

// pointsFor resolves the points awarded for an event from the configured
// points values, falling back to the documented defaults. A configuration
// read failure downgrades to defaults rather than failing the write.
func (s *ProgressService) pointsFor(ctx context.Context, event *models.ActivityEvent) int {
	values := progress.DefaultPointsValues()
	configured, err := s.thresholds.PointsValues(ctx)
	if err != nil {
		slog.Warn("Falling back to default points values",
			slog.String("type", "sys"),
			slog.Any("error", err))
	} else {
		for name, pts := range configured {
			values[name] = pts
		}
	}

	switch event.Kind {
	case models.EventKindFlashcard:
		if event.IsCorrect != nil && *event.IsCorrect {
			return values[progress.PointsFlashcardCorrect]
		}
		return values[progress.PointsFlashcardIncorrect]
	case models.EventKindChore:
		return values[progress.PointsChoreCompleted]
	case models.EventKindOutdoor:
		return values[progress.PointsOutdoorActivity]
	case models.EventKindAffirmation:
		return values[progress.PointsAffirmationViewed]
	}
	return 0
}
