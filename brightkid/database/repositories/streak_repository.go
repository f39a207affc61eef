package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/uptrace/bun"
)

// StreakRepository maintains the per-(child, subject) correct-answer streaks,
// updated in the same transaction as the flashcard event they derive from.
type StreakRepository interface {
	ApplyAnswer(ctx context.Context, idb bun.IDB, childID int64, subjectID string, correct bool, now time.Time) (*models.ChildSubjectStreak, error)
	GetAll(ctx context.Context, idb bun.IDB, childID int64) ([]*models.ChildSubjectStreak, error)
}

type streakRepository struct {
	db *bun.DB
}

func NewStreakRepository(db *bun.DB) StreakRepository {
	return &streakRepository{db: db}
}

// ApplyAnswer advances the streak for a correct answer or resets it for an
// incorrect one. The row is locked for the duration of the transaction so
// two interleaved answers for the same subject serialize here.
func (r *streakRepository) ApplyAnswer(ctx context.Context, idb bun.IDB, childID int64, subjectID string, correct bool, now time.Time) (*models.ChildSubjectStreak, error) {
	streak := new(models.ChildSubjectStreak)
	err := idb.NewSelect().
		Model(streak).
		Where("child_id = ? AND subject_id = ?", childID, subjectID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, &RepositoryError{Operation: "select", Entity: "child_subject_streak", Err: err}
		}
		streak = &models.ChildSubjectStreak{ChildID: childID, SubjectID: subjectID}
	}

	if correct {
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
	} else {
		streak.CurrentStreak = 0
	}
	streak.UpdatedAt = now.UTC()

	_, err = idb.NewInsert().
		Model(streak).
		On("CONFLICT (child_id, subject_id) DO UPDATE").
		Set("current_streak = EXCLUDED.current_streak").
		Set("longest_streak = GREATEST(css.longest_streak, EXCLUDED.longest_streak)").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "upsert", Entity: "child_subject_streak", Err: err}
	}

	return streak, nil
}

func (r *streakRepository) GetAll(ctx context.Context, idb bun.IDB, childID int64) ([]*models.ChildSubjectStreak, error) {
	var streaks []*models.ChildSubjectStreak
	err := idb.NewSelect().
		Model(&streaks).
		Where("child_id = ?", childID).
		Order("subject_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_all", Entity: "child_subject_streak", Err: err}
	}
	return streaks, nil
}
