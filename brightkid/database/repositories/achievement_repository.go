package repositories

import (
	"context"
	"time"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/uptrace/bun"
)

// AchievementRepository serves the static catalog and the per-child unlock
// rows. Unlocks are monotonic: one row per (child, achievement), first write
// wins, never removed.
type AchievementRepository interface {
	Definitions(ctx context.Context) ([]*models.AchievementDefinition, error)
	Unlocked(ctx context.Context, idb bun.IDB, childID int64) ([]*models.ChildAchievement, error)
	Unlock(ctx context.Context, idb bun.IDB, childID int64, codes []string, now time.Time) ([]string, error)
}

type achievementRepository struct {
	db *bun.DB
}

func NewAchievementRepository(db *bun.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Definitions(ctx context.Context) ([]*models.AchievementDefinition, error) {
	var definitions []*models.AchievementDefinition
	err := r.db.NewSelect().
		Model(&definitions).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_all", Entity: "achievement_definition", Err: err}
	}
	return definitions, nil
}

func (r *achievementRepository) Unlocked(ctx context.Context, idb bun.IDB, childID int64) ([]*models.ChildAchievement, error) {
	var unlocked []*models.ChildAchievement
	err := idb.NewSelect().
		Model(&unlocked).
		Where("child_id = ?", childID).
		Order("unlocked_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_unlocked", Entity: "child_achievement", Err: err}
	}
	return unlocked, nil
}

// filterNewCodes returns the codes not yet in already, preserving input
// order and collapsing duplicate candidates. Already-unlocked codes never
// come back: unlocks only ever grow.
func filterNewCodes(codes []string, already map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(codes))
	var out []string
	for _, code := range codes {
		if _, ok := already[code]; ok {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// Unlock inserts one row per genuinely new code and returns only those, so
// callers can announce new achievements without repeating old ones. The
// composite unique index closes the race with concurrent requests: a row
// that loses the race simply isn't returned.
func (r *achievementRepository) Unlock(ctx context.Context, idb bun.IDB, childID int64, codes []string, now time.Time) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	existing, err := r.Unlocked(ctx, idb, childID)
	if err != nil {
		return nil, err
	}
	already := make(map[string]struct{}, len(existing))
	for _, unlock := range existing {
		already[unlock.AchievementCode] = struct{}{}
	}

	newCodes := filterNewCodes(codes, already)
	if len(newCodes) == 0 {
		return nil, nil
	}
	rows := make([]*models.ChildAchievement, 0, len(newCodes))
	for _, code := range newCodes {
		rows = append(rows, &models.ChildAchievement{
			ChildID:         childID,
			AchievementCode: code,
			UnlockedAt:      now.UTC(),
		})
	}

	var inserted []string
	err = idb.NewInsert().
		Model(&rows).
		On("CONFLICT (child_id, achievement_code) DO NOTHING").
		Returning("achievement_code").
		Scan(ctx, &inserted)
	if err != nil {
		return nil, &RepositoryError{Operation: "unlock", Entity: "child_achievement", Err: err}
	}

	if len(inserted) > 0 {
		slog.Info("Achievements unlocked",
			slog.String("type", "db"),
			slog.Int64("child_id", childID),
			slog.Any("codes", inserted))
	}
	return inserted, nil
}
