package repositories

import (
	"context"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/uptrace/bun"
)

// ThresholdRepository reads the active configuration rows. Results are
// returned as-is; services apply the documented defaults when a mapping
// comes back empty.
type ThresholdRepository interface {
	DifficultyThresholds(ctx context.Context) (map[string]int, error)
	Levels(ctx context.Context) ([]*models.LevelThreshold, error)
	PointsValues(ctx context.Context) (map[string]int, error)
}

type thresholdRepository struct {
	db *bun.DB
}

func NewThresholdRepository(db *bun.DB) ThresholdRepository {
	return &thresholdRepository{db: db}
}

func (r *thresholdRepository) DifficultyThresholds(ctx context.Context) (map[string]int, error) {
	var rows []*models.DifficultyThreshold
	err := r.db.NewSelect().
		Model(&rows).
		Where("is_active = ?", true).
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_active", Entity: "difficulty_threshold", Err: err}
	}

	thresholds := make(map[string]int, len(rows))
	for _, row := range rows {
		thresholds[row.DifficultyCode] = row.Threshold
	}
	return thresholds, nil
}

func (r *thresholdRepository) Levels(ctx context.Context) ([]*models.LevelThreshold, error) {
	var rows []*models.LevelThreshold
	err := r.db.NewSelect().
		Model(&rows).
		Where("is_active = ?", true).
		Order("threshold ASC").
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_active", Entity: "level_threshold", Err: err}
	}
	return rows, nil
}

func (r *thresholdRepository) PointsValues(ctx context.Context) (map[string]int, error) {
	var rows []*models.PointsValue
	err := r.db.NewSelect().
		Model(&rows).
		Where("is_active = ?", true).
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_active", Entity: "points_value", Err: err}
	}

	points := make(map[string]int, len(rows))
	for _, row := range rows {
		points[row.ActivityName] = row.Points
	}
	return points, nil
}
