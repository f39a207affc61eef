package repositories

import (
	"context"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/uptrace/bun"
)

// DifficultyRepository stores the served difficulty tier per (child, subject).
type DifficultyRepository interface {
	Set(ctx context.Context, idb bun.IDB, childID int64, subjectID, code string, now time.Time) error
	GetAll(ctx context.Context, idb bun.IDB, childID int64) ([]*models.ChildSubjectDifficulty, error)
}

type difficultyRepository struct {
	db *bun.DB
}

func NewDifficultyRepository(db *bun.DB) DifficultyRepository {
	return &difficultyRepository{db: db}
}

func (r *difficultyRepository) Set(ctx context.Context, idb bun.IDB, childID int64, subjectID, code string, now time.Time) error {
	row := &models.ChildSubjectDifficulty{
		ChildID:        childID,
		SubjectID:      subjectID,
		DifficultyCode: code,
		UpdatedAt:      now.UTC(),
	}
	_, err := idb.NewInsert().
		Model(row).
		On("CONFLICT (child_id, subject_id) DO UPDATE").
		Set("difficulty_code = EXCLUDED.difficulty_code").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return &RepositoryError{Operation: "upsert", Entity: "child_subject_difficulty", Err: err}
	}
	return nil
}

func (r *difficultyRepository) GetAll(ctx context.Context, idb bun.IDB, childID int64) ([]*models.ChildSubjectDifficulty, error) {
	var rows []*models.ChildSubjectDifficulty
	err := idb.NewSelect().
		Model(&rows).
		Where("child_id = ?", childID).
		Order("subject_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_all", Entity: "child_subject_difficulty", Err: err}
	}
	return rows, nil
}
