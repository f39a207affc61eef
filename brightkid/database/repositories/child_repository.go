package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/uptrace/bun"
)

type ChildRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Child, error)
	Create(ctx context.Context, child *models.Child) error
	ListByParent(ctx context.Context, parentID int64) ([]*models.Child, error)
}

type childRepository struct {
	db *bun.DB
}

func NewChildRepository(db *bun.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	child := new(models.Child)
	err := r.db.NewSelect().
		Model(child).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "child", ID: id}
		}
		return nil, &RepositoryError{Operation: "select", Entity: "child", Err: err}
	}
	return child, nil
}

func (r *childRepository) Create(ctx context.Context, child *models.Child) error {
	now := time.Now().UTC()
	child.CreatedAt = now
	child.UpdatedAt = now
	if _, err := r.db.NewInsert().Model(child).Returning("id").Exec(ctx); err != nil {
		return &RepositoryError{Operation: "insert", Entity: "child", Err: err}
	}
	return nil
}

func (r *childRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.Child, error) {
	var children []*models.Child
	err := r.db.NewSelect().
		Model(&children).
		Where("parent_id = ?", parentID).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, &RepositoryError{Operation: "select_by_parent", Entity: "child", Err: err}
	}
	return children, nil
}
