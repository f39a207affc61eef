package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Child struct {
	bun.BaseModel `bun:"table:children,alias:ch"`

	ID        int64     `bun:"id,pk,autoincrement"`
	ParentID  int64     `bun:"parent_id,notnull"`
	Name      string    `bun:"name,notnull"`
	AvatarURL string    `bun:"avatar_url"`
	BirthYear int       `bun:"birth_year"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
