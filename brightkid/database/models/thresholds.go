package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DifficultyThreshold maps a difficulty code (easy/medium/hard) to the
// absolute correct-streak count required to reach it.
type DifficultyThreshold struct {
	bun.BaseModel `bun:"table:difficulty_thresholds,alias:dt"`

	ID             int64     `bun:"id,pk,autoincrement"`
	DifficultyCode string    `bun:"difficulty_code,notnull,unique"`
	Threshold      int       `bun:"threshold,notnull"`
	IsActive       bool      `bun:"is_active,notnull,default:true"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}

// LevelThreshold maps a level name to its total correct-answer threshold,
// plus the display metadata the reward block surfaces.
type LevelThreshold struct {
	bun.BaseModel `bun:"table:level_thresholds,alias:lt"`

	ID        int64     `bun:"id,pk,autoincrement"`
	LevelName string    `bun:"level_name,notnull,unique"`
	Threshold int       `bun:"threshold,notnull"`
	Icon      string    `bun:"icon"`
	Color     string    `bun:"color"`
	IsActive  bool      `bun:"is_active,notnull,default:true"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// PointsValue maps an activity name (flashcard_correct, chore_completed, ...)
// to the points awarded for it.
type PointsValue struct {
	bun.BaseModel `bun:"table:points_values,alias:pv"`

	ID           int64     `bun:"id,pk,autoincrement"`
	ActivityName string    `bun:"activity_name,notnull,unique"`
	Points       int       `bun:"points,notnull"`
	IsActive     bool      `bun:"is_active,notnull,default:true"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}
