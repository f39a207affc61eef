package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	AchievementTypeDaily   = "daily"
	AchievementTypeWeekly  = "weekly"
	AchievementTypeMonthly = "monthly"
	AchievementTypeSpecial = "special"
)

// AchievementDefinition is a static catalog row. Definitions are seeded by
// the schema initializer and treated as read-only by the services.
type AchievementDefinition struct {
	bun.BaseModel `bun:"table:achievement_definitions,alias:ad"`

	ID                  int64     `bun:"id,pk,autoincrement"`
	Code                string    `bun:"code,notnull,unique"`
	Title               string    `bun:"title,notnull"`
	Description         string    `bun:"description,notnull"`
	Icon                string    `bun:"icon,notnull"`
	Type                string    `bun:"type,notnull"`
	PointsThreshold     *int      `bun:"points_threshold"`
	StreakDaysThreshold *int      `bun:"streak_days_threshold"`
	CreatedAt           time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// ChildAchievement is an unlock record. One row per (child, achievement),
// first write wins, never removed.
type ChildAchievement struct {
	bun.BaseModel `bun:"table:child_achievements,alias:ca"`

	ID              int64     `bun:"id,pk,autoincrement"`
	ChildID         int64     `bun:"child_id,notnull"`
	AchievementCode string    `bun:"achievement_code,notnull"`
	UnlockedAt      time.Time `bun:"unlocked_at,notnull"`
	Context         string    `bun:"context"`
}
