package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ChildSubjectStreak tracks consecutive correct flashcard answers per
// (child, subject). CurrentStreak resets to zero on an incorrect answer;
// LongestStreak only ever grows.
type ChildSubjectStreak struct {
	bun.BaseModel `bun:"table:child_subject_streaks,alias:css"`

	ID            int64     `bun:"id,pk,autoincrement"`
	ChildID       int64     `bun:"child_id,notnull"`
	SubjectID     string    `bun:"subject_id,notnull"`
	CurrentStreak int       `bun:"current_streak,notnull,default:0"`
	LongestStreak int       `bun:"longest_streak,notnull,default:0"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}

// ChildSubjectDifficulty holds the difficulty tier served for a subject,
// recomputed alongside every answered flashcard.
type ChildSubjectDifficulty struct {
	bun.BaseModel `bun:"table:child_subject_difficulties,alias:csd"`

	ID             int64     `bun:"id,pk,autoincrement"`
	ChildID        int64     `bun:"child_id,notnull"`
	SubjectID      string    `bun:"subject_id,notnull"`
	DifficultyCode string    `bun:"difficulty_code,notnull,default:'easy'"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}
