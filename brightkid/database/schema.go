package database

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid/database/models"
)

// InitializeSchema creates tables, indexes and seed rows. Every statement is
// idempotent so startup can run it unconditionally.
func (db *DB) InitializeSchema(ctx context.Context) error {
	start := time.Now()

	tables := []any{
		(*models.Child)(nil),
		(*models.ActivityEvent)(nil),
		(*models.ChildSubjectStreak)(nil),
		(*models.ChildSubjectDifficulty)(nil),
		(*models.AchievementDefinition)(nil),
		(*models.ChildAchievement)(nil),
		(*models.DifficultyThreshold)(nil),
		(*models.LevelThreshold)(nil),
		(*models.PointsValue)(nil),
	}
	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	if err := db.createIndexes(ctx); err != nil {
		return err
	}
	if err := db.seedConfiguration(ctx); err != nil {
		return err
	}
	if err := db.seedAchievementCatalog(ctx); err != nil {
		return err
	}

	slog.Info("Database schema initialized",
		slog.String("type", "db"),
		slog.Duration("took", time.Since(start)))
	return nil
}

func (db *DB) createIndexes(ctx context.Context) error {
	// created_at is stored as a naive UTC timestamp, so date(created_at) is
	// immutable and allowed in the index expression. The partial index is the
	// durable backstop for daily dedupe: application-level checks only make
	// the duplicate path cheap, this makes it correct.
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_events_daily_dedupe
			ON activity_events (child_id, kind, (date(created_at)))
			WHERE kind IN ('chore', 'outdoor', 'affirmation')`,
		`CREATE INDEX IF NOT EXISTS idx_events_child_created
			ON activity_events (child_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_child_subject
			ON activity_events (child_id, subject_id)
			WHERE subject_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_child_achievements_unique
			ON child_achievements (child_id, achievement_code)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subject_streaks_unique
			ON child_subject_streaks (child_id, subject_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subject_difficulties_unique
			ON child_subject_difficulties (child_id, subject_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.bunDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func (db *DB) seedConfiguration(ctx context.Context) error {
	now := time.Now().UTC()

	difficulties := []models.DifficultyThreshold{
		{DifficultyCode: "easy", Threshold: 0, IsActive: true, UpdatedAt: now},
		{DifficultyCode: "medium", Threshold: 20, IsActive: true, UpdatedAt: now},
		{DifficultyCode: "hard", Threshold: 40, IsActive: true, UpdatedAt: now},
	}
	if _, err := db.bunDB.NewInsert().
		Model(&difficulties).
		On("CONFLICT (difficulty_code) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed difficulty thresholds: %w", err)
	}

	levels := []models.LevelThreshold{
		{LevelName: "New Kid", Threshold: 0, Icon: "🌱", Color: "#8BC34A", IsActive: true, UpdatedAt: now},
		{LevelName: "Good Kid", Threshold: 30, Icon: "🌟", Color: "#03A9F4", IsActive: true, UpdatedAt: now},
		{LevelName: "Great Kid", Threshold: 75, Icon: "🚀", Color: "#9C27B0", IsActive: true, UpdatedAt: now},
		{LevelName: "Super Kid", Threshold: 150, Icon: "🏆", Color: "#FF9800", IsActive: true, UpdatedAt: now},
		{LevelName: "Star Kid", Threshold: 300, Icon: "👑", Color: "#F44336", IsActive: true, UpdatedAt: now},
	}
	if _, err := db.bunDB.NewInsert().
		Model(&levels).
		On("CONFLICT (level_name) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed level thresholds: %w", err)
	}

	points := []models.PointsValue{
		{ActivityName: "flashcard_correct", Points: 10, IsActive: true, UpdatedAt: now},
		{ActivityName: "flashcard_incorrect", Points: 2, IsActive: true, UpdatedAt: now},
		{ActivityName: "chore_completed", Points: 15, IsActive: true, UpdatedAt: now},
		{ActivityName: "outdoor_activity", Points: 20, IsActive: true, UpdatedAt: now},
		{ActivityName: "affirmation_viewed", Points: 5, IsActive: true, UpdatedAt: now},
	}
	if _, err := db.bunDB.NewInsert().
		Model(&points).
		On("CONFLICT (activity_name) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed points values: %w", err)
	}

	return nil
}

func intPtr(v int) *int { return &v }

func (db *DB) seedAchievementCatalog(ctx context.Context) error {
	definitions := []models.AchievementDefinition{
		{Code: "first_steps", Title: "First Steps", Description: "Answer your very first flashcard", Icon: "👣", Type: models.AchievementTypeSpecial},
		{Code: "flashcard_fan_50", Title: "Flashcard Fan", Description: "Answer 50 flashcards", Icon: "🃏", Type: models.AchievementTypeSpecial},
		{Code: "flashcard_master_200", Title: "Flashcard Master", Description: "Answer 200 flashcards", Icon: "🎓", Type: models.AchievementTypeSpecial},
		{Code: "chore_champion_25", Title: "Chore Champion", Description: "Complete 25 chores", Icon: "🧹", Type: models.AchievementTypeSpecial},
		{Code: "outdoor_explorer_10", Title: "Outdoor Explorer", Description: "Finish 10 outdoor activities", Icon: "🌳", Type: models.AchievementTypeSpecial},
		{Code: "point_collector_100", Title: "Point Collector", Description: "Earn 100 points", Icon: "💎", Type: models.AchievementTypeSpecial, PointsThreshold: intPtr(100)},
		{Code: "point_hoarder_1000", Title: "Point Hoarder", Description: "Earn 1000 points", Icon: "💰", Type: models.AchievementTypeSpecial, PointsThreshold: intPtr(1000)},
		{Code: "streak_3", Title: "Warming Up", Description: "Stay active 3 days in a row", Icon: "✨", Type: models.AchievementTypeDaily, StreakDaysThreshold: intPtr(3)},
		{Code: "streak_7", Title: "Full Week", Description: "Stay active 7 days in a row", Icon: "🔥", Type: models.AchievementTypeWeekly, StreakDaysThreshold: intPtr(7)},
		{Code: "streak_30", Title: "Habit Hero", Description: "Stay active 30 days in a row", Icon: "🌋", Type: models.AchievementTypeMonthly, StreakDaysThreshold: intPtr(30)},
		{Code: "triple_play_day", Title: "Triple Play", Description: "Flashcards, a chore and outdoor time in one day", Icon: "🎯", Type: models.AchievementTypeDaily},
		{Code: "subject_scholar", Title: "Subject Scholar", Description: "Reach hard difficulty in any subject", Icon: "🦉", Type: models.AchievementTypeSpecial},
		{Code: "well_rounded", Title: "Well Rounded", Description: "10 correct answers in three different subjects", Icon: "🌈", Type: models.AchievementTypeSpecial},
	}
	if _, err := db.bunDB.NewInsert().
		Model(&definitions).
		On("CONFLICT (code) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed achievement catalog: %w", err)
	}
	return nil
}
