package services

import (
	"context"
	"testing"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/brightkid/brightkid/brightkid/progress"
	"github.com/brightkid/brightkid/brightkid/services/mock"
	"go.uber.org/mock/gomock"
)

func TestDashboardAssemble(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	childID := int64(3)

	events := mock.NewMockEventRepository(ctrl)
	streaks := mock.NewMockStreakRepository(ctrl)
	difficulties := mock.NewMockDifficultyRepository(ctrl)
	achievements := mock.NewMockAchievementRepository(ctrl)
	thresholds := mock.NewMockThresholdRepository(ctrl)

	events.EXPECT().Totals(gomock.Any(), gomock.Any(), childID).
		Return(&repositories.Totals{TotalPoints: 250, Flashcards: 40, Chores: 5}, nil)
	events.EXPECT().TodayStats(gomock.Any(), gomock.Any(), childID, now).
		Return(&repositories.TodayStats{Points: 25, Flashcards: 2, FlashcardsCorrect: 2, Chores: 1}, nil)
	events.EXPECT().WeekStats(gomock.Any(), gomock.Any(), childID, now).
		Return(&repositories.WeekStats{
			WeekStart:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			Points:      40,
			ActiveDays:  2,
			Flashcards:  10,
			AccuracyPct: 80,
		}, nil)
	events.EXPECT().ActiveDays(gomock.Any(), gomock.Any(), childID, now).
		Return([]time.Time{
			time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		}, nil)
	events.EXPECT().DistinctSubjects(gomock.Any(), gomock.Any(), childID).
		Return([]string{"math", "reading"}, nil)
	events.EXPECT().FlashcardCountsBySubject(gomock.Any(), gomock.Any(), childID, []string{"math", "reading"}).
		Return([]repositories.SubjectFlashcardCounts{
			{SubjectID: "math", Completed: 25, Correct: 20},
			{SubjectID: "reading", Completed: 15, Correct: 15},
		}, nil)
	streaks.EXPECT().GetAll(gomock.Any(), gomock.Any(), childID).
		Return([]*models.ChildSubjectStreak{
			{SubjectID: "math", CurrentStreak: 21, LongestStreak: 21},
		}, nil)
	difficulties.EXPECT().GetAll(gomock.Any(), gomock.Any(), childID).
		Return([]*models.ChildSubjectDifficulty{
			{SubjectID: "math", DifficultyCode: progress.DifficultyMedium},
		}, nil)
	achievements.EXPECT().Definitions(gomock.Any()).
		Return([]*models.AchievementDefinition{
			{Code: progress.AchFirstSteps, Title: "First Steps", Type: models.AchievementTypeSpecial},
			{Code: progress.AchStreakMonth, Title: "Monthly Marvel", Type: models.AchievementTypeMonthly},
		}, nil)
	achievements.EXPECT().Unlocked(gomock.Any(), gomock.Any(), childID).
		Return([]*models.ChildAchievement{
			{AchievementCode: progress.AchFirstSteps, UnlockedAt: now.AddDate(0, 0, -3)},
		}, nil)
	thresholds.EXPECT().DifficultyThresholds(gomock.Any()).Return(nil, nil)
	thresholds.EXPECT().Levels(gomock.Any()).
		Return([]*models.LevelThreshold{
			{LevelName: "New Kid", Threshold: 0, Icon: "🌱", Color: "#8BC34A"},
			{LevelName: "Good Kid", Threshold: 30, Icon: "🌟", Color: "#03A9F4"},
		}, nil)

	s := NewDashboardService(nil, events, streaks, difficulties, achievements, thresholds)
	s.now = func() time.Time { return now }

	dashboard, err := s.Assemble(context.Background(), childID)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if dashboard.TotalPoints != 250 {
		t.Errorf("TotalPoints = %d, want 250", dashboard.TotalPoints)
	}
	if dashboard.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", dashboard.CurrentStreak)
	}
	if !dashboard.Today.HasFlashcards || !dashboard.Today.HasChores || dashboard.Today.HasOutdoor {
		t.Errorf("today flags = %+v", dashboard.Today)
	}
	if len(dashboard.Subjects) != 2 {
		t.Fatalf("Subjects = %d entries, want 2", len(dashboard.Subjects))
	}
	math := dashboard.Subjects[0]
	if math.SubjectID != "math" || math.Difficulty != progress.DifficultyMedium {
		t.Errorf("math overview = %+v", math)
	}
	if math.NextDifficulty != progress.DifficultyHard || math.RequiredStreakNext != 40 {
		t.Errorf("math tier progress = next %q at %d", math.NextDifficulty, math.RequiredStreakNext)
	}
	reading := dashboard.Subjects[1]
	if reading.Difficulty != progress.DifficultyEasy || reading.CurrentStreak != 0 {
		t.Errorf("reading overview = %+v", reading)
	}

	// Bottleneck: min(20, 15) = 15, Good Kid needs ceil(30/2) = 15 per subject.
	if dashboard.BalancedProgress.CurrentLevel != "Good Kid" {
		t.Errorf("CurrentLevel = %q, want Good Kid", dashboard.BalancedProgress.CurrentLevel)
	}
	if !dashboard.BalancedProgress.CanLevelUp {
		t.Error("CanLevelUp = false, want true")
	}
	if dashboard.Reward.ProgressPct != 100 {
		t.Errorf("Reward.ProgressPct = %d, want 100 at top level", dashboard.Reward.ProgressPct)
	}

	if len(dashboard.UnlockedAchievements) != 1 || dashboard.UnlockedAchievements[0].Code != progress.AchFirstSteps {
		t.Errorf("UnlockedAchievements = %+v", dashboard.UnlockedAchievements)
	}
	if len(dashboard.LockedAchievements) != 1 || dashboard.LockedAchievements[0].Code != progress.AchStreakMonth {
		t.Errorf("LockedAchievements = %+v", dashboard.LockedAchievements)
	}
}

func TestDashboardLevelConfigCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	thresholds := mock.NewMockThresholdRepository(ctrl)

	// One fetch serves both loads inside the TTL.
	thresholds.EXPECT().DifficultyThresholds(gomock.Any()).Return(nil, nil).Times(1)
	thresholds.EXPECT().Levels(gomock.Any()).Return(nil, nil).Times(1)

	s := NewDashboardService(nil, nil, nil, nil, nil, thresholds)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	first, err := s.loadLevelConfig(context.Background())
	if err != nil {
		t.Fatalf("loadLevelConfig() error = %v", err)
	}
	if first.levels["Good Kid"] != 30 {
		t.Errorf("empty rows should fall back to defaults, got %v", first.levels)
	}

	now = now.Add(10 * time.Second)
	if _, err := s.loadLevelConfig(context.Background()); err != nil {
		t.Fatalf("cached loadLevelConfig() error = %v", err)
	}

	// Past the TTL the next load hits the repository again.
	thresholds.EXPECT().DifficultyThresholds(gomock.Any()).Return(nil, nil).Times(1)
	thresholds.EXPECT().Levels(gomock.Any()).Return(nil, nil).Times(1)
	now = now.Add(time.Minute)
	if _, err := s.loadLevelConfig(context.Background()); err != nil {
		t.Fatalf("expired loadLevelConfig() error = %v", err)
	}
}
