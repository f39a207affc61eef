package services

import (
	"context"
	"testing"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/services/mock"
	"go.uber.org/mock/gomock"
)

func catalogFixture() []*models.AchievementDefinition {
	return []*models.AchievementDefinition{
		{Code: "first_steps", Title: "First Steps", Description: "Answer your first flashcard"},
		{Code: "chore_champion_25", Title: "Chore Champion", Description: "Complete 25 chores"},
		{Code: "outdoor_explorer_10", Title: "Outdoor Explorer", Description: "Play outside 10 times"},
	}
}

func TestCatalogSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	achievements := mock.NewMockAchievementRepository(ctrl)
	// The catalog loads once regardless of how many searches run.
	achievements.EXPECT().Definitions(gomock.Any()).Return(catalogFixture(), nil).Times(1)

	s := NewCatalogService(achievements)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantCount int
	}{
		{"empty query returns everything", "", "first_steps", 3},
		{"exact word", "chore", "chore_champion_25", 1},
		{"case insensitive", "OUTDOOR", "outdoor_explorer_10", 1},
		{"no match", "zzzz", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("Search(%q) error = %v", tt.query, err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("Search(%q) returned %d results, want %d", tt.query, len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].Code != tt.wantFirst {
				t.Errorf("Search(%q) first = %q, want %q", tt.query, got[0].Code, tt.wantFirst)
			}
		})
	}
}

func TestCatalogAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	achievements := mock.NewMockAchievementRepository(ctrl)
	achievements.EXPECT().Definitions(gomock.Any()).Return(catalogFixture(), nil).Times(1)

	s := NewCatalogService(achievements)
	all, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("All() = %d definitions, want 3", len(all))
	}
}
