package services

import (
	"context"
	"strings"
	"sync"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/sahilm/fuzzy"
)

// achievementSearchItems implements fuzzy.Source over the catalog.
type achievementSearchItems []*models.AchievementDefinition

func (items achievementSearchItems) String(i int) string {
	return strings.ToLower(items[i].Title + " " + items[i].Description)
}

func (items achievementSearchItems) Len() int { return len(items) }

// CatalogService serves the achievement catalog with fuzzy search over
// titles and descriptions. The catalog is seeded at startup and static
// afterwards, so it is loaded once and kept in memory.
type CatalogService struct {
	achievements repositories.AchievementRepository

	loadOnce sync.Once
	loadErr  error
	items    achievementSearchItems
}

func NewCatalogService(achievements repositories.AchievementRepository) *CatalogService {
	return &CatalogService{achievements: achievements}
}

func (s *CatalogService) load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		definitions, err := s.achievements.Definitions(ctx)
		if err != nil {
			s.loadErr = err
			return
		}
		s.items = achievementSearchItems(definitions)
	})
	return s.loadErr
}

// All returns the full catalog in seed order.
func (s *CatalogService) All(ctx context.Context) ([]*models.AchievementDefinition, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.items, nil
}

// Search fuzzy-matches the query against achievement titles and
// descriptions, best matches first. An empty query returns the whole
// catalog.
func (s *CatalogService) Search(ctx context.Context, query string) ([]*models.AchievementDefinition, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.items, nil
	}

	matches := fuzzy.FindFrom(query, s.items)
	results := make([]*models.AchievementDefinition, len(matches))
	for i, match := range matches {
		results[i] = s.items[match.Index]
	}
	return results, nil
}
