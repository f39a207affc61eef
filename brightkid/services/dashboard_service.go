package services

import (
	"context"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/database/repositories"
	"github.com/brightkid/brightkid/brightkid/progress"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"
)

const (
	configCacheSize = 8
	configCacheTTL  = 30 * time.Second
	configCacheKey  = "level_config"
)

// Dashboard is the single consistent read model handed back to callers.
type Dashboard struct {
	ChildID        int64      `json:"childId"`
	TotalPoints    int        `json:"totalPoints"`
	CurrentStreak  int        `json:"currentStreak"`
	LongestStreak  int        `json:"longestStreak"`
	LastActiveDate *time.Time `json:"lastActiveDate,omitempty"`

	Today  TodayOverview  `json:"today"`
	Week   WeekOverview   `json:"week"`
	Totals ActivityTotals `json:"totals"`

	Subjects []SubjectOverview `json:"subjects"`

	UnlockedAchievements []UnlockedAchievement           `json:"unlockedAchievements"`
	LockedAchievements   []LockedAchievement             `json:"lockedAchievements"`
	BalancedProgress     progress.BalancedProgressResult `json:"balancedProgress"`
	Reward               progress.RewardResult           `json:"reward"`

	GeneratedAt time.Time `json:"generatedAt"`
}

type TodayOverview struct {
	Points            int  `json:"points"`
	Flashcards        int  `json:"flashcards"`
	FlashcardsCorrect int  `json:"flashcardsCorrect"`
	Chores            int  `json:"chores"`
	Outdoor           int  `json:"outdoor"`
	Affirmations      int  `json:"affirmations"`
	HasFlashcards     bool `json:"hasFlashcards"`
	HasChores         bool `json:"hasChores"`
	HasOutdoor        bool `json:"hasOutdoor"`
}

type WeekOverview struct {
	WeekStart    time.Time `json:"weekStart"`
	Points       int       `json:"points"`
	ActiveDays   int       `json:"activeDays"`
	Flashcards   int       `json:"flashcards"`
	Chores       int       `json:"chores"`
	Outdoor      int       `json:"outdoor"`
	Affirmations int       `json:"affirmations"`
	AccuracyPct  int       `json:"accuracyPct"`
}

type ActivityTotals struct {
	Flashcards   int `json:"flashcards"`
	Chores       int `json:"chores"`
	Outdoor      int `json:"outdoor"`
	Affirmations int `json:"affirmations"`
}

type SubjectOverview struct {
	SubjectID          string `json:"subjectId"`
	Completed          int    `json:"completed"`
	Correct            int    `json:"correct"`
	CurrentStreak      int    `json:"currentStreak"`
	LongestStreak      int    `json:"longestStreak"`
	Difficulty         string `json:"difficulty"`
	NextDifficulty     string `json:"nextDifficulty,omitempty"`
	RequiredStreakNext int    `json:"requiredStreakForNext"`
}

type UnlockedAchievement struct {
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Type        string    `json:"type"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type LockedAchievement struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Type        string `json:"type"`
}

// levelConfig is the cached threshold snapshot. Cached briefly to keep hot
// dashboards cheap; the TTL keeps edits to the configuration tables visible
// within seconds.
type levelConfig struct {
	difficulty map[string]int
	levels     map[string]int
	meta       map[string]progress.LevelMeta
	fetchedAt  time.Time
}

// DashboardService assembles the full read model for one child. The
// independent aggregate queries fan out concurrently.
type DashboardService struct {
	db           *bun.DB
	events       repositories.EventRepository
	streaks      repositories.StreakRepository
	difficulties repositories.DifficultyRepository
	achievements repositories.AchievementRepository
	thresholds   repositories.ThresholdRepository
	configCache  *lru.Cache
	now          func() time.Time
}

func NewDashboardService(
	db *bun.DB,
	events repositories.EventRepository,
	streaks repositories.StreakRepository,
	difficulties repositories.DifficultyRepository,
	achievements repositories.AchievementRepository,
	thresholds repositories.ThresholdRepository,
) *DashboardService {
	cache, _ := lru.New(configCacheSize)
	return &DashboardService{
		db:           db,
		events:       events,
		streaks:      streaks,
		difficulties: difficulties,
		achievements: achievements,
		thresholds:   thresholds,
		configCache:  cache,
		now:          time.Now,
	}
}

func (s *DashboardService) Assemble(ctx context.Context, childID int64) (*Dashboard, error) {
	now := s.now().UTC()

	var (
		totals        *repositories.Totals
		today         *repositories.TodayStats
		week          *repositories.WeekStats
		activeDays    []time.Time
		subjects      []string
		subjectCounts []repositories.SubjectFlashcardCounts
		streaks       []*models.ChildSubjectStreak
		difficulties  []*models.ChildSubjectDifficulty
		definitions   []*models.AchievementDefinition
		unlocked      []*models.ChildAchievement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.events.Totals(gctx, s.db, childID)
		return err
	})
	g.Go(func() (err error) {
		today, err = s.events.TodayStats(gctx, s.db, childID, now)
		return err
	})
	g.Go(func() (err error) {
		week, err = s.events.WeekStats(gctx, s.db, childID, now)
		return err
	})
	g.Go(func() (err error) {
		activeDays, err = s.events.ActiveDays(gctx, s.db, childID, now)
		return err
	})
	g.Go(func() (err error) {
		subjects, err = s.events.DistinctSubjects(gctx, s.db, childID)
		if err != nil {
			return err
		}
		subjectCounts, err = s.events.FlashcardCountsBySubject(gctx, s.db, childID, subjects)
		return err
	})
	g.Go(func() (err error) {
		streaks, err = s.streaks.GetAll(gctx, s.db, childID)
		return err
	})
	g.Go(func() (err error) {
		difficulties, err = s.difficulties.GetAll(gctx, s.db, childID)
		return err
	})
	g.Go(func() (err error) {
		definitions, err = s.achievements.Definitions(gctx)
		return err
	})
	g.Go(func() (err error) {
		unlocked, err = s.achievements.Unlocked(gctx, s.db, childID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg, err := s.loadLevelConfig(ctx)
	if err != nil {
		return nil, err
	}

	streakStats := progress.ComputeStreaks(activeDays, now)
	correctBySubject := make(map[string]int, len(subjectCounts))
	for _, row := range subjectCounts {
		correctBySubject[row.SubjectID] = row.Correct
	}

	balanced := progress.BalancedProgress(correctBySubject, subjects, cfg.levels)
	reward := progress.RewardForLevel(balanced.CurrentLevel, correctBySubject, subjects, cfg.levels, cfg.meta)

	dashboard := &Dashboard{
		ChildID:        childID,
		TotalPoints:    totals.TotalPoints,
		CurrentStreak:  streakStats.Current,
		LongestStreak:  streakStats.Longest,
		LastActiveDate: streakStats.LastActiveDate,
		Today: TodayOverview{
			Points:            today.Points,
			Flashcards:        today.Flashcards,
			FlashcardsCorrect: today.FlashcardsCorrect,
			Chores:            today.Chores,
			Outdoor:           today.Outdoor,
			Affirmations:      today.Affirmations,
			HasFlashcards:     today.HasFlashcards(),
			HasChores:         today.HasChores(),
			HasOutdoor:        today.HasOutdoor(),
		},
		Week: WeekOverview{
			WeekStart:    week.WeekStart,
			Points:       week.Points,
			ActiveDays:   week.ActiveDays,
			Flashcards:   week.Flashcards,
			Chores:       week.Chores,
			Outdoor:      week.Outdoor,
			Affirmations: week.Affirmations,
			AccuracyPct:  week.AccuracyPct,
		},
		Totals: ActivityTotals{
			Flashcards:   totals.Flashcards,
			Chores:       totals.Chores,
			Outdoor:      totals.Outdoor,
			Affirmations: totals.Affirmations,
		},
		Subjects:         s.subjectOverviews(subjectCounts, streaks, difficulties, cfg.difficulty),
		BalancedProgress: balanced,
		Reward:           reward,
		GeneratedAt:      now,
	}
	dashboard.UnlockedAchievements, dashboard.LockedAchievements = splitAchievements(definitions, unlocked)

	return dashboard, nil
}

func (s *DashboardService) subjectOverviews(
	counts []repositories.SubjectFlashcardCounts,
	streaks []*models.ChildSubjectStreak,
	difficulties []*models.ChildSubjectDifficulty,
	diffThresholds map[string]int,
) []SubjectOverview {
	streakBySubject := make(map[string]*models.ChildSubjectStreak, len(streaks))
	for _, row := range streaks {
		streakBySubject[row.SubjectID] = row
	}
	difficultyBySubject := make(map[string]string, len(difficulties))
	for _, row := range difficulties {
		difficultyBySubject[row.SubjectID] = row.DifficultyCode
	}

	overviews := make([]SubjectOverview, 0, len(counts))
	for _, row := range counts {
		overview := SubjectOverview{
			SubjectID:  row.SubjectID,
			Completed:  row.Completed,
			Correct:    row.Correct,
			Difficulty: progress.DifficultyEasy,
		}
		if streak, ok := streakBySubject[row.SubjectID]; ok {
			overview.CurrentStreak = streak.CurrentStreak
			overview.LongestStreak = streak.LongestStreak
		}
		if code, ok := difficultyBySubject[row.SubjectID]; ok {
			overview.Difficulty = code
		}

		tier := progress.TierProgress(diffThresholds, overview.Difficulty)
		overview.NextDifficulty = tier.Next
		overview.RequiredStreakNext = tier.RequiredForNext

		overviews = append(overviews, overview)
	}
	return overviews
}

func splitAchievements(definitions []*models.AchievementDefinition, unlocked []*models.ChildAchievement) ([]UnlockedAchievement, []LockedAchievement) {
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, row := range unlocked {
		unlockedAt[row.AchievementCode] = row.UnlockedAt
	}

	done := make([]UnlockedAchievement, 0, len(unlocked))
	locked := make([]LockedAchievement, 0, len(definitions))
	for _, def := range definitions {
		if at, ok := unlockedAt[def.Code]; ok {
			done = append(done, UnlockedAchievement{
				Code:        def.Code,
				Title:       def.Title,
				Description: def.Description,
				Icon:        def.Icon,
				Type:        def.Type,
				UnlockedAt:  at,
			})
		} else {
			locked = append(locked, LockedAchievement{
				Code:        def.Code,
				Title:       def.Title,
				Description: def.Description,
				Icon:        def.Icon,
				Type:        def.Type,
			})
		}
	}
	return done, locked
}

// loadLevelConfig reads the active threshold rows, with a short-lived cache
// in front and hardcoded defaults behind.
func (s *DashboardService) loadLevelConfig(ctx context.Context) (*levelConfig, error) {
	if cached, ok := s.configCache.Get(configCacheKey); ok {
		cfg := cached.(*levelConfig)
		if s.now().Sub(cfg.fetchedAt) < configCacheTTL {
			return cfg, nil
		}
	}

	difficulty, err := s.thresholds.DifficultyThresholds(ctx)
	if err != nil {
		return nil, err
	}

	levelRows, err := s.thresholds.Levels(ctx)
	if err != nil {
		return nil, err
	}
	levels := make(map[string]int, len(levelRows))
	meta := make(map[string]progress.LevelMeta, len(levelRows))
	for _, row := range levelRows {
		levels[row.LevelName] = row.Threshold
		meta[row.LevelName] = progress.LevelMeta{Icon: row.Icon, Color: row.Color}
	}
	if len(levels) == 0 {
		levels = progress.DefaultLevelThresholds()
		meta = progress.DefaultLevelMetadata()
	}

	cfg := &levelConfig{
		difficulty: difficulty,
		levels:     levels,
		meta:       meta,
		fetchedAt:  s.now(),
	}
	s.configCache.Add(configCacheKey, cfg)
	return cfg, nil
}
