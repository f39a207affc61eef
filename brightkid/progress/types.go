package progress

import "time"

// LevelMeta is the display metadata attached to a level name.
type LevelMeta struct {
	Icon  string
	Color string
}

// TierProgressResult describes where a child sits on the difficulty ladder
// for one subject. RequiredForNext is an absolute streak count, not a delta.
type TierProgressResult struct {
	Current          string
	Next             string // empty when already at the top tier
	CurrentThreshold int
	RequiredForNext  int
}

// BalancedProgressResult is the outcome of the bottleneck level computation.
// Serialized as-is in the dashboard payload.
type BalancedProgressResult struct {
	CanLevelUp         bool           `json:"canLevelUp"`
	CurrentLevel       string         `json:"currentLevel"`
	NextLevel          string         `json:"nextLevel,omitempty"` // empty at the top level
	RequiredPerSubject int            `json:"requiredPerSubject"`
	MinSubjectCorrect  int            `json:"minSubjectCorrect"`
	SubjectCorrect     map[string]int `json:"subjectCorrect"`
	Message            string         `json:"message"`
}

// RewardResult is the display block for the child's current level.
type RewardResult struct {
	Level       string `json:"level"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	ProgressPct int    `json:"progressPct"`
}

// StreakStats is the cross-activity daily streak summary.
type StreakStats struct {
	Current        int
	Longest        int
	LastActiveDate *time.Time
}

// Snapshot is the aggregate state the achievement evaluator inspects. It is
// assembled fresh within the same transaction as the event write.
type Snapshot struct {
	TotalPoints     int
	CurrentStreak   int
	TotalFlashcards int
	TotalChores     int
	TotalOutdoor    int

	TodayHasFlashcards bool
	TodayHasChores     bool
	TodayHasOutdoor    bool

	SubjectDifficulty map[string]string
	SubjectCorrect    map[string]int
}
