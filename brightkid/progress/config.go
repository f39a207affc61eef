package progress

// Difficulty codes, ordered from easiest to hardest.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// tierOrder drives promotion: a child moves up one tier at a time.
var tierOrder = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Activity names used for points lookup.
const (
	PointsFlashcardCorrect   = "flashcard_correct"
	PointsFlashcardIncorrect = "flashcard_incorrect"
	PointsChoreCompleted     = "chore_completed"
	PointsOutdoorActivity    = "outdoor_activity"
	PointsAffirmationViewed  = "affirmation_viewed"
)

// DefaultLevelName is reported when no level configuration matches, and for
// children with no tracked subjects yet.
const DefaultLevelName = "New Kid"

const (
	fallbackLevelIcon  = "⭐"
	fallbackLevelColor = "#FFD700"
)

// StreakLookbackDays bounds the active-day scan for streak computation.
const StreakLookbackDays = 180

// DefaultDifficultyThresholds apply when no active threshold rows exist.
func DefaultDifficultyThresholds() map[string]int {
	return map[string]int{
		DifficultyEasy:   0,
		DifficultyMedium: 20,
		DifficultyHard:   40,
	}
}

// DefaultPointsValues apply when no active points rows exist.
func DefaultPointsValues() map[string]int {
	return map[string]int{
		PointsFlashcardCorrect:   10,
		PointsFlashcardIncorrect: 2,
		PointsChoreCompleted:     15,
		PointsOutdoorActivity:    20,
		PointsAffirmationViewed:  5,
	}
}

// DefaultLevelThresholds apply when no active level rows exist.
func DefaultLevelThresholds() map[string]int {
	return map[string]int{
		"New Kid":   0,
		"Good Kid":  30,
		"Great Kid": 75,
		"Super Kid": 150,
		"Star Kid":  300,
	}
}

// DefaultLevelMetadata provides display metadata for the default levels.
func DefaultLevelMetadata() map[string]LevelMeta {
	return map[string]LevelMeta{
		"New Kid":   {Icon: "🌱", Color: "#8BC34A"},
		"Good Kid":  {Icon: "🌟", Color: "#03A9F4"},
		"Great Kid": {Icon: "🚀", Color: "#9C27B0"},
		"Super Kid": {Icon: "🏆", Color: "#FF9800"},
		"Star Kid":  {Icon: "👑", Color: "#F44336"},
	}
}
