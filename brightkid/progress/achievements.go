package progress

// Achievement codes. These must match the seeded catalog rows; the evaluator
// only deals in codes and leaves display metadata to the catalog.
const (
	AchFirstSteps      = "first_steps"
	AchFlashcardFan    = "flashcard_fan_50"
	AchFlashcardMaster = "flashcard_master_200"
	AchChoreChampion   = "chore_champion_25"
	AchOutdoorExplorer = "outdoor_explorer_10"
	AchPointCollector  = "point_collector_100"
	AchPointHoarder    = "point_hoarder_1000"
	AchStreakSpark     = "streak_3"
	AchStreakWeek      = "streak_7"
	AchStreakMonth     = "streak_30"
	AchTriplePlayDay   = "triple_play_day"
	AchSubjectScholar  = "subject_scholar"
	AchWellRounded     = "well_rounded"
)

type achievementCondition struct {
	code string
	met  func(Snapshot) bool
}

// Conditions are independent of each other; order only fixes the output
// order. Every predicate must be total: any snapshot yields true or false,
// never a panic, because this runs on every event write.
var achievementConditions = []achievementCondition{
	{AchFirstSteps, func(s Snapshot) bool { return s.TotalFlashcards >= 1 }},
	{AchFlashcardFan, func(s Snapshot) bool { return s.TotalFlashcards >= 50 }},
	{AchFlashcardMaster, func(s Snapshot) bool { return s.TotalFlashcards >= 200 }},
	{AchChoreChampion, func(s Snapshot) bool { return s.TotalChores >= 25 }},
	{AchOutdoorExplorer, func(s Snapshot) bool { return s.TotalOutdoor >= 10 }},
	{AchPointCollector, func(s Snapshot) bool { return s.TotalPoints >= 100 }},
	{AchPointHoarder, func(s Snapshot) bool { return s.TotalPoints >= 1000 }},
	{AchStreakSpark, func(s Snapshot) bool { return s.CurrentStreak >= 3 }},
	{AchStreakWeek, func(s Snapshot) bool { return s.CurrentStreak >= 7 }},
	{AchStreakMonth, func(s Snapshot) bool { return s.CurrentStreak >= 30 }},
	{AchTriplePlayDay, func(s Snapshot) bool {
		return s.TodayHasFlashcards && s.TodayHasChores && s.TodayHasOutdoor
	}},
	{AchSubjectScholar, func(s Snapshot) bool {
		for _, code := range s.SubjectDifficulty {
			if code == DifficultyHard {
				return true
			}
		}
		return false
	}},
	{AchWellRounded, func(s Snapshot) bool {
		if len(s.SubjectCorrect) < 3 {
			return false
		}
		for _, correct := range s.SubjectCorrect {
			if correct < 10 {
				return false
			}
		}
		return true
	}},
}

// EvaluateAchievementConditions returns every achievement code whose
// condition the snapshot currently satisfies — not only newly-true ones.
// Diffing against already-unlocked codes is the caller's job.
func EvaluateAchievementConditions(s Snapshot) []string {
	codes := make([]string, 0, 4)
	for _, cond := range achievementConditions {
		if cond.met(s) {
			codes = append(codes, cond.code)
		}
	}
	return codes
}
