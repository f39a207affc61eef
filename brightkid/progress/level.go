package progress

import (
	"fmt"
	"math"
	"sort"
)

type levelEntry struct {
	name      string
	threshold int
}

func sortedLevels(thresholds map[string]int) []levelEntry {
	levels := make([]levelEntry, 0, len(thresholds))
	for name, th := range thresholds {
		levels = append(levels, levelEntry{name: name, threshold: th})
	}
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].threshold != levels[j].threshold {
			return levels[i].threshold < levels[j].threshold
		}
		return levels[i].name < levels[j].name
	})
	return levels
}

// minCorrect returns the bottleneck count: the lowest correct-count across
// all tracked subjects. A subject with no history counts as zero.
func minCorrect(subjectCorrect map[string]int, subjects []string) int {
	minimum := math.MaxInt
	for _, subject := range subjects {
		if c := subjectCorrect[subject]; c < minimum {
			minimum = c
		}
	}
	if minimum == math.MaxInt {
		return 0
	}
	return minimum
}

// requiredPerSubject splits a level threshold evenly across subjects,
// rounding up.
func requiredPerSubject(threshold, subjectCount int) int {
	return (threshold + subjectCount - 1) / subjectCount
}

// BalancedProgress gates leveling on the weakest subject: for each level the
// per-subject requirement is ceil(threshold / subject count), and the child
// holds the highest level whose requirement the bottleneck subject meets.
// Excelling in one subject never unlocks a level the weakest hasn't earned.
func BalancedProgress(subjectCorrect map[string]int, subjects []string, levelThresholds map[string]int) BalancedProgressResult {
	counts := make(map[string]int, len(subjects))
	for _, subject := range subjects {
		counts[subject] = subjectCorrect[subject]
	}

	if len(subjects) == 0 {
		return BalancedProgressResult{
			CurrentLevel:   DefaultLevelName,
			SubjectCorrect: counts,
			Message:        "Answer your first flashcards to start leveling up!",
		}
	}

	if len(levelThresholds) == 0 {
		levelThresholds = DefaultLevelThresholds()
	}

	levels := sortedLevels(levelThresholds)
	minimum := minCorrect(subjectCorrect, subjects)

	// Highest level (scanning from the top) whose per-subject requirement the
	// bottleneck meets. Levels with threshold zero always qualify.
	current := levelEntry{name: DefaultLevelName, threshold: 0}
	currentIdx := -1
	for i := len(levels) - 1; i >= 0; i-- {
		if minimum >= requiredPerSubject(levels[i].threshold, len(subjects)) {
			current = levels[i]
			currentIdx = i
			break
		}
	}

	res := BalancedProgressResult{
		CanLevelUp:        current.threshold > 0,
		CurrentLevel:      current.name,
		MinSubjectCorrect: minimum,
		SubjectCorrect:    counts,
	}

	if currentIdx >= 0 && currentIdx+1 < len(levels) {
		next := levels[currentIdx+1]
		res.NextLevel = next.name
		res.RequiredPerSubject = requiredPerSubject(next.threshold, len(subjects))
		res.Message = fmt.Sprintf("Get %d correct answers in every subject to become a %s!",
			res.RequiredPerSubject, next.name)
	} else {
		res.RequiredPerSubject = requiredPerSubject(current.threshold, len(subjects))
		res.Message = fmt.Sprintf("You reached the top level, %s!", current.name)
	}

	if res.CanLevelUp {
		res.Message = fmt.Sprintf("Balanced work across every subject earned you %s! %s",
			current.name, res.Message)
	}

	return res
}

// RewardForLevel computes percent progress toward the next level. Effective
// progress is the bottleneck count scaled by the subject count, matching the
// balanced-progress requirement. Missing display metadata falls back to safe
// values instead of erroring.
func RewardForLevel(currentLevel string, subjectCorrect map[string]int, subjects []string, levelThresholds map[string]int, levelMetadata map[string]LevelMeta) RewardResult {
	if len(levelThresholds) == 0 {
		levelThresholds = DefaultLevelThresholds()
	}

	res := RewardResult{
		Level: currentLevel,
		Icon:  fallbackLevelIcon,
		Color: fallbackLevelColor,
	}
	if meta, ok := levelMetadata[currentLevel]; ok {
		if meta.Icon != "" {
			res.Icon = meta.Icon
		}
		if meta.Color != "" {
			res.Color = meta.Color
		}
	}

	currentThreshold := levelThresholds[currentLevel]

	// Smallest threshold strictly above the current one.
	nextThreshold, hasNext := 0, false
	for _, level := range sortedLevels(levelThresholds) {
		if level.threshold > currentThreshold {
			nextThreshold, hasNext = level.threshold, true
			break
		}
	}
	if !hasNext {
		res.ProgressPct = 100
		return res
	}

	effective := minCorrect(subjectCorrect, subjects) * len(subjects)
	pct := int(math.Round(100 * float64(effective-currentThreshold) / float64(nextThreshold-currentThreshold)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	res.ProgressPct = pct
	return res
}
