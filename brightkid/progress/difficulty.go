package progress

// NormalizeDifficultyThresholds fills in the documented defaults when the
// configured map is empty or missing a tier. Thresholds are absolute
// correct-streak counts.
func NormalizeDifficultyThresholds(configured map[string]int) map[string]int {
	out := DefaultDifficultyThresholds()
	for code, threshold := range configured {
		switch code {
		case DifficultyEasy, DifficultyMedium, DifficultyHard:
			out[code] = threshold
		}
	}
	return out
}

// CalculateDifficulty returns the tier earned by a correct-streak count:
// hard if correct >= hard threshold, else medium if correct >= medium
// threshold, else easy.
func CalculateDifficulty(correct int, thresholds map[string]int) string {
	t := NormalizeDifficultyThresholds(thresholds)
	if correct >= t[DifficultyHard] {
		return DifficultyHard
	}
	if correct >= t[DifficultyMedium] {
		return DifficultyMedium
	}
	return DifficultyEasy
}

// TierProgress reports the child's current tier for a subject and the
// absolute streak required to reach the next one. At the top tier Next is
// empty and RequiredForNext repeats the current threshold.
func TierProgress(thresholds map[string]int, current string) TierProgressResult {
	t := NormalizeDifficultyThresholds(thresholds)

	idx := 0
	for i, code := range tierOrder {
		if code == current {
			idx = i
			break
		}
	}
	current = tierOrder[idx] // unknown codes fall back to easy

	res := TierProgressResult{
		Current:          current,
		CurrentThreshold: t[current],
	}
	if idx+1 < len(tierOrder) {
		res.Next = tierOrder[idx+1]
		res.RequiredForNext = t[res.Next]
	} else {
		res.RequiredForNext = t[current]
	}
	return res
}
