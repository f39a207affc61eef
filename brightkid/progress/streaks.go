package progress

import (
	"sort"
	"time"
)

// ComputeStreaks derives the daily activity streak summary from a set of
// active UTC days (already bounded to the lookback window by the query).
//
// Current streak: consecutive days ending at today, walking backward until
// the first gap. Today with no activity means a current streak of zero.
// Longest streak: the longest run of consecutive calendar days anywhere in
// the window. Duplicate days collapse; a single missing day breaks a run.
func ComputeStreaks(activeDays []time.Time, now time.Time) StreakStats {
	if len(activeDays) == 0 {
		return StreakStats{}
	}

	daySet := make(map[time.Time]struct{}, len(activeDays))
	for _, d := range activeDays {
		daySet[DayUTC(d)] = struct{}{}
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	stats := StreakStats{}
	last := days[len(days)-1]
	stats.LastActiveDate = &last

	for day := DayUTC(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := daySet[day]; !ok {
			break
		}
		stats.Current++
	}

	run := 1
	stats.Longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > stats.Longest {
			stats.Longest = run
		}
	}
	if stats.Current > stats.Longest {
		stats.Longest = stats.Current
	}

	return stats
}
