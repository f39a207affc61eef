package progress

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStreaks(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		activeDays  []time.Time
		wantCurrent int
		wantLongest int
		wantLast    *time.Time
	}{
		{
			name: "no activity",
		},
		{
			name:        "active today only",
			activeDays:  []time.Time{day(2026, 8, 31)},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "gap before an older run keeps the longest",
			activeDays:  []time.Time{day(2026, 8, 24), day(2026, 8, 25), day(2026, 8, 26), day(2026, 8, 31)},
			wantCurrent: 1,
			wantLongest: 3,
		},
		{
			name:        "run ending yesterday does not count as current",
			activeDays:  []time.Time{day(2026, 8, 28), day(2026, 8, 29), day(2026, 8, 30)},
			wantCurrent: 0,
			wantLongest: 3,
		},
		{
			name: "current run through today",
			activeDays: []time.Time{
				day(2026, 8, 29), day(2026, 8, 30), day(2026, 8, 31),
			},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name: "duplicate timestamps collapse to one day",
			activeDays: []time.Time{
				time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC),
				time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC),
				day(2026, 8, 30),
			},
			wantCurrent: 2,
			wantLongest: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreaks(tt.activeDays, now)
			if got.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", got.Current, tt.wantCurrent)
			}
			if got.Longest != tt.wantLongest {
				t.Errorf("Longest = %d, want %d", got.Longest, tt.wantLongest)
			}
			if got.Longest < got.Current {
				t.Errorf("Longest %d < Current %d", got.Longest, got.Current)
			}
			if len(tt.activeDays) == 0 && got.LastActiveDate != nil {
				t.Errorf("LastActiveDate = %v, want nil", got.LastActiveDate)
			}
		})
	}
}

func TestComputeStreaksLastActiveDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)
	got := ComputeStreaks([]time.Time{day(2026, 8, 20), day(2026, 8, 25)}, now)
	if got.LastActiveDate == nil {
		t.Fatal("LastActiveDate is nil")
	}
	if want := day(2026, 8, 25); !got.LastActiveDate.Equal(want) {
		t.Errorf("LastActiveDate = %v, want %v", got.LastActiveDate, want)
	}
}
