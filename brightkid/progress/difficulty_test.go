package progress

import (
	"reflect"
	"testing"
)

func TestCalculateDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		correct    int
		thresholds map[string]int
		want       string
	}{
		{
			name:    "zero streak is easy",
			correct: 0,
			want:    DifficultyEasy,
		},
		{
			name:    "just below medium stays easy",
			correct: 19,
			want:    DifficultyEasy,
		},
		{
			name:    "medium threshold exactly",
			correct: 20,
			want:    DifficultyMedium,
		},
		{
			name:    "hard threshold exactly",
			correct: 40,
			want:    DifficultyHard,
		},
		{
			name:    "far past hard stays hard",
			correct: 999,
			want:    DifficultyHard,
		},
		{
			name:       "configured thresholds override defaults",
			correct:    5,
			thresholds: map[string]int{DifficultyMedium: 5, DifficultyHard: 10},
			want:       DifficultyMedium,
		},
		{
			name:       "partial config falls back to defaults for missing tiers",
			correct:    40,
			thresholds: map[string]int{DifficultyMedium: 5},
			want:       DifficultyHard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateDifficulty(tt.correct, tt.thresholds); got != tt.want {
				t.Errorf("CalculateDifficulty(%d) = %q, want %q", tt.correct, got, tt.want)
			}
		})
	}
}

func TestNormalizeDifficultyThresholds(t *testing.T) {
	got := NormalizeDifficultyThresholds(map[string]int{
		DifficultyHard: 100,
		"bogus":        7,
	})
	want := map[string]int{
		DifficultyEasy:   0,
		DifficultyMedium: 20,
		DifficultyHard:   100,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeDifficultyThresholds() = %v, want %v", got, want)
	}
}

func TestTierProgress(t *testing.T) {
	tests := []struct {
		name    string
		current string
		want    TierProgressResult
	}{
		{
			name:    "easy points at medium",
			current: DifficultyEasy,
			want: TierProgressResult{
				Current:          DifficultyEasy,
				Next:             DifficultyMedium,
				CurrentThreshold: 0,
				RequiredForNext:  20,
			},
		},
		{
			name:    "medium points at hard",
			current: DifficultyMedium,
			want: TierProgressResult{
				Current:          DifficultyMedium,
				Next:             DifficultyHard,
				CurrentThreshold: 20,
				RequiredForNext:  40,
			},
		},
		{
			name:    "hard is the top tier",
			current: DifficultyHard,
			want: TierProgressResult{
				Current:          DifficultyHard,
				Next:             "",
				CurrentThreshold: 40,
				RequiredForNext:  40,
			},
		},
		{
			name:    "unknown code falls back to easy",
			current: "expert",
			want: TierProgressResult{
				Current:          DifficultyEasy,
				Next:             DifficultyMedium,
				CurrentThreshold: 0,
				RequiredForNext:  20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierProgress(nil, tt.current); got != tt.want {
				t.Errorf("TierProgress(nil, %q) = %+v, want %+v", tt.current, got, tt.want)
			}
		})
	}
}
