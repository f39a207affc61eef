package migration

import (
	"testing"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
)

func TestConvertActivity(t *testing.T) {
	ts := time.Date(2024, 3, 10, 16, 0, 0, 0, time.UTC)
	cardID := int64(12)
	correct := true
	itemID := int64(4)

	tests := []struct {
		name     string
		in       MongoActivity
		wantKind string
		wantNil  bool
	}{
		{
			name: "flashcard answer",
			in: MongoActivity{
				ChildID: 1, Type: "flashcard_answer", Points: 10,
				Subject: "math", CardID: &cardID, Correct: &correct,
				Answer: " 4 ", Timestamp: ts,
			},
			wantKind: models.EventKindFlashcard,
		},
		{
			name:     "legacy chore alias",
			in:       MongoActivity{ChildID: 1, Type: "chore_done", Points: 15, ItemID: &itemID, Timestamp: ts},
			wantKind: models.EventKindChore,
		},
		{
			name:     "legacy outdoor alias",
			in:       MongoActivity{ChildID: 1, Type: "outside_play", Points: 20, ItemID: &itemID, Timestamp: ts},
			wantKind: models.EventKindOutdoor,
		},
		{
			name:     "type matching is case insensitive",
			in:       MongoActivity{ChildID: 1, Type: " Affirmation ", Points: 5, Timestamp: ts},
			wantKind: models.EventKindAffirmation,
		},
		{
			name:    "unknown type is dropped",
			in:      MongoActivity{ChildID: 1, Type: "screen_time", Timestamp: ts},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertActivity(tt.in)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("convertActivity() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("convertActivity() = nil")
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Points != tt.in.Points {
				t.Errorf("Points = %d, want %d", got.Points, tt.in.Points)
			}
			if !got.CreatedAt.Equal(ts) {
				t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, ts)
			}
		})
	}
}

func TestConvertActivityFlashcardFields(t *testing.T) {
	correct := false
	got := convertActivity(MongoActivity{
		ChildID: 2, Type: "flashcard", Subject: "reading",
		Correct: &correct, Answer: "cat", Timestamp: time.Now(),
	})
	if got.SubjectID == nil || *got.SubjectID != "reading" {
		t.Errorf("SubjectID = %v", got.SubjectID)
	}
	if got.IsCorrect == nil || *got.IsCorrect {
		t.Errorf("IsCorrect = %v", got.IsCorrect)
	}
	if got.Answer == nil || *got.Answer != "cat" {
		t.Errorf("Answer = %v", got.Answer)
	}
	if got.ChoreID != nil {
		t.Error("flashcard events must not carry a chore id")
	}
}
