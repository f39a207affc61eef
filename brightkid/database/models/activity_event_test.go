package models

import (
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNewActivityEventFlashcard(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.FixedZone("UTC+2", 2*3600))
	ev := NewActivityEvent(5, EventKindFlashcard, map[string]any{
		"subjectId":   "math",
		"flashcardId": float64(17), // decoded JSON numbers arrive as float64
		"correct":     true,
		"answer":      "4",
	}, 10, now)

	if ev.ChildID != 5 || ev.Kind != EventKindFlashcard || ev.Points != 10 {
		t.Errorf("event = %+v", ev)
	}
	if ev.SubjectID == nil || *ev.SubjectID != "math" {
		t.Errorf("SubjectID = %v", ev.SubjectID)
	}
	if ev.FlashcardID == nil || *ev.FlashcardID != 17 {
		t.Errorf("FlashcardID = %v", ev.FlashcardID)
	}
	if ev.IsCorrect == nil || !*ev.IsCorrect {
		t.Errorf("IsCorrect = %v", ev.IsCorrect)
	}
	if ev.Answer == nil || *ev.Answer != "4" {
		t.Errorf("Answer = %v", ev.Answer)
	}
	if ev.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", ev.CreatedAt.Location())
	}
	if !ev.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want instant of %v", ev.CreatedAt, now)
	}
}

func TestNewActivityEventToleratesBadPayload(t *testing.T) {
	ev := NewActivityEvent(5, EventKindFlashcard, map[string]any{
		"subjectId": 42,     // wrong type
		"correct":   "yes",  // wrong type
		"answer":    "",     // empty
	}, 0, time.Now())

	if ev.SubjectID != nil || ev.IsCorrect != nil || ev.Answer != nil {
		t.Errorf("mistyped fields should stay nil: %+v", ev)
	}
}

func TestNewActivityEventTruncatesAnswer(t *testing.T) {
	long := strings.Repeat("a", 600)
	ev := NewActivityEvent(5, EventKindFlashcard, map[string]any{"answer": long}, 0, time.Now())
	if ev.Answer == nil || len(*ev.Answer) != maxAnswerLen {
		t.Errorf("Answer length = %d, want %d", len(*ev.Answer), maxAnswerLen)
	}
}

func TestNewActivityEventTruncatesAnswerOnRuneBoundary(t *testing.T) {
	// 499 ASCII bytes followed by a two-byte rune straddling the cap.
	long := strings.Repeat("a", maxAnswerLen-1) + "é" + strings.Repeat("b", 50)
	ev := NewActivityEvent(5, EventKindFlashcard, map[string]any{"answer": long}, 0, time.Now())
	if ev.Answer == nil {
		t.Fatal("Answer = nil")
	}
	if !utf8.ValidString(*ev.Answer) {
		t.Errorf("truncated answer is invalid UTF-8 (len=%d)", len(*ev.Answer))
	}
	if len(*ev.Answer) != maxAnswerLen-1 {
		t.Errorf("Answer length = %d, want %d", len(*ev.Answer), maxAnswerLen-1)
	}
}

// The dedupe index and the day-bucketing queries apply date() to created_at,
// which Postgres only treats as immutable for a plain TIMESTAMP column.
// TIMESTAMPTZ (pgdialect's default for time.Time) would make index creation
// fail and bucket days by session time zone.
func TestActivityEventCreatedAtColumnIsPlainTimestamp(t *testing.T) {
	field, ok := reflect.TypeOf(ActivityEvent{}).FieldByName("CreatedAt")
	if !ok {
		t.Fatal("CreatedAt field not found")
	}
	for _, part := range strings.Split(field.Tag.Get("bun"), ",") {
		if part == "type:timestamp" {
			return
		}
	}
	t.Errorf("CreatedAt bun tag = %q, want a type:timestamp override", field.Tag.Get("bun"))
}

func TestNewActivityEventKindFields(t *testing.T) {
	now := time.Now()

	chore := NewActivityEvent(1, EventKindChore, map[string]any{"choreId": 3}, 15, now)
	if chore.ChoreID == nil || *chore.ChoreID != 3 {
		t.Errorf("ChoreID = %v", chore.ChoreID)
	}
	if chore.SubjectID != nil {
		t.Error("chore events must not carry flashcard fields")
	}

	outdoor := NewActivityEvent(1, EventKindOutdoor, map[string]any{"outdoorActivityId": int64(8)}, 20, now)
	if outdoor.OutdoorActivityID == nil || *outdoor.OutdoorActivityID != 8 {
		t.Errorf("OutdoorActivityID = %v", outdoor.OutdoorActivityID)
	}

	affirmation := NewActivityEvent(1, EventKindAffirmation, nil, 5, now)
	if affirmation.AffirmationID != nil {
		t.Errorf("AffirmationID = %v, want nil for missing meta", affirmation.AffirmationID)
	}
}

func TestValidEventKind(t *testing.T) {
	for _, kind := range []string{EventKindFlashcard, EventKindChore, EventKindOutdoor, EventKindAffirmation} {
		if !ValidEventKind(kind) {
			t.Errorf("ValidEventKind(%q) = false", kind)
		}
	}
	for _, kind := range []string{"", "nap", "FLASHCARD"} {
		if ValidEventKind(kind) {
			t.Errorf("ValidEventKind(%q) = true", kind)
		}
	}
}

func TestKindDedupesDaily(t *testing.T) {
	if KindDedupesDaily(EventKindFlashcard) {
		t.Error("flashcards must not dedupe")
	}
	for _, kind := range []string{EventKindChore, EventKindOutdoor, EventKindAffirmation} {
		if !KindDedupesDaily(kind) {
			t.Errorf("KindDedupesDaily(%q) = false", kind)
		}
	}
}
