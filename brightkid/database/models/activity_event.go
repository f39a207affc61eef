package models

import (
	"time"
	"unicode/utf8"

	"github.com/uptrace/bun"
)

// Event kinds are stored as plain strings so the rows stay readable from SQL,
// but the rest of the codebase only ever passes the constants below.
const (
	EventKindFlashcard   = "flashcard"
	EventKindChore       = "chore"
	EventKindOutdoor     = "outdoor"
	EventKindAffirmation = "affirmation"
)

// maxAnswerLen caps the free-text answer stored with flashcard events.
const maxAnswerLen = 500

// ActivityEvent is an immutable activity fact. Rows are append-only: nothing
// in the codebase updates or deletes them after insert.
type ActivityEvent struct {
	bun.BaseModel `bun:"table:activity_events,alias:ae"`

	ID      int64  `bun:"id,pk,autoincrement"`
	ChildID int64  `bun:"child_id,notnull"`
	Kind    string `bun:"kind,notnull"`
	Points  int    `bun:"points,notnull,default:0"`

	// Kind-specific fields. All nullable: a malformed payload still produces
	// an event with whatever parsed successfully.
	SubjectID         *string `bun:"subject_id"`
	FlashcardID       *int64  `bun:"flashcard_id"`
	IsCorrect         *bool   `bun:"is_correct"`
	Answer            *string `bun:"answer"`
	ChoreID           *int64  `bun:"chore_id"`
	OutdoorActivityID *int64  `bun:"outdoor_activity_id"`
	AffirmationID     *int64  `bun:"affirmation_id"`

	// Plain TIMESTAMP, not TIMESTAMPTZ: values are always written as UTC wall
	// clock, and date(timestamp) is immutable so the daily-dedupe unique index
	// can use it. date(timestamptz) reads the session TimeZone and would be
	// rejected in an index expression.
	CreatedAt time.Time `bun:"created_at,notnull,type:timestamp"`
}

// ValidEventKind reports whether kind is one of the known event kinds.
func ValidEventKind(kind string) bool {
	switch kind {
	case EventKindFlashcard, EventKindChore, EventKindOutdoor, EventKindAffirmation:
		return true
	}
	return false
}

// KindDedupesDaily reports whether at most one event of this kind may exist
// per child per UTC calendar day. Flashcard answers are unlimited; everything
// else is a once-a-day tap.
func KindDedupesDaily(kind string) bool {
	switch kind {
	case EventKindChore, EventKindOutdoor, EventKindAffirmation:
		return true
	}
	return false
}

// NewActivityEvent builds an event from a loosely-typed metadata payload.
// Missing or mistyped fields are left null rather than rejected.
func NewActivityEvent(childID int64, kind string, meta map[string]any, points int, now time.Time) *ActivityEvent {
	ev := &ActivityEvent{
		ChildID:   childID,
		Kind:      kind,
		Points:    points,
		CreatedAt: now.UTC(),
	}

	switch kind {
	case EventKindFlashcard:
		ev.SubjectID = metaString(meta, "subjectId")
		ev.FlashcardID = metaInt64(meta, "flashcardId")
		ev.IsCorrect = metaBool(meta, "correct")
		if answer := metaString(meta, "answer"); answer != nil {
			truncated := truncateAnswer(*answer)
			ev.Answer = &truncated
		}
	case EventKindChore:
		ev.ChoreID = metaInt64(meta, "choreId")
	case EventKindOutdoor:
		ev.OutdoorActivityID = metaInt64(meta, "outdoorActivityId")
	case EventKindAffirmation:
		ev.AffirmationID = metaInt64(meta, "affirmationId")
	}

	return ev
}

// truncateAnswer caps the answer at maxAnswerLen bytes without splitting a
// multi-byte rune; Postgres rejects invalid UTF-8 outright.
func truncateAnswer(answer string) string {
	if len(answer) <= maxAnswerLen {
		return answer
	}
	cut := maxAnswerLen
	for cut > 0 && !utf8.RuneStart(answer[cut]) {
		cut--
	}
	return answer[:cut]
}

func metaString(meta map[string]any, key string) *string {
	if v, ok := meta[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

func metaBool(meta map[string]any, key string) *bool {
	if v, ok := meta[key].(bool); ok {
		return &v
	}
	return nil
}

func metaInt64(meta map[string]any, key string) *int64 {
	switch v := meta[key].(type) {
	case int64:
		return &v
	case int:
		n := int64(v)
		return &n
	case float64:
		// JSON numbers decode as float64.
		n := int64(v)
		return &n
	}
	return nil
}
