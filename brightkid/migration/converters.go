package migration

import (
	"strings"
	"time"

	"github.com/brightkid/brightkid/brightkid/database/models"
)

// legacyTypeToKind maps the old tracker's activity type strings onto the
// current closed event set. Unknown types convert to an empty kind and are
// skipped by the importer.
var legacyTypeToKind = map[string]string{
	"flashcard":        models.EventKindFlashcard,
	"flashcard_answer": models.EventKindFlashcard,
	"chore":            models.EventKindChore,
	"chore_done":       models.EventKindChore,
	"outdoor":          models.EventKindOutdoor,
	"outside_play":     models.EventKindOutdoor,
	"affirmation":      models.EventKindAffirmation,
}

func convertChild(mc MongoChild, now time.Time) *models.Child {
	return &models.Child{
		ID:        mc.LegacyID,
		ParentID:  mc.ParentID,
		Name:      strings.TrimSpace(mc.Name),
		BirthYear: mc.BirthYear,
		CreatedAt: mc.CreatedAt.UTC(),
		UpdatedAt: now,
	}
}

func convertActivity(ma MongoActivity) *models.ActivityEvent {
	kind, ok := legacyTypeToKind[strings.ToLower(strings.TrimSpace(ma.Type))]
	if !ok {
		return nil
	}

	ev := &models.ActivityEvent{
		ChildID:   ma.ChildID,
		Kind:      kind,
		Points:    ma.Points,
		CreatedAt: ma.Timestamp.UTC(),
	}

	switch kind {
	case models.EventKindFlashcard:
		if subject := strings.TrimSpace(ma.Subject); subject != "" {
			ev.SubjectID = &subject
		}
		ev.FlashcardID = ma.CardID
		ev.IsCorrect = ma.Correct
		if answer := strings.TrimSpace(ma.Answer); answer != "" {
			ev.Answer = &answer
		}
	case models.EventKindChore:
		ev.ChoreID = ma.ItemID
	case models.EventKindOutdoor:
		ev.OutdoorActivityID = ma.ItemID
	case models.EventKindAffirmation:
		ev.AffirmationID = ma.ItemID
	}

	return ev
}
