package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoChild mirrors a child profile document from the legacy tracker.
type MongoChild struct {
	ID        primitive.ObjectID `bson:"_id"`
	LegacyID  int64              `bson:"legacyId"`
	ParentID  int64              `bson:"parentId"`
	Name      string             `bson:"name"`
	BirthYear int                `bson:"birthYear"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// MongoActivity mirrors an activity document from the legacy tracker. The
// old schema mixed all activity types into one collection with optional
// fields, same shape this system keeps.
type MongoActivity struct {
	ID        primitive.ObjectID `bson:"_id"`
	ChildID   int64              `bson:"childId"`
	Type      string             `bson:"type"`
	Points    int                `bson:"points"`
	Subject   string             `bson:"subject,omitempty"`
	CardID    *int64             `bson:"cardId,omitempty"`
	Correct   *bool              `bson:"correct,omitempty"`
	Answer    string             `bson:"answer,omitempty"`
	ItemID    *int64             `bson:"itemId,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
}

// ImportStats accumulates per-collection counters for the final report.
type ImportStats struct {
	ChildrenRead     int
	ChildrenImported int
	EventsRead       int
	EventsImported   int
	EventsSkipped    int
	StartTime        time.Time
	EndTime          time.Time
}
