package migration

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/brightkid/brightkid/brightkid/database/models"
	"github.com/brightkid/brightkid/brightkid/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultBatchSize = 1000

// Importer copies child profiles and activity history from the legacy
// MongoDB tracker into Postgres. Imports are idempotent: every insert goes
// through ON CONFLICT DO NOTHING, so re-running after a partial failure
// just fills in what is missing.
type Importer struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	stats     ImportStats

	// Optional pgx pool for the COPY fast path on big activity histories.
	pool    *pgxpool.Pool
	useCopy bool

	collNames map[string]string
}

func NewImporter(pgDB *bun.DB, client *mongo.Client, dbName string) *Importer {
	return &Importer{
		pgDB:      pgDB,
		mongoDB:   client.Database(dbName),
		batchSize: defaultBatchSize,
		collNames: map[string]string{
			"children":   "children",
			"activities": "activities",
		},
	}
}

// Connect dials the legacy MongoDB deployment.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to legacy mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping legacy mongo: %w", err)
	}
	return client, nil
}

// SetBatchSize overrides the default insert batch size.
func (im *Importer) SetBatchSize(size int) {
	if size > 0 {
		im.batchSize = size
	}
}

// SetCollectionName overrides a legacy collection name.
func (im *Importer) SetCollectionName(kind, name string) {
	if kind != "" && name != "" {
		im.collNames[kind] = name
	}
}

// UseCopy enables COPY-based bulk loading of activity history through pool.
func (im *Importer) UseCopy(pool *pgxpool.Pool) {
	im.pool = pool
	im.useCopy = pool != nil
}

func (im *Importer) coll(kind string) *mongo.Collection {
	return im.mongoDB.Collection(im.collNames[kind])
}

// ImportAll runs the full import: children first so activity rows have
// their owners, then the activity history.
func (im *Importer) ImportAll(ctx context.Context) error {
	im.stats = ImportStats{StartTime: time.Now()}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"children", im.ImportChildren},
		{"activities", im.ImportActivities},
	}
	for _, step := range steps {
		logger.LogSystem("Starting import step", slog.String("step", step.name))
		if err := step.fn(ctx); err != nil {
			return fmt.Errorf("import failed at step %s: %w", step.name, err)
		}
	}

	im.stats.EndTime = time.Now()
	im.logFinalStats()
	return nil
}

func (im *Importer) ImportChildren(ctx context.Context) error {
	cur, err := im.coll("children").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query legacy children: %w", err)
	}
	defer cur.Close(ctx)

	now := time.Now().UTC()
	var batch []*models.Child
	for cur.Next(ctx) {
		var mc MongoChild
		if err := cur.Decode(&mc); err != nil {
			continue
		}
		im.stats.ChildrenRead++
		if mc.LegacyID <= 0 || mc.Name == "" {
			continue
		}
		batch = append(batch, convertChild(mc, now))
		if len(batch) >= im.batchSize {
			if err := im.batchInsertChildren(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := im.batchInsertChildren(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) ImportActivities(ctx context.Context) error {
	cur, err := im.coll("activities").Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query legacy activities: %w", err)
	}
	defer cur.Close(ctx)

	var batch []*models.ActivityEvent
	for cur.Next(ctx) {
		var ma MongoActivity
		if err := cur.Decode(&ma); err != nil {
			continue
		}
		im.stats.EventsRead++

		ev := convertActivity(ma)
		if ev == nil || ev.ChildID <= 0 || ev.CreatedAt.IsZero() {
			im.stats.EventsSkipped++
			continue
		}
		batch = append(batch, ev)
		if len(batch) >= im.batchSize {
			if err := im.insertEvents(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := cur.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		if err := im.insertEvents(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) batchInsertChildren(ctx context.Context, children []*models.Child) error {
	start := time.Now()
	res, err := im.pgDB.NewInsert().
		Model(&children).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	logger.LogQuery("insert children batch", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert children batch: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		im.stats.ChildrenImported += int(n)
	}
	return nil
}

func (im *Importer) insertEvents(ctx context.Context, events []*models.ActivityEvent) error {
	if im.useCopy {
		if err := im.copyInsertEvents(ctx, events); err != nil {
			slog.Warn("COPY path failed, falling back to batch insert",
				slog.String("type", "db"),
				slog.Any("error", err))
		} else {
			return nil
		}
	}

	start := time.Now()
	res, err := im.pgDB.NewInsert().
		Model(&events).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	logger.LogQuery("insert activity_events batch", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert events batch: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		im.stats.EventsImported += int(n)
	}
	return nil
}

// copyInsertEvents loads events through COPY into a temp table, then moves
// them into activity_events with conflict handling. COPY itself cannot skip
// duplicates, so the temp-table hop keeps the import idempotent under the
// daily-dedupe index.
func (im *Importer) copyInsertEvents(ctx context.Context, events []*models.ActivityEvent) error {
	conn, err := im.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	createSQL := `CREATE TEMP TABLE tmp_activity_events (
		child_id BIGINT NOT NULL,
		kind TEXT NOT NULL,
		points INT NOT NULL,
		subject_id TEXT,
		flashcard_id BIGINT,
		is_correct BOOLEAN,
		answer TEXT,
		chore_id BIGINT,
		outdoor_activity_id BIGINT,
		affirmation_id BIGINT,
		created_at TIMESTAMP NOT NULL
	) ON COMMIT DROP`
	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create temp table: %w", err)
	}

	columns := []string{
		"child_id", "kind", "points", "subject_id", "flashcard_id",
		"is_correct", "answer", "chore_id", "outdoor_activity_id",
		"affirmation_id", "created_at",
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"tmp_activity_events"},
		columns,
		pgx.CopyFromSlice(len(events), func(i int) ([]any, error) {
			ev := events[i]
			return []any{
				ev.ChildID, ev.Kind, ev.Points, ev.SubjectID, ev.FlashcardID,
				ev.IsCorrect, ev.Answer, ev.ChoreID, ev.OutdoorActivityID,
				ev.AffirmationID, ev.CreatedAt,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy into temp table failed: %w", err)
	}

	moveSQL := `INSERT INTO activity_events
		(child_id, kind, points, subject_id, flashcard_id, is_correct,
		 answer, chore_id, outdoor_activity_id, affirmation_id, created_at)
		SELECT child_id, kind, points, subject_id, flashcard_id, is_correct,
		 answer, chore_id, outdoor_activity_id, affirmation_id, created_at
		FROM tmp_activity_events
		ON CONFLICT DO NOTHING`
	tag, err := tx.Exec(ctx, moveSQL)
	if err != nil {
		return fmt.Errorf("move from temp table failed: %w", err)
	}
	im.stats.EventsImported += int(tag.RowsAffected())

	return tx.Commit(ctx)
}

func (im *Importer) logFinalStats() {
	logger.LogSystem("Legacy import completed",
		slog.Int("children_read", im.stats.ChildrenRead),
		slog.Int("children_imported", im.stats.ChildrenImported),
		slog.Int("events_read", im.stats.EventsRead),
		slog.Int("events_imported", im.stats.EventsImported),
		slog.Int("events_skipped", im.stats.EventsSkipped),
		slog.Duration("took", im.stats.EndTime.Sub(im.stats.StartTime)))
}
