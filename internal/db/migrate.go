package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent and
// re-run on each open; ALTER TABLE re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillSeq(db); err != nil {
		return fmt.Errorf("backfilling seq values: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS syllabi (
		id          TEXT PRIMARY KEY,
		code        TEXT NOT NULL,
		name        TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_syllabi_code ON syllabi(code)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id          TEXT PRIMARY KEY,
		syllabus_id TEXT NOT NULL REFERENCES syllabi(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_syllabus ON phases(syllabus_id)`,

	`CREATE TABLE IF NOT EXISTS training_events (
		id          TEXT PRIMARY KEY,
		phase_id    TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		code        TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_training_events_phase ON training_events(phase_id)`,

	`CREATE TABLE IF NOT EXISTS event_minutes (
		event_id TEXT NOT NULL REFERENCES training_events(id) ON DELETE CASCADE,
		category TEXT NOT NULL
		         CHECK(category IN ('vfr_dual','ifr_dual','simulator','cross_country','night','solo')),
		minutes  INTEGER NOT NULL CHECK(minutes >= 0),
		PRIMARY KEY (event_id, category)
	)`,

	`CREATE TABLE IF NOT EXISTS syllabus_requirements (
		syllabus_id TEXT NOT NULL REFERENCES syllabi(id) ON DELETE CASCADE,
		category    TEXT NOT NULL
		            CHECK(category IN ('vfr_dual','ifr_dual','simulator','cross_country','night','solo')),
		minutes     INTEGER NOT NULL CHECK(minutes >= 0),
		PRIMARY KEY (syllabus_id, category)
	)`,

	// Free-text description shown by `syllabus show`
	`ALTER TABLE syllabi ADD COLUMN description TEXT NOT NULL DEFAULT ''`,

	// Syllabus-scoped sequential IDs for phases and events
	`ALTER TABLE phases ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE training_events ADD COLUMN seq INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillSeq numbers phases and events that predate the seq
// columns. Each syllabus is walked in order: a phase, then its events,
// then the next phase. Rows that already have a seq keep it.
func migrateBackfillSeq(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	err := db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM phases WHERE seq = 0) +
		(SELECT COUNT(*) FROM training_events WHERE seq = 0)`).Scan(&pending)
	if err != nil {
		return fmt.Errorf("checking seq backfill: %w", err)
	}
	if pending == 0 {
		return nil
	}

	syllabusIDs, err := queryIDs(ctx, db, `SELECT DISTINCT syllabus_id FROM phases ORDER BY syllabus_id`)
	if err != nil {
		return fmt.Errorf("listing syllabi for seq backfill: %w", err)
	}
	for _, sid := range syllabusIDs {
		if err := backfillSyllabusSeq(ctx, db, sid); err != nil {
			return fmt.Errorf("backfilling seq for syllabus %s: %w", sid, err)
		}
	}
	return nil
}

func backfillSyllabusSeq(ctx context.Context, db *sql.DB, syllabusID string) error {
	var maxSeq int
	err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq_val), 0) FROM (
		SELECT seq AS seq_val FROM phases WHERE syllabus_id = ?
		UNION ALL
		SELECT e.seq FROM training_events e JOIN phases p ON p.id = e.phase_id WHERE p.syllabus_id = ?
	)`, syllabusID, syllabusID).Scan(&maxSeq)
	if err != nil {
		return fmt.Errorf("reading max seq: %w", err)
	}
	next := maxSeq + 1

	phaseIDs, err := queryIDs(ctx, db,
		`SELECT id FROM phases WHERE syllabus_id = ? ORDER BY order_index, created_at`, syllabusID)
	if err != nil {
		return fmt.Errorf("listing phases: %w", err)
	}
	for _, pid := range phaseIDs {
		res, err := db.ExecContext(ctx, `UPDATE phases SET seq = ? WHERE id = ? AND seq = 0`, next, pid)
		if err != nil {
			return fmt.Errorf("updating phase seq: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			next++
		}

		eventIDs, err := queryIDs(ctx, db,
			`SELECT id FROM training_events WHERE phase_id = ? AND seq = 0 ORDER BY order_index, created_at`, pid)
		if err != nil {
			return fmt.Errorf("listing events for phase: %w", err)
		}
		for _, eid := range eventIDs {
			if _, err := db.ExecContext(ctx,
				`UPDATE training_events SET seq = ? WHERE id = ?`, next, eid); err != nil {
				return fmt.Errorf("updating event seq: %w", err)
			}
			next++
		}
	}
	return nil
}

func queryIDs(ctx context.Context, db *sql.DB, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
