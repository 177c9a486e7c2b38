package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
)

const eventColumns = `e.id, e.phase_id, e.seq, e.code, e.title, e.order_index, e.created_at, e.updated_at`

// SQLiteEventRepo implements EventRepo using a SQLite database. Per-category
// minutes live in event_minutes and are loaded alongside each event.
type SQLiteEventRepo struct {
	db db.DBTX
}

func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

// Create inserts the event row and one event_minutes row per non-zero category.
// Callers that need the pair to be atomic run it inside a unit of work.
func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.TrainingEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO training_events (id, phase_id, seq, code, title, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PhaseID,
		e.Seq,
		e.Code,
		e.Title,
		e.OrderIndex,
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting training event: %w", err)
	}

	for _, c := range domain.Categories {
		v := e.Minutes.Get(c)
		if v == 0 {
			continue
		}
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO event_minutes (event_id, category, minutes) VALUES (?, ?, ?)`,
			e.ID, string(c), v)
		if err != nil {
			return fmt.Errorf("inserting %s minutes for event %s: %w", c, e.ID, err)
		}
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.TrainingEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM training_events e WHERE e.id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, err
	}
	byEvent, err := r.loadMinutes(ctx,
		`SELECT event_id, category, minutes FROM event_minutes WHERE event_id = ?`, id)
	if err != nil {
		return nil, err
	}
	attachMinutes([]*domain.TrainingEvent{e}, byEvent)
	return e, nil
}

func (r *SQLiteEventRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.TrainingEvent, error) {
	events, err := r.listEvents(ctx,
		`SELECT `+eventColumns+` FROM training_events e WHERE e.phase_id = ? ORDER BY e.order_index, e.seq`,
		phaseID)
	if err != nil {
		return nil, err
	}
	byEvent, err := r.loadMinutes(ctx,
		`SELECT m.event_id, m.category, m.minutes FROM event_minutes m
		JOIN training_events e ON e.id = m.event_id
		WHERE e.phase_id = ?`, phaseID)
	if err != nil {
		return nil, err
	}
	attachMinutes(events, byEvent)
	return events, nil
}

// ListBySyllabus returns every event of the syllabus ordered by phase order,
// then event order.
func (r *SQLiteEventRepo) ListBySyllabus(ctx context.Context, syllabusID string) ([]*domain.TrainingEvent, error) {
	events, err := r.listEvents(ctx,
		`SELECT `+eventColumns+` FROM training_events e
		JOIN phases p ON p.id = e.phase_id
		WHERE p.syllabus_id = ?
		ORDER BY p.order_index, p.seq, e.order_index, e.seq`,
		syllabusID)
	if err != nil {
		return nil, err
	}
	byEvent, err := r.loadMinutes(ctx,
		`SELECT m.event_id, m.category, m.minutes FROM event_minutes m
		JOIN training_events e ON e.id = m.event_id
		JOIN phases p ON p.id = e.phase_id
		WHERE p.syllabus_id = ?`, syllabusID)
	if err != nil {
		return nil, err
	}
	attachMinutes(events, byEvent)
	return events, nil
}

func (r *SQLiteEventRepo) listEvents(ctx context.Context, query string, args ...any) ([]*domain.TrainingEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing training events: %w", err)
	}
	defer rows.Close()

	var events []*domain.TrainingEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating training events: %w", err)
	}
	return events, nil
}

// loadMinutes runs a query yielding (event_id, category, minutes) rows and
// groups them by event. The rows are fully drained before returning, so the
// caller may issue further queries on a single-connection pool.
func (r *SQLiteEventRepo) loadMinutes(ctx context.Context, query string, args ...any) (map[string]domain.Minutes, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading event minutes: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Minutes)
	for rows.Next() {
		var eventID, category string
		var minutes int
		if err := rows.Scan(&eventID, &category, &minutes); err != nil {
			return nil, fmt.Errorf("scanning event minutes: %w", err)
		}
		m, ok := out[eventID]
		if !ok {
			m = domain.NewMinutes()
			out[eventID] = m
		}
		m[domain.TimeCategory(category)] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating event minutes: %w", err)
	}
	return out, nil
}

func attachMinutes(events []*domain.TrainingEvent, byEvent map[string]domain.Minutes) {
	for _, e := range events {
		if m, ok := byEvent[e.ID]; ok {
			e.Minutes = m
		} else {
			e.Minutes = domain.NewMinutes()
		}
	}
}

func scanEvent(row rowScanner) (*domain.TrainingEvent, error) {
	var e domain.TrainingEvent
	var createdAtStr, updatedAtStr string
	err := row.Scan(&e.ID, &e.PhaseID, &e.Seq, &e.Code, &e.Title, &e.OrderIndex, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("training event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning training event: %w", err)
	}
	e.CreatedAt, e.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
