package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
)

const syllabusColumns = `id, code, name, description, created_at, updated_at`

// SQLiteSyllabusRepo implements SyllabusRepo using a SQLite database.
type SQLiteSyllabusRepo struct {
	db db.DBTX
}

func NewSQLiteSyllabusRepo(db db.DBTX) *SQLiteSyllabusRepo {
	return &SQLiteSyllabusRepo{db: db}
}

func (r *SQLiteSyllabusRepo) Create(ctx context.Context, s *domain.Syllabus) error {
	query := `INSERT INTO syllabi (` + syllabusColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Code,
		s.Name,
		s.Description,
		formatTimestamp(s.CreatedAt),
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting syllabus: %w", err)
	}
	return nil
}

func (r *SQLiteSyllabusRepo) GetByID(ctx context.Context, id string) (*domain.Syllabus, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+syllabusColumns+` FROM syllabi WHERE id = ?`, id)
	return scanSyllabus(row)
}

// GetByCode matches the syllabus code case-insensitively.
func (r *SQLiteSyllabusRepo) GetByCode(ctx context.Context, code string) (*domain.Syllabus, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+syllabusColumns+` FROM syllabi WHERE UPPER(code) = UPPER(?)`, code)
	return scanSyllabus(row)
}

func (r *SQLiteSyllabusRepo) List(ctx context.Context) ([]*domain.Syllabus, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+syllabusColumns+` FROM syllabi ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("listing syllabi: %w", err)
	}
	defer rows.Close()

	var out []*domain.Syllabus
	for rows.Next() {
		s, err := scanSyllabus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating syllabi: %w", err)
	}
	return out, nil
}

// Delete removes a syllabus; phases, events and requirements cascade.
func (r *SQLiteSyllabusRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM syllabi WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting syllabus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("syllabus %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanSyllabus(row rowScanner) (*domain.Syllabus, error) {
	var s domain.Syllabus
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("syllabus: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning syllabus: %w", err)
	}
	s.CreatedAt, s.UpdatedAt, err = parseTimestamps(createdAtStr, updatedAtStr)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
