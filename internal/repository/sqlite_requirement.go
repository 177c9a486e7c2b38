package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
)

// SQLiteRequirementRepo implements RequirementRepo using a SQLite database.
type SQLiteRequirementRepo struct {
	db db.DBTX
}

func NewSQLiteRequirementRepo(db db.DBTX) *SQLiteRequirementRepo {
	return &SQLiteRequirementRepo{db: db}
}

// Upsert sets the required minutes for one category of a syllabus.
func (r *SQLiteRequirementRepo) Upsert(ctx context.Context, req domain.Requirement) error {
	if !req.Category.Valid() {
		return fmt.Errorf("requirement: %w: %q", domain.ErrUnknownCategory, string(req.Category))
	}
	if req.Minutes < 0 {
		return fmt.Errorf("requirement %s: minutes must be non-negative, got %d", req.Category, req.Minutes)
	}
	query := `INSERT INTO syllabus_requirements (syllabus_id, category, minutes)
		VALUES (?, ?, ?)
		ON CONFLICT(syllabus_id, category) DO UPDATE SET minutes = excluded.minutes`
	if _, err := r.db.ExecContext(ctx, query, req.SyllabusID, string(req.Category), req.Minutes); err != nil {
		return fmt.Errorf("upserting requirement: %w", err)
	}
	return nil
}

// ListBySyllabus returns the stored requirements in canonical category order.
func (r *SQLiteRequirementRepo) ListBySyllabus(ctx context.Context, syllabusID string) ([]domain.Requirement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, minutes FROM syllabus_requirements WHERE syllabus_id = ?`, syllabusID)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[domain.TimeCategory]int)
	for rows.Next() {
		var category string
		var minutes int
		if err := rows.Scan(&category, &minutes); err != nil {
			return nil, fmt.Errorf("scanning requirement: %w", err)
		}
		byCategory[domain.TimeCategory(category)] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requirements: %w", err)
	}

	var out []domain.Requirement
	for _, c := range domain.Categories {
		if v, ok := byCategory[c]; ok {
			out = append(out, domain.Requirement{SyllabusID: syllabusID, Category: c, Minutes: v})
		}
	}
	return out, nil
}
