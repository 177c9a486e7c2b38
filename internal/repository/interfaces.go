package repository

import (
	"context"

	"github.com/alexanderramin/tally/internal/domain"
)

type SyllabusRepo interface {
	Create(ctx context.Context, s *domain.Syllabus) error
	GetByID(ctx context.Context, id string) (*domain.Syllabus, error)
	GetByCode(ctx context.Context, code string) (*domain.Syllabus, error)
	List(ctx context.Context) ([]*domain.Syllabus, error)
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	ListBySyllabus(ctx context.Context, syllabusID string) ([]*domain.Phase, error)
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.TrainingEvent) error
	GetByID(ctx context.Context, id string) (*domain.TrainingEvent, error)
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.TrainingEvent, error)
	ListBySyllabus(ctx context.Context, syllabusID string) ([]*domain.TrainingEvent, error)
}

type RequirementRepo interface {
	Upsert(ctx context.Context, r domain.Requirement) error
	ListBySyllabus(ctx context.Context, syllabusID string) ([]domain.Requirement, error)
}
