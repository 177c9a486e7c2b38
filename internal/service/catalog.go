package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

// catalogReader loads one syllabus and everything under it.
type catalogReader struct {
	syllabi      repository.SyllabusRepo
	phases       repository.PhaseRepo
	events       repository.EventRepo
	requirements repository.RequirementRepo
}

type loadedCatalog struct {
	syllabus     *domain.Syllabus
	phases       []*domain.Phase
	events       []*domain.TrainingEvent
	requirements []domain.Requirement
}

// resolve finds a syllabus by code (case-insensitive) or by ID.
func (c *catalogReader) resolve(ctx context.Context, ref string) (*domain.Syllabus, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("syllabus reference is required")
	}
	s, err := c.syllabi.GetByCode(ctx, ref)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("looking up syllabus %q: %w", ref, err)
	}
	s, err = c.syllabi.GetByID(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("syllabus %q: %w", ref, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up syllabus %q: %w", ref, err)
	}
	return s, nil
}

func (c *catalogReader) load(ctx context.Context, ref string) (*loadedCatalog, error) {
	s, err := c.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	phases, err := c.phases.ListBySyllabus(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("loading phases: %w", err)
	}
	events, err := c.events.ListBySyllabus(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("loading training events: %w", err)
	}
	reqs, err := c.requirements.ListBySyllabus(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("loading requirements: %w", err)
	}
	return &loadedCatalog{syllabus: s, phases: phases, events: events, requirements: reqs}, nil
}
