package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

type syllabusService struct {
	catalog  catalogReader
	observer UseCaseObserver
}

func NewSyllabusService(
	syllabi repository.SyllabusRepo,
	phases repository.PhaseRepo,
	events repository.EventRepo,
	requirements repository.RequirementRepo,
	observers ...UseCaseObserver,
) SyllabusService {
	return &syllabusService{
		catalog: catalogReader{
			syllabi:      syllabi,
			phases:       phases,
			events:       events,
			requirements: requirements,
		},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *syllabusService) List(ctx context.Context) (items []app.SyllabusListItem, err error) {
	span := startUseCase(s.observer, "list-syllabi", nil)
	defer func() { span.finish(ctx, err) }()

	syllabi, err := s.catalog.syllabi.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading syllabi: %w", err)
	}
	items = make([]app.SyllabusListItem, 0, len(syllabi))
	for _, syl := range syllabi {
		phases, err := s.catalog.phases.ListBySyllabus(ctx, syl.ID)
		if err != nil {
			return nil, fmt.Errorf("loading phases for %s: %w", syl.Code, err)
		}
		events, err := s.catalog.events.ListBySyllabus(ctx, syl.ID)
		if err != nil {
			return nil, fmt.Errorf("loading events for %s: %w", syl.Code, err)
		}
		total := 0
		for _, e := range events {
			total += e.Minutes.Total()
		}
		items = append(items, app.SyllabusListItem{
			Syllabus:     syl,
			PhaseCount:   len(phases),
			EventCount:   len(events),
			TotalMinutes: total,
		})
	}
	span.fields["count"] = len(items)
	return items, nil
}

func (s *syllabusService) Resolve(ctx context.Context, ref string) (*domain.Syllabus, error) {
	return s.catalog.resolve(ctx, ref)
}

func (s *syllabusService) Show(ctx context.Context, ref string) (detail *app.SyllabusDetail, err error) {
	span := startUseCase(s.observer, "show-syllabus", map[string]any{"ref": ref})
	defer func() { span.finish(ctx, err) }()

	cat, err := s.catalog.load(ctx, ref)
	if err != nil {
		return nil, err
	}

	byPhase := make(map[string][]*domain.TrainingEvent, len(cat.phases))
	for _, e := range cat.events {
		byPhase[e.PhaseID] = append(byPhase[e.PhaseID], e)
	}

	detail = &app.SyllabusDetail{
		Syllabus:     cat.syllabus,
		Requirements: domain.RequirementsToMinutes(cat.requirements),
		Minutes:      domain.NewMinutes(),
	}
	for _, p := range cat.phases {
		pd := app.PhaseDetail{Phase: p, Events: byPhase[p.ID], Minutes: domain.NewMinutes()}
		for _, e := range pd.Events {
			e.Minutes.AddInto(pd.Minutes)
		}
		pd.Minutes.AddInto(detail.Minutes)
		detail.Phases = append(detail.Phases, pd)
	}
	return detail, nil
}

func (s *syllabusService) Delete(ctx context.Context, ref string) (err error) {
	span := startUseCase(s.observer, "delete-syllabus", map[string]any{"ref": ref})
	defer func() { span.finish(ctx, err) }()

	syl, err := s.catalog.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if err := s.catalog.syllabi.Delete(ctx, syl.ID); err != nil {
		return fmt.Errorf("deleting syllabus %s: %w", syl.Code, err)
	}
	return nil
}
