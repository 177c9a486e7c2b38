package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/credit"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
)

type creditService struct {
	catalog  catalogReader
	observer UseCaseObserver
}

func NewCreditService(
	syllabi repository.SyllabusRepo,
	phases repository.PhaseRepo,
	events repository.EventRepo,
	requirements repository.RequirementRepo,
	observers ...UseCaseObserver,
) CreditService {
	return &creditService{
		catalog: catalogReader{
			syllabi:      syllabi,
			phases:       phases,
			events:       events,
			requirements: requirements,
		},
		observer: useCaseObserverOrNoop(observers),
	}
}

// OpenSession builds a fresh, uncredited session over the catalog syllabus.
func (s *creditService) OpenSession(ctx context.Context, ref string) (cs *app.CreditSession, err error) {
	span := startUseCase(s.observer, "open-credit-session", map[string]any{"ref": ref})
	defer func() { span.finish(ctx, err) }()

	cs, err = s.open(ctx, ref)
	if err != nil {
		return nil, err
	}
	span.fields["lesson_count"] = cs.Session.Registry().LessonCount()
	return cs, nil
}

func (s *creditService) open(ctx context.Context, ref string) (*app.CreditSession, error) {
	cat, err := s.catalog.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	reg, err := credit.NewRegistry(cat.phases, cat.events)
	if err != nil {
		return nil, fmt.Errorf("building lesson registry for %s: %w", cat.syllabus.Code, err)
	}
	session := credit.NewSession(reg, domain.RequirementsToMinutes(cat.requirements))
	return &app.CreditSession{Syllabus: cat.syllabus, Session: session}, nil
}

// Reconcile credits the requested phases and events, applies overrides and
// returns the resulting summary. Nothing is persisted.
func (s *creditService) Reconcile(ctx context.Context, req app.CreditRequest) (resp *app.CreditResponse, err error) {
	span := startUseCase(s.observer, "reconcile", map[string]any{
		"ref":       req.SyllabusRef,
		"phases":    len(req.Phases),
		"events":    len(req.Events),
		"overrides": len(req.Overrides),
	})
	defer func() { span.finish(ctx, err) }()

	for c := range req.Overrides {
		if !c.Valid() {
			return nil, fmt.Errorf("override: %w: %q", domain.ErrUnknownCategory, string(c))
		}
	}

	cs, err := s.open(ctx, req.SyllabusRef)
	if err != nil {
		return nil, err
	}
	session := cs.Session
	reg := session.Registry()

	for _, ref := range req.Phases {
		id, err := resolvePhaseRef(reg, ref)
		if err != nil {
			return nil, err
		}
		if err := session.TogglePhase(id, true); err != nil {
			return nil, err
		}
	}
	for _, ref := range req.Events {
		id, err := resolveEventRef(reg, ref)
		if err != nil {
			return nil, err
		}
		if err := session.ToggleEvent(id, true); err != nil {
			return nil, err
		}
	}
	for _, c := range domain.Categories {
		text, ok := req.Overrides[c]
		if !ok {
			continue
		}
		if err := session.SetOverrideText(c, text); err != nil {
			return nil, fmt.Errorf("override %s: %w", c, err)
		}
	}

	return &app.CreditResponse{Syllabus: cs.Syllabus, Summary: session.Summary()}, nil
}
