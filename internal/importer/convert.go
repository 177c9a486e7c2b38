package importer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/google/uuid"
)

// GeneratedSyllabus is a converted import ready for persistence.
type GeneratedSyllabus struct {
	Syllabus     *domain.Syllabus
	Phases       []*domain.Phase
	Events       []*domain.TrainingEvent
	Requirements []domain.Requirement
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
// Seq numbers are assigned phase by phase: each phase, then its events.
func Convert(schema *ImportSchema) (*GeneratedSyllabus, error) {
	now := time.Now().UTC()

	syllabus := &domain.Syllabus{
		ID:          uuid.New().String(),
		Code:        strings.ToUpper(schema.Syllabus.Code),
		Name:        strings.TrimSpace(schema.Syllabus.Name),
		Description: schema.Syllabus.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	refMap := make(map[string]string) // ref -> UUID

	phases := make([]*domain.Phase, 0, len(schema.Phases))
	for _, p := range schema.Phases {
		realID := uuid.New().String()
		refMap[p.Ref] = realID
		phases = append(phases, &domain.Phase{
			ID:         realID,
			SyllabusID: syllabus.ID,
			Title:      p.Title,
			OrderIndex: p.Order,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	events := make([]*domain.TrainingEvent, 0, len(schema.Events))
	for _, e := range schema.Events {
		phaseID, ok := refMap[e.PhaseRef]
		if !ok {
			return nil, fmt.Errorf("phase_ref %q not found for event %q", e.PhaseRef, e.Ref)
		}
		minutes, err := toMinutes(e.Minutes)
		if err != nil {
			return nil, fmt.Errorf("event %q: %w", e.Ref, err)
		}
		events = append(events, &domain.TrainingEvent{
			ID:         uuid.New().String(),
			PhaseID:    phaseID,
			Code:       e.Code,
			Title:      e.Title,
			OrderIndex: e.Order,
			Minutes:    minutes,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	assignSeq(phases, events)

	reqMinutes, err := toMinutes(schema.Requirements)
	if err != nil {
		return nil, fmt.Errorf("requirements: %w", err)
	}
	var reqs []domain.Requirement
	for _, c := range domain.Categories {
		if _, ok := schema.Requirements[string(c)]; ok {
			reqs = append(reqs, domain.Requirement{SyllabusID: syllabus.ID, Category: c, Minutes: reqMinutes[c]})
		}
	}

	return &GeneratedSyllabus{
		Syllabus:     syllabus,
		Phases:       phases,
		Events:       events,
		Requirements: reqs,
	}, nil
}

func toMinutes(m map[string]MinuteValue) (domain.Minutes, error) {
	out := domain.NewMinutes()
	for key, v := range m {
		c, err := domain.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		out[c] = int(v)
	}
	return out, nil
}

// assignSeq numbers phases and events 1..n in display order: each phase is
// followed by its own events, ordered by (order, input position).
func assignSeq(phases []*domain.Phase, events []*domain.TrainingEvent) {
	byPhase := make(map[string][]*domain.TrainingEvent, len(phases))
	for _, e := range events {
		byPhase[e.PhaseID] = append(byPhase[e.PhaseID], e)
	}

	ordered := slices.Clone(phases)
	slices.SortStableFunc(ordered, func(a, b *domain.Phase) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})

	seq := 1
	for _, p := range ordered {
		p.Seq = seq
		seq++
		children := byPhase[p.ID]
		slices.SortStableFunc(children, func(a, b *domain.TrainingEvent) int {
			return cmp.Compare(a.OrderIndex, b.OrderIndex)
		})
		for _, e := range children {
			e.Seq = seq
			seq++
		}
	}
}
