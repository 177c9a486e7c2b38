package app

import "github.com/alexanderramin/tally/internal/domain"

// ImportResult holds the outcome of a syllabus import.
type ImportResult struct {
	Syllabus         *domain.Syllabus
	PhaseCount       int
	EventCount       int
	RequirementCount int
}

type SyllabusListItem struct {
	Syllabus     *domain.Syllabus
	PhaseCount   int
	EventCount   int
	TotalMinutes int
}

type PhaseDetail struct {
	Phase   *domain.Phase
	Events  []*domain.TrainingEvent
	Minutes domain.Minutes
}

// SyllabusDetail is a syllabus with its full phase/event tree.
type SyllabusDetail struct {
	Syllabus     *domain.Syllabus
	Phases       []PhaseDetail
	Requirements domain.Minutes
	Minutes      domain.Minutes
}

// EventCount counts events across every phase.
func (d *SyllabusDetail) EventCount() int {
	n := 0
	for _, p := range d.Phases {
		n += len(p.Events)
	}
	return n
}
