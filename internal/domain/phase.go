package domain

import "time"

type Phase struct {
	ID         string
	SyllabusID string
	Seq        int // syllabus-scoped sequential ID (shared with training events)
	Title      string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
