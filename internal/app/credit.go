package app

import (
	"github.com/alexanderramin/tally/internal/credit"
	"github.com/alexanderramin/tally/internal/domain"
)

// CreditSession is an editable crediting session over one catalog syllabus.
type CreditSession struct {
	Syllabus *domain.Syllabus
	Session  *credit.Session
}

// CreditRequest describes a one-shot reconciliation. Events and phases are
// referenced by ID, seq number or code; overrides are "H:MM" text.
type CreditRequest struct {
	SyllabusRef string
	Events      []string
	Phases      []string
	Overrides   map[domain.TimeCategory]string
}

type CreditResponse struct {
	Syllabus *domain.Syllabus
	Summary  credit.Summary
}
