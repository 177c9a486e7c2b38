package importer

import (
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_MinimalSyllabus(t *testing.T) {
	gen, err := Convert(validMinimalSchema())
	require.NoError(t, err)

	assert.NotEmpty(t, gen.Syllabus.ID)
	assert.Equal(t, "IFR01", gen.Syllabus.Code)
	assert.Equal(t, "Instrument Rating", gen.Syllabus.Name)

	require.Len(t, gen.Phases, 1)
	assert.Equal(t, gen.Syllabus.ID, gen.Phases[0].SyllabusID)

	require.Len(t, gen.Events, 1)
	assert.Equal(t, gen.Phases[0].ID, gen.Events[0].PhaseID)
	assert.Equal(t, 90, gen.Events[0].Minutes.Get(domain.CategoryIFRDual))
	assert.Len(t, gen.Events[0].Minutes, len(domain.Categories))

	require.Len(t, gen.Requirements, 1)
	assert.Equal(t, domain.Requirement{SyllabusID: gen.Syllabus.ID, Category: domain.CategoryIFRDual, Minutes: 3000},
		gen.Requirements[0])
}

func TestConvert_UppercasesCode(t *testing.T) {
	schema := validMinimalSchema()
	schema.Syllabus.Code = "ifr01"
	gen, err := Convert(schema)
	require.NoError(t, err)
	assert.Equal(t, "IFR01", gen.Syllabus.Code)
}

func TestConvert_SeqFollowsDisplayOrder(t *testing.T) {
	schema := &ImportSchema{
		Syllabus: SyllabusImport{Code: "IFR01", Name: "Instrument"},
		Phases: []PhaseImport{
			{Ref: "late", Title: "Late", Order: 2},
			{Ref: "early", Title: "Early", Order: 1},
		},
		Events: []EventImport{
			{Ref: "l1", PhaseRef: "late", Title: "L1"},
			{Ref: "e2", PhaseRef: "early", Title: "E2", Order: 2},
			{Ref: "e1", PhaseRef: "early", Title: "E1", Order: 1},
		},
	}
	gen, err := Convert(schema)
	require.NoError(t, err)

	seqs := map[string]int{}
	for _, p := range gen.Phases {
		seqs[p.Title] = p.Seq
	}
	for _, e := range gen.Events {
		seqs[e.Title] = e.Seq
	}
	assert.Equal(t, map[string]int{"Early": 1, "E1": 2, "E2": 3, "Late": 4, "L1": 5}, seqs)

	// Input order of the slices is preserved.
	assert.Equal(t, "Late", gen.Phases[0].Title)
	assert.Equal(t, "L1", gen.Events[0].Title)
}

func TestConvert_RequirementsInCanonicalOrder(t *testing.T) {
	schema := validMinimalSchema()
	schema.Requirements = map[string]MinuteValue{"solo": 600, "cross_country": 300, "ifr_dual": 3000}

	gen, err := Convert(schema)
	require.NoError(t, err)
	require.Len(t, gen.Requirements, 3)
	assert.Equal(t, domain.CategoryIFRDual, gen.Requirements[0].Category)
	assert.Equal(t, domain.CategoryCrossCountry, gen.Requirements[1].Category)
	assert.Equal(t, domain.CategorySolo, gen.Requirements[2].Category)
}

func TestConvert_UnknownPhaseRef(t *testing.T) {
	schema := validMinimalSchema()
	schema.Events[0].PhaseRef = "ghost"
	_, err := Convert(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestConvert_UniqueIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Events = append(schema.Events, EventImport{Ref: "e2", PhaseRef: "p1", Title: "Second"})
	gen, err := Convert(schema)
	require.NoError(t, err)

	seen := map[string]bool{gen.Syllabus.ID: true}
	for _, p := range gen.Phases {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
	for _, e := range gen.Events {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}
