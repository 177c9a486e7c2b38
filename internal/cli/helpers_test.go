package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/tally/internal/importer"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/alexanderramin/tally/internal/teatest"
	"github.com/alexanderramin/tally/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	syllabi := repository.NewSQLiteSyllabusRepo(database)
	phases := repository.NewSQLitePhaseRepo(database)
	events := repository.NewSQLiteEventRepo(database)
	reqs := repository.NewSQLiteRequirementRepo(database)

	return &App{
		Imports: service.NewImportService(testutil.NewTestUoW(database)),
		Syllabi: service.NewSyllabusService(syllabi, phases, events, reqs),
		Credits: service.NewCreditService(syllabi, phases, events, reqs),
		RunProgram: func(m tea.Model) (tea.Model, error) {
			t.Fatalf("unexpected interactive run")
			return m, nil
		},
	}
}

// instrumentSchema is a two-phase course: Basic Instrument has six IFR
// lessons (90 min, lessons 3 and 5 at 120), Cross Country has two lessons
// split across XC, night and solo.
func instrumentSchema() *importer.ImportSchema {
	schema := &importer.ImportSchema{
		Syllabus: importer.SyllabusImport{Code: "IFR01", Name: "Instrument Rating"},
		Phases: []importer.PhaseImport{
			{Ref: "bi", Title: "Basic Instrument", Order: 1},
			{Ref: "xc", Title: "Cross Country", Order: 2},
		},
		Requirements: map[string]importer.MinuteValue{
			"ifr_dual": 3000, "cross_country": 300, "night": 60, "solo": 600,
		},
	}
	for i := 1; i <= 6; i++ {
		minutes := importer.MinuteValue(90)
		if i == 3 || i == 5 {
			minutes = 120
		}
		schema.Events = append(schema.Events, importer.EventImport{
			Ref:      fmt.Sprintf("bi%d", i),
			PhaseRef: "bi",
			Code:     fmt.Sprintf("BI-%d", i),
			Title:    fmt.Sprintf("Instrument lesson %d", i),
			Order:    i,
			Minutes:  map[string]importer.MinuteValue{"ifr_dual": minutes},
		})
	}
	schema.Events = append(schema.Events,
		importer.EventImport{Ref: "x1", PhaseRef: "xc", Code: "XC-1", Title: "Night cross country", Order: 1,
			Minutes: map[string]importer.MinuteValue{"cross_country": 180, "night": 120}},
		importer.EventImport{Ref: "x2", PhaseRef: "xc", Code: "XC-2", Title: "Solo cross country", Order: 2,
			Minutes: map[string]importer.MinuteValue{"cross_country": 150, "solo": 150}},
	)
	return schema
}

func seedInstrument(t *testing.T, app *App) {
	t.Helper()
	_, err := app.Imports.ImportSyllabusFromSchema(context.Background(), instrumentSchema())
	require.NoError(t, err)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return teatest.StripANSI(buf.String()), err
}
