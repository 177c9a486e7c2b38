package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/importer"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/require"
)

// instrumentSchema is a two-phase instrument course:
// Basic Instrument has six IFR lessons (90 min, lessons 3 and 5 at 120),
// Cross Country has two lessons split across XC, night and solo.
func instrumentSchema() *importer.ImportSchema {
	schema := &importer.ImportSchema{
		Syllabus: importer.SyllabusImport{Code: "IFR01", Name: "Instrument Rating", Description: "Part 141"},
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

type testServices struct {
	db       *sql.DB
	imports  ImportService
	syllabi  SyllabusService
	credits  CreditService
	sylRepo  *repository.SQLiteSyllabusRepo
	evtRepo  *repository.SQLiteEventRepo
	phsRepo  *repository.SQLitePhaseRepo
	reqRepo  *repository.SQLiteRequirementRepo
	observer *recordingObserver
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	return newTestServicesOn(t, testutil.NewTestDB(t))
}

func newTestServicesOn(t *testing.T, database *sql.DB) *testServices {
	t.Helper()
	ts := &testServices{
		db:       database,
		sylRepo:  repository.NewSQLiteSyllabusRepo(database),
		phsRepo:  repository.NewSQLitePhaseRepo(database),
		evtRepo:  repository.NewSQLiteEventRepo(database),
		reqRepo:  repository.NewSQLiteRequirementRepo(database),
		observer: &recordingObserver{},
	}
	ts.imports = NewImportService(testutil.NewTestUoW(database), ts.observer)
	ts.syllabi = NewSyllabusService(ts.sylRepo, ts.phsRepo, ts.evtRepo, ts.reqRepo, ts.observer)
	ts.credits = NewCreditService(ts.sylRepo, ts.phsRepo, ts.evtRepo, ts.reqRepo, ts.observer)
	return ts
}

func (ts *testServices) importInstrument(t *testing.T) *app.ImportResult {
	t.Helper()
	res, err := ts.imports.ImportSyllabusFromSchema(context.Background(), instrumentSchema())
	require.NoError(t, err)
	return res
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	if len(r.events) == 0 {
		return UseCaseEvent{}
	}
	return r.events[len(r.events)-1]
}
