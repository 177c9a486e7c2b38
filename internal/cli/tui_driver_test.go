package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/tally/internal/credit"
	"github.com/alexanderramin/tally/internal/teatest"
	"github.com/stretchr/testify/require"
)

// creditDriver wraps teatest.Driver with access to the credit editor's
// model and engine session.
type creditDriver struct {
	*teatest.Driver
}

// newCreditDriver seeds the instrument syllabus, opens a session on it and
// drives a fresh editor at 120x40.
func newCreditDriver(t *testing.T) *creditDriver {
	t.Helper()
	return newCreditDriverSized(t, 120, 40)
}

func newCreditDriverSized(t *testing.T, w, h int) *creditDriver {
	t.Helper()
	app := testApp(t)
	seedInstrument(t, app)

	cs, err := app.Credits.OpenSession(context.Background(), "IFR01")
	require.NoError(t, err)

	d := teatest.New(t, newCreditModel(cs.Syllabus, cs.Session), teatest.WithSize(w, h))
	d.DrainInit()
	return &creditDriver{Driver: d}
}

func (d *creditDriver) model() *creditModel {
	return d.Model.(*creditModel)
}

func (d *creditDriver) session() *credit.Session {
	return d.model().session
}

func (d *creditDriver) phaseID(title string) string {
	d.T.Helper()
	for _, g := range d.session().Registry().Phases() {
		if g.Phase.Title == title {
			return g.Phase.ID
		}
	}
	d.T.Fatalf("no phase %q", title)
	return ""
}

func (d *creditDriver) lessonID(code string) string {
	d.T.Helper()
	for _, g := range d.session().Registry().Phases() {
		for _, l := range g.Lessons {
			if l.Event.Code == code {
				return l.Event.ID
			}
		}
	}
	d.T.Fatalf("no lesson %q", code)
	return ""
}

func (d *creditDriver) credited(code string) bool {
	d.T.Helper()
	ok, err := d.session().IsCredited(d.lessonID(code))
	require.NoError(d.T, err)
	return ok
}
