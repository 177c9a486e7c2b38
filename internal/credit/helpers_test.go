package credit

import (
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/require"
)

// instrumentFixture builds phase "P1" with six IFR-dual lessons: four at 90
// minutes and two at 120 (ids e3 and e5), plus phase "P2" with two
// mixed-category lessons.
func instrumentFixture(t *testing.T) *Registry {
	t.Helper()
	p1 := testutil.NewTestPhase("syl", "Instrument Basics", testutil.WithPhaseID("P1"), testutil.WithPhaseOrder(1))
	p2 := testutil.NewTestPhase("syl", "Cross-Country", testutil.WithPhaseID("P2"), testutil.WithPhaseOrder(2))

	ifr := map[string]int{"e1": 90, "e2": 90, "e3": 120, "e4": 90, "e5": 120, "e6": 90}
	var events []*domain.TrainingEvent
	for i, id := range []string{"e1", "e2", "e3", "e4", "e5", "e6"} {
		events = append(events, testutil.NewTestEvent("P1", "Lesson "+id,
			testutil.WithEventID(id),
			testutil.WithEventOrder(i),
			testutil.WithMinutes(domain.CategoryIFRDual, ifr[id]),
		))
	}
	events = append(events,
		testutil.NewTestEvent("P2", "Night XC",
			testutil.WithEventID("x1"),
			testutil.WithMinutes(domain.CategoryCrossCountry, 180),
			testutil.WithMinutes(domain.CategoryNight, 120),
		),
		testutil.NewTestEvent("P2", "Solo XC",
			testutil.WithEventID("x2"),
			testutil.WithEventOrder(1),
			testutil.WithMinutes(domain.CategoryCrossCountry, 150),
			testutil.WithMinutes(domain.CategorySolo, 150),
		),
	)

	reg, err := NewRegistry([]*domain.Phase{p2, p1}, events)
	require.NoError(t, err)
	return reg
}

func instrumentRequirements() domain.Minutes {
	return domain.Minutes{
		domain.CategoryIFRDual:      3000,
		domain.CategoryCrossCountry: 300,
		domain.CategoryNight:        60,
		domain.CategorySolo:         600,
	}
}

func newInstrumentSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(instrumentFixture(t), instrumentRequirements())
}
