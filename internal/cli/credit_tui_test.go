package cli

import (
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phaseState(t *testing.T, d *creditDriver, title string) domain.PhaseState {
	t.Helper()
	s, err := d.session().PhaseState(d.phaseID(title))
	require.NoError(t, err)
	return s
}

func TestCreditTUI_InitialView(t *testing.T) {
	d := newCreditDriver(t)

	view := d.PlainView()
	assert.Contains(t, view, "Instrument Rating")
	assert.Contains(t, view, "0 of 8 lessons credited")
	assert.Contains(t, view, "[ ] Basic Instrument")
	assert.Contains(t, view, "[ ] Cross Country")
	assert.Contains(t, view, "Reconciliation")
	assert.NotContains(t, view, "Instrument lesson 1", "phases start collapsed")
}

func TestCreditTUI_SpaceOnPhaseCreditsWholePhase(t *testing.T) {
	d := newCreditDriver(t)

	d.PressSpace()
	assert.Equal(t, domain.PhaseAll, phaseState(t, d, "Basic Instrument"))
	assert.Equal(t, 600, d.session().Aggregate().Get(domain.CategoryIFRDual))
	assert.Contains(t, d.PlainView(), "6 of 8 lessons credited")
	assert.Contains(t, d.PlainView(), "[x] Basic Instrument")

	d.PressSpace()
	assert.Equal(t, domain.PhaseNone, phaseState(t, d, "Basic Instrument"))
	assert.Equal(t, 0, d.session().Aggregate().Get(domain.CategoryIFRDual))
}

func TestCreditTUI_ExpandAndToggleLesson(t *testing.T) {
	d := newCreditDriver(t)

	d.PressEnter()
	assert.Contains(t, d.PlainView(), "BI-1 Instrument lesson 1")

	d.PressDown()
	d.PressSpace()
	assert.True(t, d.credited("BI-1"))
	assert.Equal(t, domain.PhasePartial, phaseState(t, d, "Basic Instrument"))
	assert.Contains(t, d.PlainView(), "[-] Basic Instrument")
	assert.Contains(t, d.PlainView(), "1/6")

	d.PressKey('h')
	assert.Equal(t, 0, d.model().cursor, "collapse moves the cursor to the phase")
	assert.NotContains(t, d.PlainView(), "BI-1 Instrument lesson 1")
}

func TestCreditTUI_SpaceOnPartialPhaseCreditsAll(t *testing.T) {
	d := newCreditDriver(t)

	d.PressEnter()
	d.PressDown()
	d.PressSpace()
	require.Equal(t, domain.PhasePartial, phaseState(t, d, "Basic Instrument"))

	d.PressUp()
	d.PressSpace()
	assert.Equal(t, domain.PhaseAll, phaseState(t, d, "Basic Instrument"))
	assert.Equal(t, 2400, d.session().Remaining().Get(domain.CategoryIFRDual))
}

func TestCreditTUI_CursorStaysInBounds(t *testing.T) {
	d := newCreditDriver(t)

	d.PressUp()
	assert.Equal(t, 0, d.model().cursor)
	for range 5 {
		d.PressDown()
	}
	assert.Equal(t, 1, d.model().cursor)
}

func TestCreditTUI_ExpandAll(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('e')
	view := d.PlainView()
	assert.Contains(t, view, "BI-6 Instrument lesson 6")
	assert.Contains(t, view, "XC-2 Solo cross country")

	d.PressKey('e')
	assert.NotContains(t, d.PlainView(), "XC-2 Solo cross country")
}

func TestCreditTUI_FilterShowsMatchingLessons(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('/')
	assert.Equal(t, creditFiltering, d.model().mode)
	d.Type("solo")

	view := d.PlainView()
	assert.Contains(t, view, "XC-2 Solo cross country")
	assert.NotContains(t, view, "XC-1 Night cross country")
	assert.NotContains(t, view, "Basic Instrument")

	d.PressEnter()
	assert.Equal(t, creditBrowse, d.model().mode)
	assert.Equal(t, "solo", d.model().filter.Value())

	d.PressDown()
	d.PressSpace()
	assert.True(t, d.credited("XC-2"))
	assert.False(t, d.credited("XC-1"))

	d.PressEsc()
	assert.Equal(t, "", d.model().filter.Value())
	assert.Contains(t, d.PlainView(), "Basic Instrument")
}

func TestCreditTUI_FilterCapturesQuitKey(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('/')
	d.Type("q")
	assert.False(t, d.Quitting)

	d.PressEsc()
	assert.Equal(t, creditBrowse, d.model().mode)
	assert.Equal(t, "", d.model().filter.Value())
}

func TestCreditTUI_FilterNoMatch(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('/')
	d.Type("aerobatics")
	assert.Contains(t, d.PlainView(), "No lessons match the filter.")

	// Toggling with nothing under the cursor is a no-op.
	d.PressEnter()
	d.PressSpace()
	assert.Equal(t, 0, d.session().Summary().CreditedLessons)
}

func TestCreditTUI_OverrideFormOpensAndCancels(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('o')
	require.Equal(t, creditForm, d.model().mode)
	assert.Equal(t, formOverride, d.model().formKind)
	assert.Contains(t, d.PlainView(), "Override which category?")

	d.PressEsc()
	assert.Equal(t, creditBrowse, d.model().mode)
	assert.Empty(t, d.session().Overrides())
	assert.Contains(t, d.PlainView(), "Override cancelled.")
}

func TestCreditTUI_OverrideApplied(t *testing.T) {
	d := newCreditDriver(t)
	d.PressSpace()

	d.PressKey('o')
	m := d.model()
	m.overrideCategory = domain.CategoryIFRDual
	m.overrideText = "8:20"
	m.closeForm(true)

	got, ok := d.session().Override(domain.CategoryIFRDual)
	require.True(t, ok)
	assert.Equal(t, 500, got)
	assert.Equal(t, 2500, d.session().Remaining().Get(domain.CategoryIFRDual))
	assert.Equal(t, 600, d.session().Aggregate().Get(domain.CategoryIFRDual), "aggregate is unaffected")

	view := d.PlainView()
	assert.Contains(t, view, "IFR Dual override set to 8:20.")
	assert.Contains(t, view, "8:20")
}

func TestCreditTUI_MalformedOverrideLeavesStateUnchanged(t *testing.T) {
	d := newCreditDriver(t)
	require.NoError(t, d.session().SetOverride(domain.CategoryNight, 45))

	d.PressKey('o')
	m := d.model()
	m.overrideCategory = domain.CategoryNight
	m.overrideText = "1:5"
	m.closeForm(true)

	got, ok := d.session().Override(domain.CategoryNight)
	require.True(t, ok)
	assert.Equal(t, 45, got)
	assert.Contains(t, d.PlainView(), "invalid H:MM duration")
}

func TestCreditTUI_OverrideInputValidation(t *testing.T) {
	assert.NoError(t, validateClockInput("12:30"))
	assert.ErrorIs(t, validateClockInput("12.5"), domain.ErrInvalidClock)
	assert.ErrorIs(t, validateClockInput(""), domain.ErrInvalidClock)
}

func TestCreditTUI_ResetCancelledKeepsState(t *testing.T) {
	d := newCreditDriver(t)
	d.PressSpace()

	d.PressKey('R')
	require.Equal(t, formReset, d.model().formKind)
	assert.True(t, d.session().ResetPending())
	assert.Contains(t, d.PlainView(), "Reset every credited lesson and override?")

	d.PressEsc()
	assert.False(t, d.session().ResetPending())
	assert.Equal(t, domain.PhaseAll, phaseState(t, d, "Basic Instrument"))
	assert.Contains(t, d.PlainView(), "Reset cancelled.")
}

func TestCreditTUI_ResetConfirmedClearsEverything(t *testing.T) {
	d := newCreditDriver(t)
	d.PressSpace()
	require.NoError(t, d.session().SetOverride(domain.CategorySolo, 600))

	d.PressKey('R')
	m := d.model()
	m.resetConfirmed = true
	m.closeForm(true)

	assert.Equal(t, 0, d.session().Summary().CreditedLessons)
	assert.Empty(t, d.session().Overrides())
	assert.Equal(t, domain.PhaseNone, phaseState(t, d, "Basic Instrument"))
	assert.Contains(t, d.PlainView(), "All credits and overrides cleared.")
}

func TestCreditTUI_ResetDeclinedIsCancel(t *testing.T) {
	d := newCreditDriver(t)
	d.PressSpace()

	d.PressKey('R')
	d.model().closeForm(true)

	assert.False(t, d.session().ResetPending())
	assert.Equal(t, 6, d.session().Summary().CreditedLessons)
}

func TestCreditTUI_StaleResetRejected(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('R')
	require.NoError(t, d.session().ToggleEvent(d.lessonID("XC-1"), true))

	m := d.model()
	m.resetConfirmed = true
	m.closeForm(true)

	assert.True(t, d.credited("XC-1"))
	assert.Contains(t, d.PlainView(), "Reset not applied")
}

func TestCreditTUI_OverCreditHighlighted(t *testing.T) {
	d := newCreditDriver(t)

	d.PressDown()
	d.PressSpace()
	view := d.PlainView()
	assert.Contains(t, view, "Credited beyond requirement:")
	assert.Contains(t, view, "Cross-Country +0:30")
	assert.Contains(t, view, "Night +1:00")
}

func TestCreditTUI_WindowedRows(t *testing.T) {
	d := newCreditDriverSized(t, 120, 20)

	d.PressKey('e')
	assert.Contains(t, d.PlainView(), "1-4 of 10")

	for range 9 {
		d.PressDown()
	}
	view := d.PlainView()
	assert.Contains(t, view, "7-10 of 10")
	assert.Contains(t, view, "XC-2 Solo cross country")
}

func TestCreditTUI_HelpToggle(t *testing.T) {
	d := newCreditDriver(t)

	assert.False(t, d.model().help.ShowAll)
	d.PressKey('?')
	assert.True(t, d.model().help.ShowAll)
	assert.Contains(t, d.PlainView(), "expand all")
}

func TestCreditTUI_Quit(t *testing.T) {
	d := newCreditDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Equal(t, "", d.View())
}
