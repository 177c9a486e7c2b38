package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const syllabusJSON = `{
  "syllabus": {"code": "ppl01", "name": "Private Pilot"},
  "phases": [
    {"ref": "pre", "title": "Pre-solo", "order": 1},
    {"ref": "xc", "title": "Cross Country", "order": 2}
  ],
  "events": [
    {"ref": "d1", "phase_ref": "pre", "code": "D-1", "title": "Effects of controls", "order": 1, "minutes": {"vfr_dual": "1:30"}},
    {"ref": "d2", "phase_ref": "pre", "code": "D-2", "title": "Circuits", "order": 2, "minutes": {"vfr_dual": 60, "solo": "0:30"}},
    {"ref": "x1", "phase_ref": "xc", "code": "XC-1", "title": "Dual navigation", "order": 1, "minutes": {"cross_country": "2:00"}}
  ],
  "requirements": {"vfr_dual": "20:00", "solo": "10:00", "cross_country": "5:00"}
}`

func writeSyllabusFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ppl.json")
	require.NoError(t, os.WriteFile(path, []byte(syllabusJSON), 0o644))
	return path
}

// --- Root command ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "tally")
	assert.Contains(t, output, "syllabus")
	assert.Contains(t, output, "credit")
}

// --- syllabus commands ---

func TestSyllabusImportCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "syllabus", "import", writeSyllabusFile(t))
	require.NoError(t, err)
	assert.Contains(t, output, "Imported PPL01 Private Pilot")
	assert.Contains(t, output, "2 phases, 3 events, 3 requirements")
}

func TestSyllabusImportCmd_MissingFile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "syllabus", "import", filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSyllabusImportCmd_Duplicate(t *testing.T) {
	app := testApp(t)
	path := writeSyllabusFile(t)

	_, err := executeCmd(t, app, "syllabus", "import", path)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "syllabus", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSyllabusListCmd_Empty(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "syllabus", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No syllabi in the catalog")
}

func TestSyllabusListCmd(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	output, err := executeCmd(t, app, "syl", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "IFR01")
	assert.Contains(t, output, "Instrument Rating")
}

func TestSyllabusShowCmd(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	output, err := executeCmd(t, app, "syllabus", "show", "ifr01")
	require.NoError(t, err)
	assert.Contains(t, output, "2 phases · 8 events")
	assert.Contains(t, output, "BI-3 Instrument lesson 3")
	assert.Contains(t, output, "Totals")
}

func TestSyllabusShowCmd_NotFound(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "syllabus", "show", "NOPE01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSyllabusDeleteCmd(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	output, err := executeCmd(t, app, "syllabus", "delete", "IFR01")
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted syllabus Instrument Rating [IFR01]")

	output, err = executeCmd(t, app, "syllabus", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No syllabi")
}

// --- credit command ---

func TestCreditCmd_NoFlagsPrintsReconciliation(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	output, err := executeCmd(t, app, "credit", "IFR01")
	require.NoError(t, err)
	assert.Contains(t, output, "0 of 8 lessons credited")
	assert.Contains(t, output, "Reconciliation")
	assert.Contains(t, output, "50:00")
}

func TestCreditCmd_PhaseEventAndOverride(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	output, err := executeCmd(t, app, "credit", "IFR01",
		"--phase", "Basic Instrument",
		"--event", "XC-1",
		"--override", "solo=12:00",
	)
	require.NoError(t, err)
	assert.Contains(t, output, "7 of 8 lessons credited")
	assert.Contains(t, output, "[x] Basic Instrument")
	assert.Contains(t, output, "[-] Cross Country")
	assert.Contains(t, output, "Credited beyond requirement:")
	assert.Contains(t, output, "Night +1:00")
	assert.Contains(t, output, "Solo +2:00")
}

func TestCreditCmd_JSON(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	output, err := executeCmd(t, app, "credit", "IFR01", "--phase", "#1", "--override", "ifr-dual=8:20", "--json")
	require.NoError(t, err)

	var got struct {
		Syllabus        string `json:"syllabus"`
		CreditedLessons int    `json:"credited_lessons"`
		TotalLessons    int    `json:"total_lessons"`
		Categories      []struct {
			Category  string `json:"category"`
			Aggregate int    `json:"aggregate_min"`
			Override  *int   `json:"override_min"`
			Effective int    `json:"effective_min"`
			Remaining int    `json:"remaining_min"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, "IFR01", got.Syllabus)
	assert.Equal(t, 6, got.CreditedLessons)
	assert.Equal(t, 8, got.TotalLessons)

	require.Len(t, got.Categories, len(domain.Categories))
	ifr := got.Categories[1]
	assert.Equal(t, "ifr_dual", ifr.Category)
	assert.Equal(t, 600, ifr.Aggregate)
	require.NotNil(t, ifr.Override)
	assert.Equal(t, 500, *ifr.Override)
	assert.Equal(t, 500, ifr.Effective)
	assert.Equal(t, 2500, ifr.Remaining)
}

func TestCreditCmd_BadOverrideFlag(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	_, err := executeCmd(t, app, "credit", "IFR01", "--override", "solo=12.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidClock.Error())

	_, err = executeCmd(t, app, "credit", "IFR01", "--override", "aerobatics=1:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnknownCategory.Error())
}

func TestCreditCmd_UnknownEvent(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	_, err := executeCmd(t, app, "credit", "IFR01", "--event", "ZZ-9")
	assert.Error(t, err)
}

func TestCreditCmd_InteractiveRejectsCreditFlags(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	_, err := executeCmd(t, app, "credit", "IFR01", "--interactive", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--interactive cannot be combined")
}

func TestCreditCmd_InteractiveRunsEditor(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)

	var ran bool
	app.RunProgram = func(m tea.Model) (tea.Model, error) {
		ran = true
		cm, ok := m.(*creditModel)
		require.True(t, ok)
		require.NoError(t, cm.session.TogglePhase(cm.session.Registry().Phases()[1].Phase.ID, true))
		return m, nil
	}

	output, err := executeCmd(t, app, "credit", "IFR01", "-i")
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Contains(t, output, "2 of 8 lessons credited")
	assert.Contains(t, output, "[x] Cross Country")
}

func TestCreditCmd_TerminalDefaultsToEditor(t *testing.T) {
	app := testApp(t)
	seedInstrument(t, app)
	app.IsInteractive = func() bool { return true }

	var ran bool
	app.RunProgram = func(m tea.Model) (tea.Model, error) {
		ran = true
		return m, nil
	}

	_, err := executeCmd(t, app, "credit", "IFR01")
	require.NoError(t, err)
	assert.True(t, ran)

	ran = false
	_, err = executeCmd(t, app, "credit", "IFR01", "--event", "BI-1")
	require.NoError(t, err)
	assert.False(t, ran, "credit flags run non-interactively")
}
