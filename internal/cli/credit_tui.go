package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/credit"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type creditMode int

const (
	creditBrowse creditMode = iota
	creditFiltering
	creditForm
)

type creditFormKind int

const (
	formNone creditFormKind = iota
	formOverride
	formReset
)

// creditRow is one visible line of the lesson tree. lesson is nil on a
// phase header.
type creditRow struct {
	group  *credit.PhaseGroup
	lesson *credit.Lesson
}

// creditModel is the interactive credit editor. The engine session owns
// every credited flag and override; the model only owns view state
// (cursor, expanded phases, filter text, open form).
type creditModel struct {
	syllabus *domain.Syllabus
	session  *credit.Session

	keys   creditKeyMap
	help   help.Model
	filter textinput.Model

	mode     creditMode
	expanded map[string]bool
	cursor   int

	form             *huh.Form
	formKind         creditFormKind
	overrideCategory domain.TimeCategory
	overrideText     string
	resetConfirmed   bool
	resetTicket      credit.ResetTicket

	status   string
	width    int
	height   int
	quitting bool
}

func newCreditModel(syllabus *domain.Syllabus, session *credit.Session) *creditModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter lessons"
	ti.CharLimit = 64

	return &creditModel{
		syllabus: syllabus,
		session:  session,
		keys:     newCreditKeyMap(),
		help:     help.New(),
		filter:   ti,
		expanded: make(map[string]bool),
	}
}

func (m *creditModel) Init() tea.Cmd { return nil }

func (m *creditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.help.Width = ws.Width
		if m.form != nil {
			m.form = m.form.WithWidth(formWidth(ws.Width))
		}
		return m, nil
	}

	switch m.mode {
	case creditForm:
		return m.updateForm(msg)
	case creditFiltering:
		return m.updateFilter(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.updateBrowse(keyMsg)
}

func (m *creditModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.rowAt(rows, m.cursor); ok {
			m.toggle(row)
		}

	case key.Matches(msg, m.keys.Expand):
		if row, ok := m.rowAt(rows, m.cursor); ok && row.lesson == nil {
			id := row.group.Phase.ID
			if msg.String() == "enter" {
				m.expanded[id] = !m.expanded[id]
			} else {
				m.expanded[id] = true
			}
		}

	case key.Matches(msg, m.keys.Collapse):
		if row, ok := m.rowAt(rows, m.cursor); ok {
			m.expanded[row.group.Phase.ID] = false
			m.cursor = m.phaseRowIndex(row.group)
		}

	case key.Matches(msg, m.keys.ExpandAll):
		all := true
		for _, g := range m.session.Registry().Phases() {
			all = all && m.expanded[g.Phase.ID]
		}
		for _, g := range m.session.Registry().Phases() {
			m.expanded[g.Phase.ID] = !all
		}

	case key.Matches(msg, m.keys.Filter):
		m.mode = creditFiltering
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.ClearFilter):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.Override):
		return m, m.openOverrideForm()

	case key.Matches(msg, m.keys.Reset):
		return m, m.openResetForm()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampCursor()
	return m, nil
}

// toggle credits or clears the lesson under the cursor. On a phase header
// it credits every lesson unless all are already credited, in which case
// it clears them.
func (m *creditModel) toggle(row creditRow) {
	var err error
	if row.lesson != nil {
		err = m.session.ToggleEvent(row.lesson.Event.ID, !row.lesson.Credited)
	} else {
		credited := credit.PhaseStateOf(row.group) != domain.PhaseAll
		err = m.session.TogglePhase(row.group.Phase.ID, credited)
	}
	if err != nil {
		m.status = err.Error()
	}
}

func (m *creditModel) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			m.filter.SetValue("")
			m.filter.Blur()
			m.mode = creditBrowse
			m.cursor = 0
			return m, nil
		case tea.KeyEnter:
			m.filter.Blur()
			m.mode = creditBrowse
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *creditModel) openOverrideForm() tea.Cmd {
	m.overrideCategory = domain.Categories[0]
	m.overrideText = ""
	m.form = newOverrideForm(&m.overrideCategory, &m.overrideText)
	m.formKind = formOverride
	return m.startForm()
}

// openResetForm stages a reset in the session; the reset only happens if
// the confirmation completes with yes and nothing changed in between.
func (m *creditModel) openResetForm() tea.Cmd {
	m.resetTicket = m.session.RequestReset()
	m.resetConfirmed = false
	m.form = newResetForm(&m.resetConfirmed)
	m.formKind = formReset
	return m.startForm()
}

func (m *creditModel) startForm() tea.Cmd {
	m.mode = creditForm
	if m.width > 0 {
		m.form = m.form.WithWidth(formWidth(m.width))
	}
	return m.form.Init()
}

func (m *creditModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm(false)
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.closeForm(true)
		return m, nil
	case huh.StateAborted:
		m.closeForm(false)
		return m, nil
	}
	return m, cmd
}

// closeForm applies (completed) or discards the open form's result and
// returns to browse mode.
func (m *creditModel) closeForm(completed bool) {
	switch m.formKind {
	case formOverride:
		if !completed {
			m.status = "Override cancelled."
			break
		}
		if err := m.session.SetOverrideText(m.overrideCategory, m.overrideText); err != nil {
			m.status = err.Error()
			break
		}
		minutes, _ := m.session.Override(m.overrideCategory)
		m.status = fmt.Sprintf("%s override set to %s.", m.overrideCategory.Label(), domain.FormatClock(minutes))

	case formReset:
		if !completed || !m.resetConfirmed {
			m.session.CancelReset()
			m.status = "Reset cancelled."
			break
		}
		if err := m.session.ConfirmReset(m.resetTicket); err != nil {
			m.status = fmt.Sprintf("Reset not applied: %v.", err)
			break
		}
		m.status = "All credits and overrides cleared."
	}

	m.form = nil
	m.formKind = formNone
	m.mode = creditBrowse
}

// rows flattens the phase tree into visible lines. With a filter, phases
// without a matching lesson are hidden and matching lessons are always
// shown.
func (m *creditModel) rows() []creditRow {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var rows []creditRow
	for _, g := range m.session.Registry().Phases() {
		if query == "" {
			rows = append(rows, creditRow{group: g})
			if m.expanded[g.Phase.ID] {
				for _, l := range g.Lessons {
					rows = append(rows, creditRow{group: g, lesson: l})
				}
			}
			continue
		}

		var matched []creditRow
		for _, l := range g.Lessons {
			if lessonMatches(l, query) {
				matched = append(matched, creditRow{group: g, lesson: l})
			}
		}
		if len(matched) == 0 {
			continue
		}
		rows = append(rows, creditRow{group: g})
		rows = append(rows, matched...)
	}
	return rows
}

func lessonMatches(l *credit.Lesson, query string) bool {
	return strings.Contains(strings.ToLower(l.Event.Title), query) ||
		strings.Contains(strings.ToLower(l.Event.Code), query)
}

func (m *creditModel) rowAt(rows []creditRow, i int) (creditRow, bool) {
	if i < 0 || i >= len(rows) {
		return creditRow{}, false
	}
	return rows[i], true
}

func (m *creditModel) phaseRowIndex(g *credit.PhaseGroup) int {
	for i, row := range m.rows() {
		if row.lesson == nil && row.group == g {
			return i
		}
	}
	return 0
}

func (m *creditModel) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func formWidth(termWidth int) int {
	return min(termWidth, 72)
}
