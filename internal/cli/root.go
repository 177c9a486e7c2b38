package cli

import (
	"github.com/alexanderramin/tally/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Imports service.ImportService
	Syllabi service.SyllabusService
	Credits service.CreditService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// RunProgram runs a bubbletea model to completion. Nil uses a
	// full-screen tea.Program.
	RunProgram func(m tea.Model) (tea.Model, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) run(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tally",
		Short:         "Credit prior training against syllabus requirements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSyllabusCmd(app),
		newCreditCmd(app),
	)

	return root
}
