package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/credit"
	"github.com/spf13/cobra"
)

// creditJSON is the --json output: the syllabus identity plus the summary.
type creditJSON struct {
	Syllabus string `json:"syllabus"`
	Name     string `json:"name"`
	credit.Summary
}

func newCreditCmd(app *App) *cobra.Command {
	var (
		events      []string
		phases      []string
		asJSON      bool
		interactive bool
	)
	overrides := newOverrideFlag()

	cmd := &cobra.Command{
		Use:   "credit ID",
		Short: "Reconcile credited lessons against a syllabus's requirements",
		Long: `Credit lessons of a catalog syllabus and show how much training time
remains per category.

With --event, --phase or --override the reconciliation is printed once.
Without them, and when stdin is a terminal, an interactive editor opens.
Events are referenced by ID, #seq or code; phases by ID, #seq or title.`,
		Example: `  tally credit IFR01 --phase "Basic Instrument" --event XC-1
  tally credit IFR01 --override ifr_dual=50:00 --json
  tally credit IFR01 --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			hasCredits := len(events) > 0 || len(phases) > 0 || overrides.Len() > 0

			if interactive && (hasCredits || asJSON) {
				return errors.New("--interactive cannot be combined with --event, --phase, --override or --json")
			}
			if interactive || (!hasCredits && !asJSON && app.interactive()) {
				return runCreditTUI(ctx, app, cmd.OutOrStdout(), args[0])
			}

			resp, err := app.Credits.Reconcile(ctx, buildCreditRequest(args[0], events, phases, overrides))
			if err != nil {
				return err
			}
			if asJSON {
				return writeCreditJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReconciliation(resp.Syllabus, resp.Summary))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&events, "event", nil, "Credit a lesson (ID, #seq or code); repeatable")
	cmd.Flags().StringArrayVar(&phases, "phase", nil, "Credit every lesson of a phase (ID, #seq or title); repeatable")
	cmd.Flags().Var(overrides, "override", "Set a category's credited total, e.g. ifr_dual=12:30; repeatable")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reconciliation as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive credit editor")

	return cmd
}

func buildCreditRequest(ref string, events, phases []string, overrides *overrideFlag) app.CreditRequest {
	return app.CreditRequest{
		SyllabusRef: ref,
		Events:      events,
		Phases:      phases,
		Overrides:   overrides.Values(),
	}
}

func writeCreditJSON(w io.Writer, resp *app.CreditResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(creditJSON{
		Syllabus: resp.Syllabus.DisplayID(),
		Name:     resp.Syllabus.Name,
		Summary:  resp.Summary,
	})
}

// runCreditTUI opens the editor and prints the final reconciliation once
// it exits.
func runCreditTUI(ctx context.Context, app *App, out io.Writer, ref string) error {
	cs, err := app.Credits.OpenSession(ctx, ref)
	if err != nil {
		return err
	}
	if _, err := app.run(newCreditModel(cs.Syllabus, cs.Session)); err != nil {
		return fmt.Errorf("credit editor: %w", err)
	}
	fmt.Fprintln(out, formatter.FormatReconciliation(cs.Syllabus, cs.Session.Summary()))
	return nil
}
