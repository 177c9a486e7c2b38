package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSyllabusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "syllabus",
		Aliases: []string{"syl"},
		Short:   "Manage the syllabus catalog",
	}

	cmd.AddCommand(
		newSyllabusImportCmd(app),
		newSyllabusListCmd(app),
		newSyllabusShowCmd(app),
		newSyllabusDeleteCmd(app),
	)

	return cmd
}

func newSyllabusImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a syllabus from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Imports.ImportSyllabus(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}

func newSyllabusListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog syllabi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Syllabi.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSyllabusList(items))
			return nil
		},
	}
}

func newSyllabusShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a syllabus with its phases, lessons and requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Syllabi.Show(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSyllabusShow(detail))
			return nil
		},
	}
}

func newSyllabusDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a syllabus and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Syllabi.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Syllabi.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted syllabus %s [%s]\n", s.Name, s.DisplayID())
			return nil
		},
	}
}
