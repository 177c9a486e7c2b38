package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tally/internal/cli"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	syllabusRepo := repository.NewSQLiteSyllabusRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	requirementRepo := repository.NewSQLiteRequirementRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Imports: service.NewImportService(uow, observer),
		Syllabi: service.NewSyllabusService(syllabusRepo, phaseRepo, eventRepo, requirementRepo, observer),
		Credits: service.NewCreditService(syllabusRepo, phaseRepo, eventRepo, requirementRepo, observer),
	}

	// Detect interactive terminal for the credit editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
