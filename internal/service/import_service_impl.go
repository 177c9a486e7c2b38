package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/importer"
	"github.com/alexanderramin/tally/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSyllabus(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema, filePath)
}

func (s *importService) ImportSyllabusFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema, "")
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema, source string) (result *app.ImportResult, err error) {
	span := startUseCase(s.observer, "import-syllabus", map[string]any{
		"code": strings.ToUpper(schema.Syllabus.Code),
	})
	if source != "" {
		span.fields["file"] = source
	}
	defer func() { span.finish(ctx, err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		span.fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	span.fields["phase_count"] = len(generated.Phases)
	span.fields["event_count"] = len(generated.Events)

	// Persist all entities atomically
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSyllabi := repository.NewSQLiteSyllabusRepo(tx)
		txPhases := repository.NewSQLitePhaseRepo(tx)
		txEvents := repository.NewSQLiteEventRepo(tx)
		txReqs := repository.NewSQLiteRequirementRepo(tx)

		if _, err := txSyllabi.GetByCode(ctx, generated.Syllabus.Code); err == nil {
			return fmt.Errorf("syllabus %s already exists", generated.Syllabus.Code)
		}
		if err := txSyllabi.Create(ctx, generated.Syllabus); err != nil {
			return fmt.Errorf("creating syllabus: %w", err)
		}
		for _, p := range generated.Phases {
			if err := txPhases.Create(ctx, p); err != nil {
				return fmt.Errorf("creating phase %q: %w", p.Title, err)
			}
		}
		for _, e := range generated.Events {
			if err := txEvents.Create(ctx, e); err != nil {
				return fmt.Errorf("creating event %q: %w", e.Label(), err)
			}
		}
		for _, r := range generated.Requirements {
			if err := txReqs.Upsert(ctx, r); err != nil {
				return fmt.Errorf("setting %s requirement: %w", r.Category, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &app.ImportResult{
		Syllabus:         generated.Syllabus,
		PhaseCount:       len(generated.Phases),
		EventCount:       len(generated.Events),
		RequirementCount: len(generated.Requirements),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
