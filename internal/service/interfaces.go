package service

import (
	"context"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/importer"
)

type ImportService interface {
	ImportSyllabus(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportSyllabusFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error)
}

type SyllabusService interface {
	List(ctx context.Context) ([]app.SyllabusListItem, error)
	Resolve(ctx context.Context, ref string) (*domain.Syllabus, error)
	Show(ctx context.Context, ref string) (*app.SyllabusDetail, error)
	Delete(ctx context.Context, ref string) error
}

type CreditService interface {
	OpenSession(ctx context.Context, ref string) (*app.CreditSession, error)
	Reconcile(ctx context.Context, req app.CreditRequest) (*app.CreditResponse, error)
}

var (
	_ app.ImportSyllabusUseCase    = (ImportService)(nil)
	_ app.ListSyllabiUseCase       = (SyllabusService)(nil)
	_ app.ShowSyllabusUseCase      = (SyllabusService)(nil)
	_ app.DeleteSyllabusUseCase    = (SyllabusService)(nil)
	_ app.OpenCreditSessionUseCase = (CreditService)(nil)
	_ app.ReconcileUseCase         = (CreditService)(nil)
)
