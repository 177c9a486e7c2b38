package app

import (
	"context"

	"github.com/alexanderramin/tally/internal/importer"
)

type ImportSyllabusUseCase interface {
	ImportSyllabus(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSyllabusFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ListSyllabiUseCase interface {
	List(ctx context.Context) ([]SyllabusListItem, error)
}

type ShowSyllabusUseCase interface {
	Show(ctx context.Context, ref string) (*SyllabusDetail, error)
}

type DeleteSyllabusUseCase interface {
	Delete(ctx context.Context, ref string) error
}

type OpenCreditSessionUseCase interface {
	OpenSession(ctx context.Context, ref string) (*CreditSession, error)
}

type ReconcileUseCase interface {
	Reconcile(ctx context.Context, req CreditRequest) (*CreditResponse, error)
}
