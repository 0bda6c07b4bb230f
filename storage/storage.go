package storage

import (
	"context"

	"ucode/ucode_go_query_builder_service/models"
	"ucode/ucode_go_query_builder_service/sqlgen"
)

type StorageI interface {
	SavedQuery() SavedQueryRepoI
	Catalog() CatalogRepoI
	Runner() RunnerRepoI
	CloseDB()
}

// SavedQueryRepoI persists named query models for reuse. A failed call
// never leaves a partially applied record behind.
type SavedQueryRepoI interface {
	Create(ctx context.Context, req *models.SavedQuery) (id string, err error)
	GetByID(ctx context.Context, id string) (resp *models.SavedQuery, err error)
	GetAll(ctx context.Context, req *models.GetAllSavedQueriesRequest) (resp *models.GetAllSavedQueriesResponse, err error)
	Update(ctx context.Context, req *models.SavedQuery) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepoI exposes table and column metadata for the console to offer
// as selectable targets. No caching happens here; staleness is the
// database's problem.
type CatalogRepoI interface {
	ListTables(ctx context.Context) (resp *models.GetAllTablesResponse, err error)
}

// RunnerRepoI executes generated statements. Execution errors come back
// verbatim; the caller decides how to show them.
type RunnerRepoI interface {
	Run(ctx context.Context, stmt sqlgen.Statement) (resp *models.QueryResult, err error)
	Export(ctx context.Context, stmt sqlgen.Statement, name string) (resp *models.ExportResult, err error)
}
