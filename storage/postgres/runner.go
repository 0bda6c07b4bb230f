package postgres

import (
	"context"
	"time"

	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/models"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	psqlpool "ucode/ucode_go_query_builder_service/pool"
	"ucode/ucode_go_query_builder_service/sqlgen"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type runnerRepo struct {
	db  *psqlpool.Pool
	cfg config.Config
	log logger.LoggerI
}

func NewRunnerRepo(db *psqlpool.Pool, cfg config.Config, log logger.LoggerI) *runnerRepo {
	return &runnerRepo{db: db, cfg: cfg, log: log}
}

// Run executes a generated statement with its bound arguments. SELECT
// statements come back as rows; everything else reports affected rows.
// Errors travel back verbatim.
func (r *runnerRepo) Run(ctx context.Context, stmt sqlgen.Statement) (*models.QueryResult, error) {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "runner.Run", stmt.SQL)
	defer dbSpan.Finish()

	if stmt.Empty() {
		return nil, errors.New("nothing to execute")
	}

	started := time.Now()

	if stmt.Kind != models.StatementSelect {
		tag, err := r.db.Exec(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return nil, err
		}

		return &models.QueryResult{
			Columns:         []string{},
			Rows:            []map[string]any{},
			ExecutionTimeMs: time.Since(started).Milliseconds(),
			AffectedRows:    tag.RowsAffected(),
		}, nil
	}

	rows, err := r.db.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := make([]string, len(rows.FieldDescriptions()))
	for i, fd := range rows.FieldDescriptions() {
		columns[i] = string(fd.Name)
	}

	results := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, errors.Wrap(err, "get values")
		}

		rowData := make(map[string]any, len(columns))
		for i, col := range columns {
			if value, ok := values[i].([16]uint8); ok { // uuid
				rowData[col] = uuid.UUID(value).String()
				continue
			}
			rowData[col] = values[i]
		}
		results = append(results, rowData)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.QueryResult{
		Columns:         columns,
		Rows:            results,
		ExecutionTimeMs: time.Since(started).Milliseconds(),
	}, nil
}
