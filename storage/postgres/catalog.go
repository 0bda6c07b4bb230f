package postgres

import (
	"context"

	"ucode/ucode_go_query_builder_service/models"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	psqlpool "ucode/ucode_go_query_builder_service/pool"

	"github.com/pkg/errors"
)

type catalogRepo struct {
	db  *psqlpool.Pool
	log logger.LoggerI
}

func NewCatalogRepo(db *psqlpool.Pool, log logger.LoggerI) *catalogRepo {
	return &catalogRepo{db: db, log: log}
}

// saved_queries and the migrate bookkeeping table are the console's own
// furniture, not user data.
const listTablesQuery = `
	SELECT
		c.relname,
		GREATEST(c.reltuples::bigint, 0)
	FROM pg_class c
	JOIN pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = 'public'
	  AND c.relkind = 'r'
	  AND c.relname NOT IN ('saved_queries', 'schema_migrations')
	ORDER BY c.relname`

const listColumnsQuery = `
	SELECT
		cols.table_name,
		cols.column_name,
		cols.data_type,
		EXISTS (
			SELECT 1
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage kcu
				ON kcu.constraint_name = tc.constraint_name
				AND kcu.table_schema = tc.table_schema
			WHERE tc.table_schema = cols.table_schema
			  AND tc.table_name = cols.table_name
			  AND kcu.column_name = cols.column_name
			  AND tc.constraint_type = 'PRIMARY KEY'
		),
		EXISTS (
			SELECT 1
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage kcu
				ON kcu.constraint_name = tc.constraint_name
				AND kcu.table_schema = tc.table_schema
			WHERE tc.table_schema = cols.table_schema
			  AND tc.table_name = cols.table_name
			  AND kcu.column_name = cols.column_name
			  AND tc.constraint_type = 'FOREIGN KEY'
		)
	FROM information_schema.columns cols
	WHERE cols.table_schema = 'public'
	ORDER BY cols.table_name, cols.ordinal_position`

func (r *catalogRepo) ListTables(ctx context.Context) (*models.GetAllTablesResponse, error) {
	dbSpan, ctx := span.StartSpanFromContext(ctx, "catalog.ListTables", nil)
	defer dbSpan.Finish()

	rows, err := r.db.Query(ctx, listTablesQuery)
	if err != nil {
		return nil, errors.Wrap(err, "list tables")
	}
	defer rows.Close()

	var (
		tables []models.TableMeta
		index  = make(map[string]int)
	)

	for rows.Next() {
		var table models.TableMeta
		if err := rows.Scan(&table.Name, &table.RowCount); err != nil {
			return nil, errors.Wrap(err, "scan table")
		}
		table.Columns = []models.ColumnMeta{}
		index[table.Name] = len(tables)
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}

	colRows, err := r.db.Query(ctx, listColumnsQuery)
	if err != nil {
		return nil, errors.Wrap(err, "list columns")
	}
	defer colRows.Close()

	for colRows.Next() {
		var (
			tableName string
			column    models.ColumnMeta
		)
		if err := colRows.Scan(&tableName, &column.Name, &column.Type, &column.IsPrimaryKey, &column.IsForeignKey); err != nil {
			return nil, errors.Wrap(err, "scan column")
		}

		i, ok := index[tableName]
		if !ok {
			continue
		}
		tables[i].Columns = append(tables[i].Columns, column)
	}
	if err := colRows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}

	return &models.GetAllTablesResponse{
		Tables: tables,
		Count:  int64(len(tables)),
	}, nil
}
