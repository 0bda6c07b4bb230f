package models

// ColumnMeta describes one column as seen by the schema catalog.
type ColumnMeta struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	IsPrimaryKey bool   `json:"is_primary_key"`
	IsForeignKey bool   `json:"is_foreign_key"`
}

// TableMeta describes one table exposed to the query console. RowCount is
// the planner estimate from pg_class, not an exact count.
type TableMeta struct {
	Name     string       `json:"name"`
	RowCount int64        `json:"row_count"`
	Columns  []ColumnMeta `json:"columns"`
}

type GetAllTablesResponse struct {
	Tables []TableMeta `json:"tables"`
	Count  int64       `json:"count"`
}
