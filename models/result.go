package models

// QueryResult is what the execution runner hands back for display. For
// SELECT statements Columns/Rows are filled; for the other kinds only
// AffectedRows is meaningful. The core never reinterprets execution
// errors, so they travel as plain Go errors, not as part of this struct.
type QueryResult struct {
	Columns         []string         `json:"columns"`
	Rows            []map[string]any `json:"rows"`
	ExecutionTimeMs int64            `json:"execution_time_ms"`
	AffectedRows    int64            `json:"affected_rows,omitempty"`
}

// ExportResult is the outcome of an excel export: the object storage link
// of the uploaded report.
type ExportResult struct {
	Link     string `json:"link"`
	RowCount int    `json:"row_count"`
}
