package config

const (
	// DefaultSavedQueryLimit caps saved-query listings when the caller
	// sends no paging.
	DefaultSavedQueryLimit = 20

	// MaxExportRows caps how many rows an excel export will pull.
	MaxExportRows = 100000

	DateTimeFormat = "2006-01-02 15:04:05"
)
