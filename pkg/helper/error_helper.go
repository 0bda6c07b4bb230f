package helper

import (
	"net/http"

	"ucode/ucode_go_query_builder_service/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// StatusFromDatabaseError maps a database error to the HTTP status the API
// surface should answer with. The error text itself is passed to the user
// verbatim — execution errors are reported, never reinterpreted or retried.
func StatusFromDatabaseError(err error, log logger.LoggerI, message string) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		log.Error(message+": "+err.Error(), logger.String("code", pgErr.Code), logger.String("column", pgErr.ColumnName))

		switch pgErr.Code {
		case "23505":
			// Unique violation
			return http.StatusConflict
		case "23503", "23514", "23502":
			// Foreign key / check / not null violation
			return http.StatusBadRequest
		case "42P01", "3D000":
			// Undefined table, database not found
			return http.StatusNotFound
		case "42703", "42601":
			// Undefined column, syntax error
			return http.StatusBadRequest
		case "28P01":
			// Invalid password
			return http.StatusUnauthorized
		case "08006":
			// Connection failure
			return http.StatusServiceUnavailable
		case "40P01":
			// Deadlock detected
			return http.StatusConflict
		case "57014":
			// Query canceled (statement timeout)
			return http.StatusRequestTimeout
		}

		return http.StatusInternalServerError
	}

	log.Error(message, logger.Error(err))
	return http.StatusInternalServerError
}
