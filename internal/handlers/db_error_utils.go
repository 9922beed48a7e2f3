package handlers

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isForeignKeyConstraintError checks if the error corresponds to a Postgres
// foreign key constraint failure. This helps translate DB failures into clear
// client-facing validation responses instead of generic 500 errors.
func isForeignKeyConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
