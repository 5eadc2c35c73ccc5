package store

import (
	"bookreviews/internal/usecase"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation maps duplicate-key constraint violations onto the
// domain's conflict error so handlers answer 409 instead of 500.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usecase.ErrAlreadyExists
	}
	return err
}
