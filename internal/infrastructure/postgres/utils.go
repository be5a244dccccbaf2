package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation devuelve el PgError si err es una violación de constraint
// único (23505); nil en cualquier otro caso. El nombre del constraint permite
// distinguir username duplicado, perfil duplicado o la carrera del primer admin.
func uniqueViolation(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr
	}
	return nil
}
