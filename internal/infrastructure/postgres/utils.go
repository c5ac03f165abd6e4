package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

// isSerializationFailure verdadero si la tx serializable fue abortada por otra concurrente (40001).
func isSerializationFailure(err error) bool {
	return hasCode(err, pgerrcode.SerializationFailure)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}

// normalizePage aplica los límites de paginación comunes a los listados.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
