package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/couponhub-api/internal/domain"
)

// Querier es la superficie común de *pgxpool.Pool y pgx.Tx usada por los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB es un Querier que además abre transacciones (pool).
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

// isNumericOutOfRange verifica si un valor no cabe en la columna numérica (22003).
func isNumericOutOfRange(err error) bool {
	return pgCode(err) == "22003"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// connect ejecuta un INSERT ... SELECT que enlaza ownerID con cada id existente de ids.
// Si alguna fila relacionada no existe el número de filas insertadas no cuadra y se rechaza la operación.
func connect(ctx context.Context, q Querier, query string, ownerID int64, ids []int64, relation string) error {
	if len(ids) == 0 {
		return nil
	}
	tag, err := q.Exec(ctx, query, ownerID, ids)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrRelatedNotFound, relation)
		}
		return fmt.Errorf("connect %s: %w", relation, err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("%w: %s (%d de %d ids existen)", domain.ErrRelatedNotFound, relation, tag.RowsAffected(), len(ids))
	}
	return nil
}
