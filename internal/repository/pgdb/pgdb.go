package pgdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/priyansh911911/Furniture-B/pkg/tr"
)

const uniqueViolationCode = "23505"

// querier объединяет pgxpool.Pool и pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// q возвращает транзакцию из контекста, если она есть, иначе пул.
// Так один и тот же запрос работает и внутри TxManager.WithinTx, и вне его.
func q(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}
	return pool
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// isValidUUID отсекает мусорные идентификаторы до похода в базу.
func isValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
