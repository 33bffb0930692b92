package base

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Querier то, что нужно репозиториям от pgxpool.Pool (или pgx.Tx)
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository базовый репозиторий с общими методами
type Repository struct {
	db Querier
}

func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// QueryRow выполняет запрос и возвращает одну строку
func (r *Repository) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return r.db.QueryRow(ctx, query, args...)
}

// IsNotFound проверяет является ли ошибка "строка не найдена" (в том числе обёрнутая)
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
