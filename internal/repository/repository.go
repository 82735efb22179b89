package repository

//go:generate mockgen -source=repository.go -destination=mock/mock_repository.go

import (
	"context"
	"database/sql"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*AttemptsR
}

// NewRepository wraps db. driver selects the placeholder style of the queries.
func NewRepository(db QueryI, driver string) Repository {
	return Repository{
		AttemptsR: NewAttemptsRepository(db, driver),
	}
}
