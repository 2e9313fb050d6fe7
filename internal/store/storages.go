package store

import (
	"context"
	"fmt"

	"github.com/fyan514/go-todo-service/internal/config"
	"github.com/fyan514/go-todo-service/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is built once at startup and passed explicitly to the
// service layer; no ambient globals are involved.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	db *DB
}

// NewStorages connects to PostgreSQL and constructs all repositories on top
// of the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TodoRepository: NewTodoRepository(db, logger),
		db:             db,
	}, nil
}

// DB exposes the underlying connection for migrations and shutdown.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
