package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/models"
	"github.com/jackc/pgerrcode"
)

// psql is the statement builder shared by every todo query. PostgreSQL uses
// numbered ($1, $2, ...) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
//
// Ownership isolation lives here: every owner-scoped method folds the
// caller's user ID into the WHERE clause, so the rest of the application
// never has to compare owner IDs by hand.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

// ListByOwner returns every todo owned by the given user, oldest first.
// An owner with no todos yields an empty (non-nil) slice.
func (r *todoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	query, args, err := psql.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("todo_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTodos(ctx, query, args...)
}

// ListAll returns every todo of every user, oldest first. Admin-only.
func (r *todoRepository) ListAll(ctx context.Context) ([]models.Todo, error) {
	query, args, err := psql.Select(todoColumns...).
		From("todos").
		OrderBy("todo_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTodos(ctx, query, args...)
}

// FindByIDAndOwner returns the todo with the given ID if it belongs to the
// given owner. A missing todo and a foreign todo both yield
// [ErrTodoNotFound].
func (r *todoRepository) FindByIDAndOwner(ctx context.Context, todoID, ownerID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"todo_id": todoID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todo models.Todo
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTodo(row, &todo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		log.Err(err).Str("func", "*todoRepository.FindByIDAndOwner").Msg("error: scanning error")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return todo, nil
}

// Create persists a new todo for its owner and returns the fully populated
// record (server-assigned ID and timestamps).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrOwnerNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *todoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("todos").
		Columns("title", "description", "priority", "completed", "owner_id").
		Values(todo.Title, todo.Description, todo.Priority, todo.Completed, todo.OwnerID).
		Suffix("RETURNING " + joinColumns(todoColumns)).
		ToSql()
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Todo
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanTodo(row, &created); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Todo{}, ErrOwnerNotFound
		case "":
			log.Err(err).Str("func", "*todoRepository.Create").Msg("error: scanning error")
			return models.Todo{}, err
		default:
			log.Err(err).
				Str("func", "*todoRepository.Create").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("unexpected DB error")
			return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// Update performs a full field replace of the todo identified by TodoID and
// OwnerID. Missing and foreign todos both yield [ErrTodoNotFound].
func (r *todoRepository) Update(ctx context.Context, todo models.Todo) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("priority", todo.Priority).
		Set("completed", todo.Completed).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"todo_id": todo.TodoID, "owner_id": todo.OwnerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, log, "*todoRepository.Update", query, args...)
}

// DeleteByIDAndOwner removes the todo with the given ID if it belongs to the
// given owner. Missing and foreign todos both yield [ErrTodoNotFound].
func (r *todoRepository) DeleteByIDAndOwner(ctx context.Context, todoID, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("todos").
		Where(sq.Eq{"todo_id": todoID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, log, "*todoRepository.DeleteByIDAndOwner", query, args...)
}

// DeleteByID removes the todo with the given ID regardless of owner.
// Admin-only. Returns [ErrTodoNotFound] when no such todo exists.
func (r *todoRepository) DeleteByID(ctx context.Context, todoID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("todos").
		Where(sq.Eq{"todo_id": todoID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, log, "*todoRepository.DeleteByID", query, args...)
}

func (r *todoRepository) queryTodos(ctx context.Context, query string, args ...any) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.queryTodos").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var todo models.Todo
		if err := scanTodo(rows, &todo); err != nil {
			log.Err(err).Str("func", "*todoRepository.queryTodos").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

// execExpectingRow runs a DML statement that must affect exactly one row and
// maps an empty result to [ErrTodoNotFound].
func (r *todoRepository) execExpectingRow(ctx context.Context, log *logger.Logger, fn, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner, todo *models.Todo) error {
	return row.Scan(
		&todo.TodoID,
		&todo.Title,
		&todo.Description,
		&todo.Priority,
		&todo.Completed,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
