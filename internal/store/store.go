// Package store implements the typed data-access layer over the relational
// store. Each entity gets a table template bound to its SQL, parameter
// binders and row scanner; batch lookups exist wherever the service layer
// hydrates references.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
)

// Querier is satisfied by both *sql.DB and *sql.Tx: every store method takes
// one, so the same call works standalone or inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// table binds one entity type to its SQL and row mapping. The insert
// statement must end with RETURNING id; the update statement takes the
// column values followed by the id.
type table[T any] struct {
	kind string

	insertSQL     string
	updateSQL     string
	deleteSQL     string
	selectByIDSQL string
	selectAllSQL  string

	insertArgs func(*T) []any
	updateArgs func(*T) []any
	scan       func(scanner) (*T, error)

	id    func(*T) int64
	setID func(*T, int64)
}

// save executes the insert and writes the generated id back onto the entity.
func (t *table[T]) save(ctx context.Context, q Querier, e *T) error {
	var id int64
	if err := q.QueryRowContext(ctx, t.insertSQL, t.insertArgs(e)...).Scan(&id); err != nil {
		return apperror.Databasef(err, "saving %s", t.kind)
	}

	t.setID(e, id)

	return nil
}

// update requires a saved entity and exactly one affected row.
func (t *table[T]) update(ctx context.Context, q Querier, e *T) error {
	id := t.id(e)
	if id == 0 {
		return apperror.Databasef(nil, "id is required to update %s", t.kind)
	}

	res, err := q.ExecContext(ctx, t.updateSQL, append(t.updateArgs(e), id)...)
	if err != nil {
		return apperror.Databasef(err, "updating %s", t.kind)
	}

	return t.checkOneRow(res, "updating", id)
}

// delete removes the row by id with the same cardinality rule as update.
func (t *table[T]) delete(ctx context.Context, q Querier, id int64) error {
	res, err := q.ExecContext(ctx, t.deleteSQL, id)
	if err != nil {
		return apperror.Databasef(err, "deleting %s with id=%d", t.kind, id)
	}

	return t.checkOneRow(res, "deleting", id)
}

func (t *table[T]) checkOneRow(res sql.Result, op string, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.Databasef(err, "%s %s with id=%d", op, t.kind, id)
	}

	switch {
	case affected == 0:
		return apperror.Databasef(apperror.ErrNotFound, "%s with id=%d does not exist", t.kind, id)
	case affected > 1:
		return apperror.Databasef(nil, "%s %s with id=%d: expected 1 row, affected %d", op, t.kind, id, affected)
	default:
		return nil
	}
}

// findByID returns the entity or apperror.ErrNotFound.
func (t *table[T]) findByID(ctx context.Context, q Querier, id int64) (*T, error) {
	e, err := t.scan(q.QueryRowContext(ctx, t.selectByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrNotFound
		}

		return nil, apperror.Databasef(err, "fetching %s with id=%d", t.kind, id)
	}

	return e, nil
}

// findAll returns every row ordered by id ascending.
func (t *table[T]) findAll(ctx context.Context, q Querier) ([]*T, error) {
	rows, err := q.QueryContext(ctx, t.selectAllSQL)
	if err != nil {
		return nil, apperror.Databasef(err, "listing %s", t.kind)
	}
	defer rows.Close()

	var out []*T

	for rows.Next() {
		e, err := t.scan(rows)
		if err != nil {
			return nil, apperror.Databasef(err, "scanning %s", t.kind)
		}

		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.Databasef(err, "iterating %s rows", t.kind)
	}

	return out, nil
}

// inClause renders "$start, $start+1, ..." with n placeholders for an
// IN-list query.
func inClause(n, start int) string {
	var b strings.Builder
	for i := range n {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteByte('$')
		b.WriteString(strconv.Itoa(start + i))
	}

	return b.String()
}

// idArgs converts an id set into the argument slice for an IN-list query.
func idArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return args
}
