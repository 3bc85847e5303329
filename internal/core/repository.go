// AngelaMos | 2026
// repository.go

package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Table describes how an entity maps onto a relational table. Columns are
// read by every SELECT; Insert and Update name the columns written by Add
// and Update as sqlx named parameters; Returning lists server-assigned
// columns scanned back after an insert.
type Table struct {
	Name      string
	Columns   []string
	Insert    []string
	Update    []string
	Returning []string
	OrderBy   string
}

// CRUD is the generic gateway shared by the entity repositories. Every
// method is a single statement and therefore atomic on its own.
type CRUD[T any] struct {
	db    DBTX
	table Table
}

func NewCRUD[T any](db DBTX, table Table) *CRUD[T] {
	if table.OrderBy == "" {
		table.OrderBy = "created_at DESC"
	}
	return &CRUD[T]{db: db, table: table}
}

func (c *CRUD[T]) SelectColumns() string {
	return strings.Join(c.table.Columns, ", ")
}

func (c *CRUD[T]) GetAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s",
		c.SelectColumns(), c.table.Name, c.table.OrderBy,
	)

	items := []T{}
	if err := c.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table.Name, err)
	}

	return items, nil
}

// GetByID treats a malformed id as a missing row, since every primary key
// in the schema is a UUID.
func (c *CRUD[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if uuid.Validate(id) != nil {
		return nil, fmt.Errorf("get %s: %w", c.table.Name, ErrNotFound)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1",
		c.SelectColumns(), c.table.Name,
	)

	var item T
	if err := c.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, fmt.Errorf("get %s: %w", c.table.Name, TranslateError(err))
	}

	return &item, nil
}

// FindOne returns the first row matching column = value.
func (c *CRUD[T]) FindOne(
	ctx context.Context,
	column string,
	value any,
) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		c.SelectColumns(), c.table.Name, column,
	)

	var item T
	if err := c.db.GetContext(ctx, &item, query, value); err != nil {
		return nil, fmt.Errorf(
			"get %s by %s: %w", c.table.Name, column, TranslateError(err),
		)
	}

	return &item, nil
}

// FindAll returns every row matching column = value.
func (c *CRUD[T]) FindAll(
	ctx context.Context,
	column string,
	value any,
) ([]T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY %s",
		c.SelectColumns(), c.table.Name, column, c.table.OrderBy,
	)

	items := []T{}
	if err := c.db.SelectContext(ctx, &items, query, value); err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", c.table.Name, column, err)
	}

	return items, nil
}

// Add inserts the instance and scans the Returning columns back into it.
func (c *CRUD[T]) Add(ctx context.Context, instance *T) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		c.table.Name,
		strings.Join(c.table.Insert, ", "),
		namedParams(c.table.Insert),
	)
	if len(c.table.Returning) == 0 {
		if _, err := sqlx.NamedExecContext(ctx, c.db, query, instance); err != nil {
			return fmt.Errorf("create %s: %w", c.table.Name, TranslateError(err))
		}
		return nil
	}

	query += " RETURNING " + strings.Join(c.table.Returning, ", ")

	if err := c.namedScan(ctx, query, instance); err != nil {
		return fmt.Errorf("create %s: %w", c.table.Name, err)
	}

	return nil
}

// Update writes the Update columns of instance and refreshes updated_at.
func (c *CRUD[T]) Update(ctx context.Context, instance *T) error {
	sets := make([]string, 0, len(c.table.Update)+1)
	for _, col := range c.table.Update {
		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = :id RETURNING updated_at",
		c.table.Name,
		strings.Join(sets, ", "),
	)

	if err := c.namedScan(ctx, query, instance); err != nil {
		return fmt.Errorf("update %s: %w", c.table.Name, err)
	}

	return nil
}

// Delete removes the row; dependent rows go with it through the foreign
// key cascades declared in the schema.
func (c *CRUD[T]) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return fmt.Errorf("delete %s: %w", c.table.Name, ErrNotFound)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", c.table.Name)

	result, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.table.Name, TranslateError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.table.Name, err)
	}

	if rows == 0 {
		return fmt.Errorf("delete %s: %w", c.table.Name, ErrNotFound)
	}

	return nil
}

func (c *CRUD[T]) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table.Name)

	var total int
	if err := c.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.table.Name, err)
	}

	return total, nil
}

func (c *CRUD[T]) namedScan(ctx context.Context, query string, dest *T) error {
	rows, err := sqlx.NamedQueryContext(ctx, c.db, query, dest)
	if err != nil {
		return TranslateError(err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return TranslateError(err)
		}
		return ErrNotFound
	}

	if err := rows.StructScan(dest); err != nil {
		return err
	}

	return TranslateError(rows.Err())
}

func namedParams(cols []string) string {
	params := make([]string, len(cols))
	for i, col := range cols {
		params[i] = ":" + col
	}
	return strings.Join(params, ", ")
}
