// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkpress/internal/database"
	"inkpress/internal/metrics"
	"inkpress/internal/models"
)

// ErrUnknownIndex is returned when a lookup names an index the collection
// does not declare.
var ErrUnknownIndex = errors.New("unknown index")

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// index describes a secondary index: the column it covers and whether the
// value must be unique within the collection.
type index struct {
	column string
	unique bool
}

// schema binds a record type to its table. columns[0] is the primary key
// and values must return one value per column in the same order.
type schema[T any] struct {
	kind     string
	columns  []string
	indexes  map[string]index
	counters map[string]string
	id       func(*T) int64
	scan     func(scanner) (*T, error)
	values   func(*T) ([]any, error)
}

// Collection is one indexed record kind in the store. Every method is a
// single SQL statement, so no partial state is ever observable.
type Collection[T any] struct {
	db *sql.DB
	s  schema[T]

	selectSQL string
	insertSQL string
	upsertSQL string
}

func newCollection[T any](db *sql.DB, s schema[T]) *Collection[T] {
	cols := strings.Join(s.columns, ", ")
	placeholders := make([]string, len(s.columns))
	for i := range s.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	// Counter columns are written on insert and afterwards only by Increment.
	counterCols := make(map[string]bool, len(s.counters))
	for _, col := range s.counters {
		counterCols[col] = true
	}
	updates := make([]string, 0, len(s.columns)-1)
	for _, col := range s.columns[1:] {
		if counterCols[col] {
			continue
		}
		updates = append(updates, col+" = excluded."+col)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", s.kind, cols, strings.Join(placeholders, ", "))
	return &Collection[T]{
		db:        db,
		s:         s,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", cols, s.kind),
		insertSQL: insert,
		upsertSQL: fmt.Sprintf("%s ON CONFLICT (%s) DO UPDATE SET %s", insert, s.columns[0], strings.Join(updates, ", ")),
	}
}

// Kind returns the collection name.
func (c *Collection[T]) Kind() string {
	return c.s.kind
}

// Indexes reports the declared secondary indexes and whether each is unique.
func (c *Collection[T]) Indexes() map[string]bool {
	out := make(map[string]bool, len(c.s.indexes))
	for name, idx := range c.s.indexes {
		out[name] = idx.unique
	}
	return out
}

// Get retrieves a record by primary key. Returns nil if not found.
func (c *Collection[T]) Get(ctx context.Context, id int64) (rec *T, err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "get", start, err) }(time.Now())

	row := c.db.QueryRowContext(ctx, c.selectSQL+" WHERE id = $1", id)
	rec, err = c.s.scan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", c.s.kind, id, err)
	}
	return rec, nil
}

// All returns every record in the collection. Records come back in primary
// key order, but callers that need an order should sort.
func (c *Collection[T]) All(ctx context.Context) (recs []T, err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "all", start, err) }(time.Now())

	recs, err = c.query(ctx, c.selectSQL+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.s.kind, err)
	}
	return recs, nil
}

// ByIndex returns all records whose indexed field equals value. A nil
// value matches records where the field is absent.
func (c *Collection[T]) ByIndex(ctx context.Context, name string, value any) (recs []T, err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "by_index", start, err) }(time.Now())

	idx, ok := c.s.indexes[name]
	if !ok {
		return nil, fmt.Errorf("%s index %q: %w", c.s.kind, name, ErrUnknownIndex)
	}

	v := encodeIndexValue(value)
	if v == nil {
		recs, err = c.query(ctx, c.selectSQL+" WHERE "+idx.column+" IS NULL ORDER BY id")
	} else {
		recs, err = c.query(ctx, c.selectSQL+" WHERE "+idx.column+" = $1 ORDER BY id", v)
	}
	if err != nil {
		return nil, fmt.Errorf("list %s by %s: %w", c.s.kind, name, err)
	}
	return recs, nil
}

// FirstByIndex returns the first record matching the index value, or nil.
// Mostly useful for unique indexes such as slug or email.
func (c *Collection[T]) FirstByIndex(ctx context.Context, name string, value any) (*T, error) {
	recs, err := c.ByIndex(ctx, name, value)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// Add inserts a new record. A taken primary key or unique index value
// yields models.ErrConflict.
func (c *Collection[T]) Add(ctx context.Context, rec *T) (err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "add", start, err) }(time.Now())
	return c.write(ctx, "add", c.insertSQL, rec)
}

// Put inserts or fully replaces a record by primary key.
func (c *Collection[T]) Put(ctx context.Context, rec *T) (err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "put", start, err) }(time.Now())
	return c.write(ctx, "put", c.upsertSQL, rec)
}

// Delete removes a record and, with it, its secondary index entries.
// Deleting an unknown id yields models.ErrNotFound.
func (c *Collection[T]) Delete(ctx context.Context, id int64) (err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "delete", start, err) }(time.Now())

	res, err := c.db.ExecContext(ctx, "DELETE FROM "+c.s.kind+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.s.kind, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.s.kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s %d: %w", c.s.kind, id, models.ErrNotFound)
	}
	return nil
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count(ctx context.Context) (n int, err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "count", start, err) }(time.Now())

	if err = c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.s.kind).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.s.kind, err)
	}
	return n, nil
}

// Increment atomically adds one to a counter field, advances updated_at to
// updatedAt unless the stored stamp is already later, and returns the new
// value. Concurrent callers never lose an increment.
func (c *Collection[T]) Increment(ctx context.Context, id int64, counter string, updatedAt time.Time) (n int64, err error) {
	defer func(start time.Time) { metrics.ObserveStore(c.s.kind, "increment", start, err) }(time.Now())

	col, ok := c.s.counters[counter]
	if !ok {
		return 0, fmt.Errorf("%s counter %q: %w", c.s.kind, counter, ErrUnknownIndex)
	}

	q := fmt.Sprintf("UPDATE %s SET %s = %s + 1, updated_at = CASE WHEN updated_at > $1 THEN updated_at ELSE $1 END WHERE id = $2 RETURNING %s",
		c.s.kind, col, col, col)
	err = c.db.QueryRowContext(ctx, q, formatTime(updatedAt), id).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("increment %s %d: %w", c.s.kind, id, models.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("increment %s %d: %w", c.s.kind, id, err)
	}
	return n, nil
}

func (c *Collection[T]) write(ctx context.Context, op, q string, rec *T) error {
	id := c.s.id(rec)
	args, err := c.s.values(rec)
	if err != nil {
		return fmt.Errorf("%s %s %d: encode: %w", op, c.s.kind, id, err)
	}
	if _, err := c.db.ExecContext(ctx, q, args...); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%s %s %d: %w", op, c.s.kind, id, models.ErrConflict)
		}
		return fmt.Errorf("%s %s %d: %w", op, c.s.kind, id, err)
	}
	return nil
}

func (c *Collection[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		rec, err := c.s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.s.kind, err)
		}
		items = append(items, *rec)
	}
	return items, rows.Err()
}
