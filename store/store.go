// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/fixmat/internal/logx"
	"github.com/katalvlaran/fixmat/table"
)

// Store is a handle to a fixation-table database. It is safe for concurrent
// use; SQLite serializes writers.
type Store struct {
	db     *sql.DB
	path   string
	closed atomic.Bool
}

// Info describes one stored table.
type Info struct {
	Name    string
	Rows    int
	SavedAt time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("Open(%q): %w", path, err)
	}
	// One connection: pragmas are per connection and an in-memory database
	// exists only on the connection that created it.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA foreign_keys=ON", "PRAGMA journal_mode=WAL"} {
		if _, err = db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("Open(%q): %s: %w", path, pragma, err)
		}
	}
	if err = migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("Open(%q): %w", path, err)
	}
	logx.L().Info("store opened", "path", path)

	return &Store{db: db, path: path}, nil
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	return s.db.Close()
}

func (s *Store) check(op string) error {
	if s.closed.Load() {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}

	return nil
}

// Save stores t under name, replacing any table of that name. The write is
// one transaction: readers see either the old table or the new one.
//
// Errors:
//   - table.ErrNilTable; table.ErrInvalidValue for an empty name.
func (s *Store) Save(ctx context.Context, name string, t *table.Table) error {
	const op = "Save"
	if err := s.check(op); err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("%s: %w", op, table.ErrNilTable)
	}
	if name == "" {
		return fmt.Errorf("%s: empty name: %w", op, table.ErrInvalidValue)
	}
	rec := t.Record()
	n := t.Len()

	err := transaction(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM tables WHERE name = ?", name); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			"INSERT INTO tables (name, rows, saved_at) VALUES (?, ?, ?)",
			name, n, time.Now().UTC().Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		fieldStmt, err := tx.PrepareContext(ctx, "INSERT INTO fields (table_id, name, kind) VALUES (?, ?, ?)")
		if err != nil {
			return err
		}
		defer fieldStmt.Close()
		cellStmt, err := tx.PrepareContext(ctx, "INSERT INTO cells (table_id, field, row, bits) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer cellStmt.Close()
		paramStmt, err := tx.PrepareContext(ctx, "INSERT INTO params (table_id, name, idx, bits) VALUES (?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer paramStmt.Close()

		for fname, fr := range rec.Fields {
			if _, err = fieldStmt.ExecContext(ctx, id, fname, fr.Kind); err != nil {
				return err
			}
			for row, bits := range fieldBits(fr) {
				if _, err = cellStmt.ExecContext(ctx, id, fname, row, bits); err != nil {
					return err
				}
			}
		}
		for pname, vs := range rec.Params {
			for k, v := range vs {
				if _, err = paramStmt.ExecContext(ctx, id, pname, k, int64(math.Float64bits(v))); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s(%q): %w", op, name, err)
	}
	logx.L().Info("table saved", "store", s.path, "name", name, "rows", n, "fields", len(rec.Fields))

	return nil
}

// Load reads the table stored under name.
//
// Errors:
//   - ErrNotFound when no such table exists.
//   - table.ErrInvalidValue / table.ErrShape when the stored rows are
//     inconsistent.
func (s *Store) Load(ctx context.Context, name string) (*table.Table, error) {
	const op = "Load"
	if err := s.check(op); err != nil {
		return nil, err
	}

	var id int64
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT id, rows FROM tables WHERE name = ?", name).Scan(&id, &n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s(%q): %w", op, name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", op, name, err)
	}

	rec := table.Record{
		Fields: make(map[string]table.FieldRecord),
		Params: make(map[string][]float64),
	}
	kinds, err := s.loadKinds(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", op, name, err)
	}
	cells, err := s.loadCells(ctx, id, n)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", op, name, err)
	}
	for fname, kind := range kinds {
		if len(cells[fname]) != n {
			return nil, fmt.Errorf("%s(%q): field %q has %d of %d rows: %w",
				op, name, fname, len(cells[fname]), n, table.ErrShape)
		}
		fr, err := fieldRecord(kind, cells[fname])
		if err != nil {
			return nil, fmt.Errorf("%s(%q): field %q: %w", op, name, fname, err)
		}
		rec.Fields[fname] = fr
	}
	if rec.Params, err = s.loadParams(ctx, id); err != nil {
		return nil, fmt.Errorf("%s(%q): %w", op, name, err)
	}

	t, err := table.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", op, name, err)
	}
	logx.L().Info("table loaded", "store", s.path, "name", name, "rows", t.Len())

	return t, nil
}

// List returns the stored tables ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	const op = "List"
	if err := s.check(op); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, "SELECT name, rows, saved_at FROM tables ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []Info
	for rows.Next() {
		var info Info
		var saved string
		if err = rows.Scan(&info.Name, &info.Rows, &saved); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if info.SavedAt, err = time.Parse(time.RFC3339Nano, saved); err != nil {
			return nil, fmt.Errorf("%s: table %q: %w", op, info.Name, err)
		}
		out = append(out, info)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Delete removes the table stored under name, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	const op = "Delete"
	if err := s.check(op); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM tables WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("%s(%q): %w", op, name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s(%q): %w", op, name, err)
	}
	if n == 0 {
		return fmt.Errorf("%s(%q): %w", op, name, ErrNotFound)
	}
	logx.L().Info("table deleted", "store", s.path, "name", name)

	return nil
}

func (s *Store) loadKinds(ctx context.Context, id int64) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, kind FROM fields WHERE table_id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, kind string
		if err = rows.Scan(&name, &kind); err != nil {
			return nil, err
		}
		out[name] = kind
	}

	return out, rows.Err()
}

// loadCells returns field name -> row-ordered bit patterns. A gap in the row
// sequence is reported as table.ErrShape.
func (s *Store) loadCells(ctx context.Context, id int64, n int) (map[string][]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT field, row, bits FROM cells WHERE table_id = ? ORDER BY field, row", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]int64)
	var field string
	var row, bits int64
	for rows.Next() {
		if err = rows.Scan(&field, &row, &bits); err != nil {
			return nil, err
		}
		if row != int64(len(out[field])) || row >= int64(n) {
			return nil, fmt.Errorf("field %q: unexpected row %d: %w", field, row, table.ErrShape)
		}
		out[field] = append(out[field], bits)
	}

	return out, rows.Err()
}

func (s *Store) loadParams(ctx context.Context, id int64) (map[string][]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, bits FROM params WHERE table_id = ? ORDER BY name, idx", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]float64)
	var name string
	var bits int64
	for rows.Next() {
		if err = rows.Scan(&name, &bits); err != nil {
			return nil, err
		}
		out[name] = append(out[name], math.Float64frombits(uint64(bits)))
	}

	return out, rows.Err()
}
