// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one schema step. Versions are applied in ascending order and
// recorded in the migrations table.
type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create_tables",
		sql: `
CREATE TABLE tables (
	id       INTEGER PRIMARY KEY,
	name     TEXT    NOT NULL UNIQUE,
	rows     INTEGER NOT NULL,
	saved_at TEXT    NOT NULL
);
CREATE TABLE fields (
	table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
	name     TEXT    NOT NULL,
	kind     TEXT    NOT NULL,
	PRIMARY KEY (table_id, name)
) WITHOUT ROWID;
CREATE TABLE cells (
	table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
	field    TEXT    NOT NULL,
	row      INTEGER NOT NULL,
	bits     INTEGER NOT NULL,
	PRIMARY KEY (table_id, field, row)
) WITHOUT ROWID;
CREATE TABLE params (
	table_id INTEGER NOT NULL REFERENCES tables(id) ON DELETE CASCADE,
	name     TEXT    NOT NULL,
	idx      INTEGER NOT NULL,
	bits     INTEGER NOT NULL,
	PRIMARY KEY (table_id, name, idx)
) WITHOUT ROWID;`,
	},
}

// migrate creates the migrations table and applies every missing step, each
// in its own transaction.
func migrate(ctx context.Context, db *sql.DB) error {
	const initSQL = `
CREATE TABLE IF NOT EXISTS migrations (
	version    INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`
	if _, err := db.ExecContext(ctx, initSQL); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		err = transaction(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.sql); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO migrations (version, name) VALUES (?, ?)", m.version, m.name)
			return err
		})
		if err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.version, m.name, err)
		}
	}

	return nil
}

// appliedVersions reads the recorded migration versions. The rows are closed
// before returning so the single pooled connection is free for migrate.
func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan migration version: %w", err)
		}
		applied[v] = true
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("query migrations: %w", err)
	}

	return applied, nil
}

// transaction runs fn inside a transaction, rolling back on error or panic.
func transaction(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
