// SPDX-License-Identifier: MIT

// Package store persists named fixation tables in a SQLite database through
// the pure-Go modernc.org/sqlite driver.
//
// Every cell and parameter entry is stored as its 64-bit pattern in an
// INTEGER column (float64 bits, int64 value, or uint64 reinterpreted), so NaN,
// ±Inf, -0 and the full uint64 range survive a Save/Load round trip exactly.
// SQLite would turn a NaN REAL into NULL.
//
// Schema (applied by Open through a versioned migrations table):
//
//	tables(id, name UNIQUE, rows, saved_at)
//	fields(table_id, name, kind)
//	cells(table_id, field, row, bits)
//	params(table_id, name, idx, bits)
//
// Child rows reference tables(id) with ON DELETE CASCADE, so replacing or
// deleting a table is a single DELETE inside the Save/Delete transaction.
package store
