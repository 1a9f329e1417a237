// SPDX-License-Identifier: MIT

package table

import "fmt"

const opJoin = "Join"

// Join concatenates t and other row-wise into a new table: the rows of t
// followed by the rows of other, field by field.
// MAIN DESCRIPTION:
//   - Both tables must have the same field names, and each shared field the
//     same kind.
//   - Parameters are taken from t (first operand wins); other's parameters
//     are ignored, even when they differ.
//
// Errors:
//   - ErrNilTable when other is nil.
//   - ErrSchemaMismatch when names or kinds differ.
//
// Complexity:
//   - Time O(F·(N1+N2)), Space O(F·(N1+N2)).
func (t *Table) Join(other *Table) (*Table, error) {
	if other == nil {
		return nil, fmt.Errorf("%s: %w", opJoin, ErrNilTable)
	}
	a, b := t.snapshot(), other.snapshot()

	if len(a.fields) != len(b.fields) {
		return nil, fmt.Errorf("%s: %d fields vs %d: %w", opJoin, len(a.fields), len(b.fields), ErrSchemaMismatch)
	}
	for _, name := range sortedKeys(a.fields) {
		g, ok := b.fields[name]
		if !ok {
			return nil, fmt.Errorf("%s: field %q missing in second table: %w", opJoin, name, ErrSchemaMismatch)
		}
		if f := a.fields[name]; f.kind != g.kind {
			return nil, fmt.Errorf("%s: field %q is %s vs %s: %w", opJoin, name, f.kind, g.kind, ErrSchemaMismatch)
		}
	}

	out := &Table{
		n:      a.n + b.n,
		fields: make(map[string]Field, len(a.fields)),
		params: copyParams(a.params),
	}
	for name, f := range a.fields {
		out.fields[name] = f.concat(b.fields[name])
	}

	return out, nil
}
