package view

import (
	"fmt"

	"github.com/katalvlaran/fixmat/table"
)

const opFilter = "Filter"

// Filter returns a new table holding the rows of t where mask is true, with
// the same fields and parameters, in original order.
// An all-false mask yields an empty table with the same field names.
//
// Errors:
//   - table.ErrNilTable when t is nil.
//   - table.ErrShape when len(mask) != t.Len().
func Filter(t *table.Table, mask []bool) (*table.Table, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opFilter, table.ErrNilTable)
	}
	if n := t.Len(); len(mask) != n {
		return nil, fmt.Errorf("%s: mask has %d entries, table has %d rows: %w", opFilter, len(mask), n, table.ErrShape)
	}

	idx := make([]int, 0, len(mask))
	for k, keep := range mask {
		if keep {
			idx = append(idx, k)
		}
	}

	return t.Take(idx)
}
