package view

import (
	"fmt"

	"github.com/katalvlaran/fixmat/table"
)

const (
	opWhere      = "Where"
	opEqualValue = "EqualValue"
	opAnd        = "And"
	opOr         = "Or"
)

// Where returns a mask that is true where keep(value) holds for the named
// field, values converted to float64.
// Errors: table.ErrFieldNotFound.
func Where(t *table.Table, field string, keep func(v float64) bool) ([]bool, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opWhere, table.ErrNilTable)
	}
	f, err := t.Field(field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWhere, err)
	}
	mask := make([]bool, f.Len())
	for k := range mask {
		mask[k] = keep(f.Float64(k))
	}

	return mask, nil
}

// Equal selects rows whose field equals v numerically. NaN never matches;
// use EqualValue to select NaN rows.
func Equal(t *table.Table, field string, v float64) ([]bool, error) {
	return Where(t, field, func(x float64) bool { return x == v })
}

// EqualValue selects rows whose field entry is identical to v, kind included
// (the same identity GroupBy uses).
func EqualValue(t *table.Table, field string, v table.Value) ([]bool, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opEqualValue, table.ErrNilTable)
	}
	f, err := t.Field(field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEqualValue, err)
	}
	mask := make([]bool, f.Len())
	for k := range mask {
		mask[k] = f.Value(k) == v
	}

	return mask, nil
}

// In selects rows whose field equals any of vs.
func In(t *table.Table, field string, vs ...float64) ([]bool, error) {
	set := make(map[float64]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}

	return Where(t, field, func(x float64) bool {
		_, ok := set[x]
		return ok
	})
}

// Range selects rows with lo <= field < hi.
func Range(t *table.Table, field string, lo, hi float64) ([]bool, error) {
	return Where(t, field, func(x float64) bool { return x >= lo && x < hi })
}

// And combines masks element-wise. All masks must have the same length.
// With no masks it returns nil.
func And(masks ...[]bool) ([]bool, error) {
	return combine(opAnd, masks, func(a, b bool) bool { return a && b })
}

// Or combines masks element-wise. All masks must have the same length.
func Or(masks ...[]bool) ([]bool, error) {
	return combine(opOr, masks, func(a, b bool) bool { return a || b })
}

// Not returns the element-wise negation of mask as a new slice.
func Not(mask []bool) []bool {
	out := make([]bool, len(mask))
	for k, v := range mask {
		out[k] = !v
	}

	return out
}

func combine(op string, masks [][]bool, f func(a, b bool) bool) ([]bool, error) {
	if len(masks) == 0 {
		return nil, nil
	}
	out := append([]bool(nil), masks[0]...)
	for m, mask := range masks[1:] {
		if len(mask) != len(out) {
			return nil, fmt.Errorf("%s: mask %d has %d entries, want %d: %w", op, m+1, len(mask), len(out), table.ErrShape)
		}
		for k, v := range mask {
			out[k] = f(out[k], v)
		}
	}

	return out, nil
}
