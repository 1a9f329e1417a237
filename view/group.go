package view

import (
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/fixmat/table"
)

const opGroupBy = "GroupBy"

// GroupOption configures GroupBy.
type GroupOption func(*groupOptions)

type groupOptions struct {
	sorted bool
}

// WithSortedOrder yields groups in ascending value order (NaN last) instead
// of first-occurrence order.
func WithSortedOrder() GroupOption {
	return func(o *groupOptions) { o.sorted = true }
}

// Group is one materialized partition produced by Groups.
type Group struct {
	Value table.Value
	Table *table.Table
}

// GroupBy partitions t by the distinct values of field.
// MAIN DESCRIPTION:
//   - One scan of the field records, for each distinct value, the row
//     indices holding it. Values are compared as table.Value, so all NaN
//     rows form one group and -0 groups with +0.
//   - The returned sequence materializes each sub-table only when the
//     consumer reaches it; breaking out of the loop stops the work.
//   - Order: first occurrence of each value in the field (default), or
//     ascending with WithSortedOrder.
//   - Sub-table row counts sum to t.Len(); each keeps the original relative
//     order and all parameters of t.
//   - The sequence reads from a snapshot taken at call time, so it may be
//     ranged over more than once and is unaffected by later changes to t.
//
// Errors:
//   - table.ErrNilTable; table.ErrFieldNotFound when field is absent.
//
// Complexity:
//   - Time O(N) up front + O(F·n_g) per yielded group; Space O(N) indices.
func GroupBy(t *table.Table, field string, opts ...GroupOption) (iter.Seq2[*table.Table, table.Value], error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opGroupBy, table.ErrNilTable)
	}
	var o groupOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	src := t.Clone()
	f, err := src.Field(field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGroupBy, err)
	}

	var order []table.Value
	rows := make(map[table.Value][]int)
	for k := 0; k < f.Len(); k++ {
		v := f.Value(k)
		if _, seen := rows[v]; !seen {
			order = append(order, v)
		}
		rows[v] = append(rows[v], k)
	}
	if o.sorted {
		sort.SliceStable(order, func(a, b int) bool { return order[a].Less(order[b]) })
	}

	return func(yield func(*table.Table, table.Value) bool) {
		for _, v := range order {
			// Indices come from src itself, so Take cannot fail.
			sub, err := src.Take(rows[v])
			if err != nil {
				return
			}
			if !yield(sub, v) {
				return
			}
		}
	}, nil
}

// GroupByCategory is GroupBy over the "category" field.
func GroupByCategory(t *table.Table, opts ...GroupOption) (iter.Seq2[*table.Table, table.Value], error) {
	return GroupBy(t, table.FieldCategory, opts...)
}

// GroupByImage is GroupBy over the "filenumber" field.
func GroupByImage(t *table.Table, opts ...GroupOption) (iter.Seq2[*table.Table, table.Value], error) {
	return GroupBy(t, table.FieldFilenumber, opts...)
}

// Groups drains GroupBy into a slice, preserving its order.
func Groups(t *table.Table, field string, opts ...GroupOption) ([]Group, error) {
	seq, err := GroupBy(t, field, opts...)
	if err != nil {
		return nil, err
	}
	var out []Group
	for sub, v := range seq {
		out = append(out, Group{Value: v, Table: sub})
	}

	return out, nil
}
