// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Operation tags for error wrapping.
const (
	opNew         = "New"
	opField       = "Field"
	opAddField    = "AddField"
	opRemoveField = "RemoveField"
	opTake        = "Take"
)

// Table is a columnar fixation table: equal-length typed fields plus shared
// parameters. The zero value is not usable; build tables with New.
//
// A Table is safe for concurrent readers. AddField, RemoveField and SetParam
// take the write lock.
type Table struct {
	mu     sync.RWMutex         // guards n, fields, params
	n      int                  // row count; every field has exactly n entries
	fields map[string]Field     // name -> column
	params map[string][]float64 // name -> owned copy of the parameter vector
}

// New builds a Table from fields and params. Both maps are copied; fields
// themselves are immutable and shared as-is.
// MAIN DESCRIPTION:
//   - Validates that every field is typed and all fields share one length N.
//   - N is 0 when no fields are supplied.
//
// Errors:
//   - ErrInvalidValue for an empty field/param name, an untyped (zero) Field,
//     or an empty parameter vector.
//   - ErrShape when two fields differ in length, or a field requested with
//     WithRequired is missing.
//
// Complexity:
//   - Time O(F + P·k), Space O(F + P·k) for the copied maps.
func New(fields map[string]Field, params map[string][]float64, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)

	t := &Table{
		fields: make(map[string]Field, len(fields)),
		params: make(map[string][]float64, len(params)),
	}

	// Deterministic validation order keeps error messages stable.
	names := sortedKeys(fields)
	for k, name := range names {
		f := fields[name]
		if name == "" || f.kind == KindInvalid {
			return nil, tableErrorf(opNew, name, ErrInvalidValue)
		}
		if k == 0 {
			t.n = f.Len()
		} else if f.Len() != t.n {
			return nil, fmt.Errorf("%s: field %q has %d rows, field %q has %d: %w",
				opNew, name, f.Len(), names[0], t.n, ErrShape)
		}
		t.fields[name] = f
	}

	for _, name := range o.required {
		if _, ok := t.fields[name]; !ok {
			return nil, fmt.Errorf("%s: required field %q missing: %w", opNew, name, ErrShape)
		}
	}

	for name, v := range params {
		if name == "" || len(v) == 0 {
			return nil, tableErrorf(opNew, name, ErrInvalidValue)
		}
		t.params[name] = append([]float64(nil), v...)
	}

	return t, nil
}

// Len returns the number of fixations N.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.n
}

// Field returns the named column or ErrFieldNotFound.
func (t *Table) Field(name string) (Field, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.fields[name]
	if !ok {
		return Field{}, tableErrorf(opField, name, ErrFieldNotFound)
	}

	return f, nil
}

// Floats returns a float64 copy of the named column or ErrFieldNotFound.
func (t *Table) Floats(name string) ([]float64, error) {
	f, err := t.Field(name)
	if err != nil {
		return nil, err
	}

	return f.Float64s(), nil
}

// HasField reports whether name is a field of t.
func (t *Table) HasField(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.fields[name]

	return ok
}

// FieldNames returns the field names in ascending order.
func (t *Table) FieldNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return sortedKeys(t.fields)
}

// AddField inserts or replaces the named column.
// The first field added to a field-less table sets N.
//
// Errors:
//   - ErrInvalidValue for an empty name or untyped Field.
//   - ErrShape when f.Len() differs from N; t is unchanged.
func (t *Table) AddField(name string, f Field) error {
	if name == "" || f.kind == KindInvalid {
		return tableErrorf(opAddField, name, ErrInvalidValue)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.fields) == 0 {
		t.n = f.Len()
	} else if f.Len() != t.n {
		return fmt.Errorf("%s(%q): %d rows, table has %d: %w", opAddField, name, f.Len(), t.n, ErrShape)
	}
	t.fields[name] = f

	return nil
}

// RemoveField deletes the named column or returns ErrFieldNotFound.
// Removing the last field resets Len to 0, since no column holds rows any more.
func (t *Table) RemoveField(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.fields[name]; !ok {
		return tableErrorf(opRemoveField, name, ErrFieldNotFound)
	}
	delete(t.fields, name)
	if len(t.fields) == 0 {
		t.n = 0
	}

	return nil
}

// Take returns a new table with the rows at idx, in idx order (duplicates
// allowed). Parameters are copied.
//
// Errors:
//   - ErrOutOfRange when an index is outside [0, Len()).
//
// Complexity:
//   - Time O(F·len(idx)), Space O(F·len(idx)).
func (t *Table) Take(idx []int) (*Table, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, at := range idx {
		if at < 0 || at >= t.n {
			return nil, fmt.Errorf("%s: row %d of %d: %w", opTake, at, t.n, ErrOutOfRange)
		}
	}

	out := &Table{
		n:      len(idx),
		fields: make(map[string]Field, len(t.fields)),
		params: copyParams(t.params),
	}
	for name, f := range t.fields {
		out.fields[name] = f.take(idx)
	}

	return out, nil
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := &Table{
		n:      t.n,
		fields: make(map[string]Field, len(t.fields)),
		params: copyParams(t.params),
	}
	// Fields are immutable; sharing them is safe.
	for name, f := range t.fields {
		out.fields[name] = f
	}

	return out
}

// Equal reports whether t and o hold the same fields (names, kinds, values)
// and the same parameters.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	a, b := t.snapshot(), o.snapshot()
	if a.n != b.n || len(a.fields) != len(b.fields) || len(a.params) != len(b.params) {
		return false
	}
	for name, f := range a.fields {
		g, ok := b.fields[name]
		if !ok || !f.Equal(g) {
			return false
		}
	}
	for name, p := range a.params {
		q, ok := b.params[name]
		if !ok || len(p) != len(q) {
			return false
		}
		for k := range p {
			if FloatValue(p[k]) != FloatValue(q[k]) {
				return false
			}
		}
	}

	return true
}

// String returns a one-line summary such as
// "Table(n=3, fields=[category x y], params=[image_size pixels_per_degree])".
func (t *Table) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return fmt.Sprintf("Table(n=%d, fields=[%s], params=[%s])",
		t.n, strings.Join(sortedKeys(t.fields), " "), strings.Join(sortedKeys(t.params), " "))
}

// state is an unlocked copy of the table's maps; fields are shared (immutable)
// and params are shared read-only.
type state struct {
	n      int
	fields map[string]Field
	params map[string][]float64
}

// snapshot copies the map headers under the read lock so two tables can be
// compared or joined without holding both locks (t.Join(t) must not deadlock).
func (t *Table) snapshot() state {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := state{
		n:      t.n,
		fields: make(map[string]Field, len(t.fields)),
		params: make(map[string][]float64, len(t.params)),
	}
	for k, v := range t.fields {
		s.fields[k] = v
	}
	for k, v := range t.params {
		s.params[k] = v
	}

	return s
}

func copyParams(src map[string][]float64) map[string][]float64 {
	out := make(map[string][]float64, len(src))
	for k, v := range src {
		out[k] = append([]float64(nil), v...)
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
