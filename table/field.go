// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"
)

// Kind enumerates the element types a Field can hold.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a zero Field has it.
	KindInvalid Kind = iota
	// KindFloat stores float64 values (coordinates, times, durations).
	KindFloat
	// KindInt stores int64 values (subject ids, categories, filenumbers).
	KindInt
	// KindUint stores uint64 values (counters, hashes).
	KindUint
)

// Kind names used by String and ParseKind.
const (
	kindNameFloat = "float"
	kindNameInt   = "int"
	kindNameUint  = "uint"
)

// String returns the canonical kind name ("float", "int", "uint").
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return kindNameFloat
	case KindInt:
		return kindNameInt
	case KindUint:
		return kindNameUint
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a canonical kind name back to a Kind.
// Returns ErrInvalidValue for unknown names.
func ParseKind(s string) (Kind, error) {
	switch s {
	case kindNameFloat:
		return KindFloat, nil
	case kindNameInt:
		return KindInt, nil
	case kindNameUint:
		return KindUint, nil
	}

	return KindInvalid, tableErrorf("ParseKind", s, ErrInvalidValue)
}

// Field is an immutable, typed column of per-fixation values.
// Exactly one of the backing slices is used, selected by kind. Constructors
// copy their input and slice accessors return copies, so a Field can be
// shared between tables without observable aliasing.
type Field struct {
	kind Kind
	f    []float64
	i    []int64
	u    []uint64
}

// Floats builds a float64 Field from a copy of vs.
func Floats(vs ...float64) Field {
	return Field{kind: KindFloat, f: append(make([]float64, 0, len(vs)), vs...)}
}

// Ints builds an int64 Field from a copy of vs.
func Ints(vs ...int64) Field {
	return Field{kind: KindInt, i: append(make([]int64, 0, len(vs)), vs...)}
}

// Uints builds a uint64 Field from a copy of vs.
func Uints(vs ...uint64) Field {
	return Field{kind: KindUint, u: append(make([]uint64, 0, len(vs)), vs...)}
}

// Kind reports the element type.
func (f Field) Kind() Kind { return f.kind }

// Len returns the number of entries.
func (f Field) Len() int {
	switch f.kind {
	case KindFloat:
		return len(f.f)
	case KindInt:
		return len(f.i)
	case KindUint:
		return len(f.u)
	}

	return 0
}

// Float64 returns entry k converted to float64. k must be in [0, Len()).
func (f Field) Float64(k int) float64 {
	switch f.kind {
	case KindInt:
		return float64(f.i[k])
	case KindUint:
		return float64(f.u[k])
	}

	return f.f[k]
}

// Value returns entry k as a comparable Value. k must be in [0, Len()).
func (f Field) Value(k int) Value {
	switch f.kind {
	case KindInt:
		return IntValue(f.i[k])
	case KindUint:
		return UintValue(f.u[k])
	}

	return FloatValue(f.f[k])
}

// Float64s returns a float64 copy of the column, converting integer kinds.
func (f Field) Float64s() []float64 {
	out := make([]float64, f.Len())
	for k := range out {
		out[k] = f.Float64(k)
	}

	return out
}

// Int64s returns a copy of the column when the kind is KindInt.
func (f Field) Int64s() ([]int64, bool) {
	if f.kind != KindInt {
		return nil, false
	}

	return append(make([]int64, 0, len(f.i)), f.i...), true
}

// Uint64s returns a copy of the column when the kind is KindUint.
func (f Field) Uint64s() ([]uint64, bool) {
	if f.kind != KindUint {
		return nil, false
	}

	return append(make([]uint64, 0, len(f.u)), f.u...), true
}

// Equal reports whether f and g have the same kind and equal entries under
// Value canonicalization (NaN equals NaN, -0 equals +0).
func (f Field) Equal(g Field) bool {
	if f.kind != g.kind || f.Len() != g.Len() {
		return false
	}
	for k := 0; k < f.Len(); k++ {
		if f.Value(k) != g.Value(k) {
			return false
		}
	}

	return true
}

// take copies the entries at idx, in idx order. Indices are pre-validated.
func (f Field) take(idx []int) Field {
	out := Field{kind: f.kind}
	switch f.kind {
	case KindFloat:
		out.f = make([]float64, len(idx))
		for k, at := range idx {
			out.f[k] = f.f[at]
		}
	case KindInt:
		out.i = make([]int64, len(idx))
		for k, at := range idx {
			out.i[k] = f.i[at]
		}
	case KindUint:
		out.u = make([]uint64, len(idx))
		for k, at := range idx {
			out.u[k] = f.u[at]
		}
	}

	return out
}

// concat returns f followed by g in a fresh buffer. Kinds are pre-checked.
func (f Field) concat(g Field) Field {
	out := Field{kind: f.kind}
	switch f.kind {
	case KindFloat:
		out.f = append(append(make([]float64, 0, len(f.f)+len(g.f)), f.f...), g.f...)
	case KindInt:
		out.i = append(append(make([]int64, 0, len(f.i)+len(g.i)), f.i...), g.i...)
	case KindUint:
		out.u = append(append(make([]uint64, 0, len(f.u)+len(g.u)), f.u...), g.u...)
	}

	return out
}

// Value is a single comparable field entry. It is usable as a map key, which
// is what grouping relies on. Float values are canonicalized: -0 maps to +0
// and every NaN maps to one quiet NaN, so equal-looking values group together.
type Value struct {
	kind Kind
	bits uint64
}

// canonicalNaN is the bit pattern every NaN collapses to.
var canonicalNaN = math.Float64bits(math.NaN())

// FloatValue wraps a float64.
func FloatValue(v float64) Value {
	switch {
	case math.IsNaN(v):
		return Value{kind: KindFloat, bits: canonicalNaN}
	case v == 0:
		return Value{kind: KindFloat, bits: 0}
	}

	return Value{kind: KindFloat, bits: math.Float64bits(v)}
}

// IntValue wraps an int64.
func IntValue(v int64) Value { return Value{kind: KindInt, bits: uint64(v)} }

// UintValue wraps a uint64.
func UintValue(v uint64) Value { return Value{kind: KindUint, bits: v} }

// Kind reports the kind of the originating field.
func (v Value) Kind() Kind { return v.kind }

// Float64 returns the value converted to float64.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(int64(v.bits))
	case KindUint:
		return float64(v.bits)
	}

	return math.Float64frombits(v.bits)
}

// Int64 returns the value as int64 and whether the kind is KindInt.
func (v Value) Int64() (int64, bool) { return int64(v.bits), v.kind == KindInt }

// Uint64 returns the value as uint64 and whether the kind is KindUint.
func (v Value) Uint64() (uint64, bool) { return v.bits, v.kind == KindUint }

// Less orders values of the same kind numerically; NaN sorts last.
// Values of different kinds are ordered by kind.
func (v Value) Less(w Value) bool {
	if v.kind != w.kind {
		return v.kind < w.kind
	}
	switch v.kind {
	case KindInt:
		return int64(v.bits) < int64(w.bits)
	case KindUint:
		return v.bits < w.bits
	}
	a, b := v.Float64(), w.Float64()
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}

	return a < b
}

// String formats the value with %d for integer kinds and %g for floats.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", int64(v.bits))
	case KindUint:
		return fmt.Sprintf("%d", v.bits)
	}

	return fmt.Sprintf("%g", v.Float64())
}
