// SPDX-License-Identifier: MIT

package table

import "fmt"

const opFromRecord = "FromRecord"

// FieldRecord is the exported form of a Field. Exactly one of the value
// slices is populated, matching Kind ("float", "int", "uint").
type FieldRecord struct {
	Kind   string    `json:"kind" yaml:"kind"`
	Floats []float64 `json:"floats,omitempty" yaml:"floats,omitempty"`
	Ints   []int64   `json:"ints,omitempty" yaml:"ints,omitempty"`
	Uints  []uint64  `json:"uints,omitempty" yaml:"uints,omitempty"`
}

// Record is the lossless, serialization-friendly form of a Table:
// field name → typed values, parameter name → vector.
type Record struct {
	Fields map[string]FieldRecord `json:"fields" yaml:"fields"`
	Params map[string][]float64   `json:"params,omitempty" yaml:"params,omitempty"`
}

// Record exports t. The result shares no memory with t.
func (t *Table) Record() Record {
	s := t.snapshot()

	r := Record{
		Fields: make(map[string]FieldRecord, len(s.fields)),
		Params: copyParams(s.params),
	}
	for name, f := range s.fields {
		fr := FieldRecord{Kind: f.kind.String()}
		switch f.kind {
		case KindFloat:
			fr.Floats = f.Float64s()
		case KindInt:
			fr.Ints, _ = f.Int64s()
		case KindUint:
			fr.Uints, _ = f.Uint64s()
		}
		r.Fields[name] = fr
	}

	return r
}

// ToField converts a FieldRecord back to a Field.
// Errors: ErrInvalidValue for an unknown kind or values stored under a slice
// that does not match the kind.
func (fr FieldRecord) ToField() (Field, error) {
	kind, err := ParseKind(fr.Kind)
	if err != nil {
		return Field{}, err
	}
	switch kind {
	case KindFloat:
		if len(fr.Ints) > 0 || len(fr.Uints) > 0 {
			break
		}
		return Floats(fr.Floats...), nil
	case KindInt:
		if len(fr.Floats) > 0 || len(fr.Uints) > 0 {
			break
		}
		return Ints(fr.Ints...), nil
	case KindUint:
		if len(fr.Floats) > 0 || len(fr.Ints) > 0 {
			break
		}
		return Uints(fr.Uints...), nil
	}

	return Field{}, fmt.Errorf("%s: %s field carries values of another kind: %w", opFromRecord, fr.Kind, ErrInvalidValue)
}

// FromRecord rebuilds a Table from r, validating it like New.
func FromRecord(r Record, opts ...Option) (*Table, error) {
	fields := make(map[string]Field, len(r.Fields))
	for _, name := range sortedKeys(r.Fields) {
		f, err := r.Fields[name].ToField()
		if err != nil {
			return nil, fmt.Errorf("%s(%q): %w", opFromRecord, name, err)
		}
		fields[name] = f
	}

	return New(fields, r.Params, opts...)
}
