// SPDX-License-Identifier: MIT

package store

import (
	"iter"
	"math"

	"github.com/katalvlaran/fixmat/table"
)

// fieldBits yields (row, 64-bit pattern) for every entry of fr.
func fieldBits(fr table.FieldRecord) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for k, v := range fr.Floats {
			if !yield(k, int64(math.Float64bits(v))) {
				return
			}
		}
		for k, v := range fr.Ints {
			if !yield(k, v) {
				return
			}
		}
		for k, v := range fr.Uints {
			if !yield(k, int64(v)) {
				return
			}
		}
	}
}

// fieldRecord decodes bit patterns back into a FieldRecord of the named kind.
func fieldRecord(kind string, bits []int64) (table.FieldRecord, error) {
	k, err := table.ParseKind(kind)
	if err != nil {
		return table.FieldRecord{}, err
	}
	fr := table.FieldRecord{Kind: kind}
	switch k {
	case table.KindFloat:
		fr.Floats = make([]float64, len(bits))
		for i, b := range bits {
			fr.Floats[i] = math.Float64frombits(uint64(b))
		}
	case table.KindInt:
		fr.Ints = append([]int64(nil), bits...)
	case table.KindUint:
		fr.Uints = make([]uint64, len(bits))
		for i, b := range bits {
			fr.Uints[i] = uint64(b)
		}
	}

	return fr, nil
}
