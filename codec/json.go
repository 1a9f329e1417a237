// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/fixmat/table"
)

const (
	opEncodeJSON = "EncodeJSON"
	opDecodeJSON = "DecodeJSON"
)

// jsonFloat is a float64 whose non-finite values travel as strings.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*f = jsonFloat(math.NaN())
		case "+Inf", "Inf":
			*f = jsonFloat(math.Inf(1))
		case "-Inf":
			*f = jsonFloat(math.Inf(-1))
		default:
			return fmt.Errorf("float %q: %w", s, ErrDecode)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)

	return nil
}

// jsonField and jsonRecord mirror table.FieldRecord and table.Record with
// NaN-safe floats.
type jsonField struct {
	Kind   string      `json:"kind"`
	Floats []jsonFloat `json:"floats,omitempty"`
	Ints   []int64     `json:"ints,omitempty"`
	Uints  []uint64    `json:"uints,omitempty"`
}

type jsonRecord struct {
	Fields map[string]jsonField   `json:"fields"`
	Params map[string][]jsonFloat `json:"params,omitempty"`
}

func toJSONFloats(vs []float64) []jsonFloat {
	if vs == nil {
		return nil
	}
	out := make([]jsonFloat, len(vs))
	for k, v := range vs {
		out[k] = jsonFloat(v)
	}

	return out
}

func fromJSONFloats(vs []jsonFloat) []float64 {
	if vs == nil {
		return nil
	}
	out := make([]float64, len(vs))
	for k, v := range vs {
		out[k] = float64(v)
	}

	return out
}

// EncodeJSON writes t to w as an indented JSON document.
func EncodeJSON(w io.Writer, t *table.Table) error {
	if t == nil {
		return fmt.Errorf("%s: %w", opEncodeJSON, table.ErrNilTable)
	}
	r := t.Record()
	doc := jsonRecord{
		Fields: make(map[string]jsonField, len(r.Fields)),
		Params: make(map[string][]jsonFloat, len(r.Params)),
	}
	for name, fr := range r.Fields {
		doc.Fields[name] = jsonField{Kind: fr.Kind, Floats: toJSONFloats(fr.Floats), Ints: fr.Ints, Uints: fr.Uints}
	}
	for name, p := range r.Params {
		doc.Params[name] = toJSONFloats(p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%s: %w", opEncodeJSON, err)
	}

	return nil
}

// DecodeJSON reads one JSON document from r and rebuilds the table.
// Unknown keys are rejected.
//
// Errors:
//   - ErrDecode for malformed JSON.
//   - Any table.FromRecord error (table.ErrShape, table.ErrInvalidValue).
func DecodeJSON(r io.Reader) (*table.Table, error) {
	var doc jsonRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opDecodeJSON, ErrDecode, err)
	}

	rec := table.Record{
		Fields: make(map[string]table.FieldRecord, len(doc.Fields)),
		Params: make(map[string][]float64, len(doc.Params)),
	}
	for name, f := range doc.Fields {
		rec.Fields[name] = table.FieldRecord{Kind: f.Kind, Floats: fromJSONFloats(f.Floats), Ints: f.Ints, Uints: f.Uints}
	}
	for name, p := range doc.Params {
		rec.Params[name] = fromJSONFloats(p)
	}

	t, err := table.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecodeJSON, err)
	}

	return t, nil
}
