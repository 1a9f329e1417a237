// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/fixmat/table"
)

const (
	opEncodeYAML = "EncodeYAML"
	opDecodeYAML = "DecodeYAML"
)

// EncodeYAML writes t to w as a YAML document.
func EncodeYAML(w io.Writer, t *table.Table) error {
	if t == nil {
		return fmt.Errorf("%s: %w", opEncodeYAML, table.ErrNilTable)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(t.Record()); err != nil {
		return fmt.Errorf("%s: %w", opEncodeYAML, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", opEncodeYAML, err)
	}

	return nil
}

// DecodeYAML reads one YAML document from r and rebuilds the table.
// Unknown keys are rejected.
//
// Errors:
//   - ErrDecode for malformed YAML or an empty stream.
//   - Any table.FromRecord error.
func DecodeYAML(r io.Reader) (*table.Table, error) {
	var rec table.Record
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opDecodeYAML, ErrDecode, err)
	}

	t, err := table.FromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecodeYAML, err)
	}

	return t, nil
}
