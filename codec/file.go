// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/fixmat/internal/logx"
	"github.com/katalvlaran/fixmat/table"
)

// Format names a document encoding.
type Format uint8

const (
	// FormatJSON is the JSON document format.
	FormatJSON Format = iota + 1
	// FormatYAML is the YAML document format.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatOf picks the format from path's extension, case-insensitively.
// Returns ErrUnknownFormat for anything but .json, .yaml and .yml.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
}

// Encode writes t to w in format f.
func Encode(w io.Writer, f Format, t *table.Table) error {
	switch f {
	case FormatJSON:
		return EncodeJSON(w, t)
	case FormatYAML:
		return EncodeYAML(w, t)
	}

	return fmt.Errorf("%s: %w", f, ErrUnknownFormat)
}

// Decode reads a table from r in format f.
func Decode(r io.Reader, f Format) (*table.Table, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	}

	return nil, fmt.Errorf("%s: %w", f, ErrUnknownFormat)
}

// Load reads the table stored at path.
func Load(path string) (*table.Table, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer fh.Close()

	t, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	logx.L().Debug("table loaded", "path", path, "format", f, "rows", t.Len())

	return t, nil
}

// Save writes t to path, creating or truncating the file. The format is
// chosen before the file is touched, so an unknown extension creates nothing.
func Save(path string, t *table.Table) (err error) {
	f, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		err = errors.Join(err, fh.Close())
	}()

	if err = Encode(fh, f, t); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}
	logx.L().Debug("table saved", "path", path, "format", f, "rows", t.Len())

	return nil
}
