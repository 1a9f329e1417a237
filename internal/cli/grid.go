// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/fixmat/matrix"
)

// writeGrid writes one CSV record per grid row, top row first.
func writeGrid(w io.Writer, m *matrix.Dense) error {
	cw := csv.NewWriter(w)
	last := m.Cols() - 1
	record := make([]string, m.Cols())
	var err error
	m.Do(func(_, j int, v float64) bool {
		record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		if j == last {
			err = cw.Write(record)
		}

		return err == nil
	})
	if err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

// writeGridFile writes m to path as CSV; an empty path is a no-op.
func writeGridFile(path string, m *matrix.Dense) (err error) {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err = writeGrid(f, m); err != nil {
		return fmt.Errorf("write grid %q: %w", path, err)
	}

	return nil
}
