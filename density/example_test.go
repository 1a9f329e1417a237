package density_test

import (
	"fmt"

	"github.com/katalvlaran/fixmat/density"
	"github.com/katalvlaran/fixmat/table"
)

// ExampleFromTable bins three fixations on a 4×6 image. A sub-pixel kernel
// leaves the raw counts visible.
func ExampleFromTable() {
	tb, _ := table.New(map[string]table.Field{
		"x": table.Floats(1, 1, 5),
		"y": table.Floats(2, 2, 0),
	}, map[string][]float64{"image_size": {4, 6}})

	opts := density.DefaultOptions()
	opts.Sigma = 0.1
	m, err := density.FromTable(tb, opts)
	if err != nil {
		fmt.Println("density:", err)
		return
	}
	row, col := m.ArgMax()
	fmt.Printf("peak %g at row %d, col %d; mass %g\n", m.Max(), row, col, m.Sum())
	fmt.Print(m)

	// Output:
	// peak 2 at row 2, col 1; mass 3
	// [0, 0, 0, 0, 0, 1]
	// [0, 0, 0, 0, 0, 0]
	// [0, 2, 0, 0, 0, 0]
	// [0, 0, 0, 0, 0, 0]
}
