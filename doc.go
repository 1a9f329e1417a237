// Package fixmat is a small toolkit for eye-tracking fixation data: a
// columnar fixation table, mask/group views over it, and fixation density
// maps computed by Gaussian kernel smoothing.
//
// What is inside?
//
//	table/   Table, typed Field, comparable Value, parameters, Record export
//	view/    boolean masks, Filter, lazy GroupBy (by category, by image)
//	density/ Gaussian kernel, density maps, per-group maps, feature sampling
//	matrix/  row-major Dense grid with separable convolution
//	codec/   JSON / YAML interchange
//	store/   SQLite persistence
//
// Typical flow:
//
//	t, _ := table.New(map[string]table.Field{
//		"x": table.Floats(100, 120),
//		"y": table.Floats(200, 210),
//	}, map[string][]float64{
//		"image_size":        {768, 1024},
//		"pixels_per_degree": {45},
//	})
//	fdm, _ := density.FromTable(t, density.DefaultOptions())
//
// The command-line front end lives in cmd/fixmat.
//
//	go install github.com/katalvlaran/fixmat/cmd/fixmat@latest
package fixmat
