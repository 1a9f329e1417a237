// Package matrix provides the row-major Dense grid that backs fixation
// density maps, together with the few numeric kernels the density engine
// needs: zero-padded separable convolution and whole-grid reductions.
//
// Conventions:
//   - Element (i, j) is row i, column j; row 0 is the top of the image.
//   - Storage is a flat []float64 with offset i*cols + j.
//   - Public accessors return sentinel errors instead of panicking.
//   - Reductions (Sum, Max, ArgMax, Scale) delegate to gonum's floats package.
//
// See the density package for the main consumer.
package matrix
