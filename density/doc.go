// Package density computes fixation density maps (FDMs): smoothed 2D
// histograms of fixation locations over an image.
//
// What is an FDM?
//
//	Every fixation (x, y) is dropped as a unit impulse into a grid the size
//	of the image, optionally downsampled by a scale factor. The impulse grid
//	is then convolved with a 2D Gaussian whose standard deviation models a
//	fixed visual angle (one degree by default), so the result approximates
//	where people looked, at the resolution of the visual system.
//
// Key choices:
//   - Grid: round(H·s) × round(W·s); grid[0][0] is the top-left image corner,
//     rows follow y and columns follow x.
//   - Binning: a fixation inside [0,H)×[0,W) lands in cell (⌊y·s⌋, ⌊x·s⌋),
//     clamped to the last row/column; fixations outside the image (or NaN)
//     are dropped and counted in Map.Dropped. Repeated fixations accumulate.
//   - Kernel: separable normalized Gaussian, sd = Degrees·PixelsPerDegree·s
//     grid pixels (or Sigma·s when Sigma is set), radius round(Truncate·sd).
//     Weights sum to 1 over the full radius even when the grid is narrower.
//   - Borders: zero padding. Mass spreading beyond the image is lost, never
//     wrapped or reflected.
//   - Normalization: Raw by default (smoothed counts: an interior fixation
//     contributes total mass 1). UnitMass rescales to total 1, CountMass to
//     the number of binned fixations. All-zero maps stay all-zero.
//
// Usage:
//
//	opts := density.DefaultOptions()
//	opts.ScaleFactor = 0.5
//	fdm, err := density.FromTable(t, opts)
//
// FromGroups computes one map per group of a view.GroupBy sequence on a
// bounded worker pool. Sample reads a grid back at every fixation and stores
// the values as a new field.
//
// Performance:
//
//	Time O(N + nonzeroRows·W·k + H·W·k) for kernel width k; Space O(H·W).
package density
