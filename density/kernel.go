// SPDX-License-Identifier: MIT

package density

import "math"

// maxKernelRadius bounds the support walked when normalizing a kernel.
const maxKernelRadius = math.MaxInt32

// GaussianKernel returns a 1D Gaussian with standard deviation sigma (in
// grid cells), sampled at integer offsets -r..r with r = round(truncate·sigma),
// and normalized so the weights sum to 1.
//
// For r == 0 (very narrow kernels) it returns the identity kernel [1].
// sigma and truncate must be positive; callers validate them.
func GaussianKernel(sigma, truncate float64) []float64 {
	return gaussianKernel(sigma, truncate, maxKernelRadius)
}

// gaussianKernel returns the centre 2·min(r, maxRadius)+1 taps of
// GaussianKernel(sigma, truncate). The weights are normalized over the full
// -r..r support before slicing, so a capped kernel holds exactly the same
// values as the uncapped one; taps past an axis never reach a zero-padded
// grid and are simply not materialized.
func gaussianKernel(sigma, truncate float64, maxRadius int) []float64 {
	rf := math.Floor(truncate*sigma + 0.5)
	r := maxKernelRadius
	if rf < float64(maxKernelRadius) {
		r = int(rf)
	}
	if r <= 0 {
		return []float64{1}
	}
	keep := max(min(r, maxRadius), 0)

	// The 1/(σ√2π) constant is skipped; dividing by the sum also absorbs
	// the truncation.
	twoSigmaSq := 2 * sigma * sigma
	sum := 1.0
	var w float64
	for x := 1; x <= r; x++ {
		w = math.Exp(-float64(x*x) / twoSigmaSq)
		if w == 0 {
			break // underflow: the remaining taps add nothing
		}
		sum += 2 * w
	}

	k := make([]float64, 2*keep+1)
	for i := range k {
		x := float64(i - keep)
		k[i] = math.Exp(-(x*x)/twoSigmaSq) / sum
	}

	return k
}
