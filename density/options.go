// SPDX-License-Identifier: MIT

package density

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/fixmat/table"
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultScaleFactor keeps the grid at full image resolution.
	DefaultScaleFactor = 1.0

	// DefaultDegrees sets the kernel sd to one degree of visual angle.
	DefaultDegrees = 1.0

	// DefaultTruncate cuts the kernel at four standard deviations.
	DefaultTruncate = 4.0
)

// fwhmPerSigma is 2·√(2·ln 2), the ratio between a Gaussian's full width at
// half maximum and its standard deviation.
var fwhmPerSigma = 2 * math.Sqrt(2*math.Ln2)

// Normalization selects how the smoothed grid is scaled.
type Normalization uint8

const (
	// Raw leaves smoothed counts untouched.
	Raw Normalization = iota
	// UnitMass rescales the grid to total mass 1.
	UnitMass
	// CountMass rescales the grid to total mass equal to the number of
	// binned (in-image) fixations.
	CountMass
)

var normalizationNames = [...]string{Raw: "raw", UnitMass: "unit", CountMass: "count"}

// String returns "raw", "unit" or "count".
func (n Normalization) String() string {
	if int(n) < len(normalizationNames) {
		return normalizationNames[n]
	}

	return fmt.Sprintf("Normalization(%d)", uint8(n))
}

// ParseNormalization maps "raw", "unit" or "count" (case-insensitive) to a
// Normalization. Returns table.ErrInvalidValue for anything else.
func ParseNormalization(s string) (Normalization, error) {
	for k, name := range normalizationNames {
		if strings.EqualFold(s, name) {
			return Normalization(k), nil
		}
	}

	return Raw, fmt.Errorf("density: normalization %q: %w", s, table.ErrInvalidValue)
}

// Options configures a density computation.
type Options struct {
	// ScaleFactor downsamples coordinates and grid alike; must be in (0, 1].
	ScaleFactor float64

	// PixelsPerDegree converts visual angle to image pixels. FromTable fills
	// it from the table's pixels_per_degree parameter when left at 0.
	PixelsPerDegree float64

	// Degrees is the kernel standard deviation in degrees of visual angle.
	Degrees float64

	// Sigma, when > 0, is the kernel standard deviation in image pixels and
	// takes precedence over Degrees·PixelsPerDegree.
	Sigma float64

	// Truncate is the kernel radius in standard deviations.
	Truncate float64

	// Normalization selects the output scaling.
	Normalization Normalization
}

// DefaultOptions returns full resolution, a one-degree kernel truncated at
// 4 sd, and Raw normalization. PixelsPerDegree is left 0 (taken from the
// table by FromTable).
func DefaultOptions() Options {
	return Options{
		ScaleFactor:   DefaultScaleFactor,
		Degrees:       DefaultDegrees,
		Truncate:      DefaultTruncate,
		Normalization: Raw,
	}
}

// WithFWHM returns a copy of o whose kernel has the given full width at
// half maximum, in degrees of visual angle.
func (o Options) WithFWHM(fwhmDegrees float64) Options {
	o.Degrees = fwhmDegrees / fwhmPerSigma

	return o
}

// sigmaPixels resolves the kernel standard deviation in image pixels.
func (o Options) sigmaPixels() (float64, error) {
	if o.Sigma != 0 {
		if !positiveFinite(o.Sigma) {
			return 0, ErrInvalidBandwidth
		}
		return o.Sigma, nil
	}
	if !positiveFinite(o.Degrees) || !positiveFinite(o.PixelsPerDegree) {
		return 0, ErrInvalidBandwidth
	}

	return o.Degrees * o.PixelsPerDegree, nil
}

// validateScale checks s ∈ (0, 1].
func validateScale(s float64) error {
	if !positiveFinite(s) || s > 1 {
		return ErrInvalidScale
	}

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
