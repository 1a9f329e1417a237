// SPDX-License-Identifier: MIT

package density

import (
	"fmt"

	"github.com/katalvlaran/fixmat/table"
)

// Sentinels wrap the table error kinds so callers can match either the
// specific condition or its kind: errors.Is(err, table.ErrInvalidValue)
// holds for every invalid-argument error below.
var (
	// ErrInvalidScale indicates a scale factor outside (0, 1] or non-finite.
	ErrInvalidScale = fmt.Errorf("density: scale factor must be finite and in (0, 1]: %w", table.ErrInvalidValue)

	// ErrInvalidBandwidth indicates a kernel standard deviation that is not a
	// positive finite number, including a missing pixels-per-degree value.
	ErrInvalidBandwidth = fmt.Errorf("density: kernel bandwidth must be finite and > 0: %w", table.ErrInvalidValue)

	// ErrInvalidTruncate indicates a non-positive kernel truncation radius.
	ErrInvalidTruncate = fmt.Errorf("density: kernel truncation must be finite and > 0: %w", table.ErrInvalidValue)

	// ErrImageSize indicates image dimensions that are not positive and
	// finite, or that scale to an empty grid.
	ErrImageSize = fmt.Errorf("density: image size must be finite and > 0: %w", table.ErrShape)
)
