// SPDX-License-Identifier: MIT

// Command fixmat inspects fixation tables and computes density maps.
package main

import "github.com/katalvlaran/fixmat/internal/cli"

func main() {
	cli.Execute()
}
