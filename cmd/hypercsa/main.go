// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/katalvlaran/hypercsa/cmd/hypercsa/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
