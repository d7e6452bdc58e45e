// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/ik5/audwave/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
