// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/ik5/audwave/internal/cmd.version=..."
var (
	version    = "dev"
	commitHash string
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of audwave",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "audwave Version: %s, %s/%s, Commit: %s\n",
				version, runtime.GOOS, runtime.GOARCH, commitHash)
		},
	}
}
