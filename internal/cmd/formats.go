// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"fmt"

	"github.com/ik5/audwave/formats"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported container formats in probe order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range formats.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
