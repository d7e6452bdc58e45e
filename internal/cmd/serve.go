// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audwave/formats"
	"github.com/ik5/audwave/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve waveform rendering over HTTP",
		Long:  `Serve waveform rendering over HTTP under /api/v1.0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(server.Settings{
				Address:      v.GetString("server.address"),
				MaxBodyBytes: v.GetInt64("server.max-body-bytes"),
				Registry:     formats.Default(),
				Logger:       logrus.StandardLogger(),
			})

			return srv.ListenAndServe(ctx)
		},
	}

	c.Flags().StringP("address", "a", ":8080", "address to listen on")
	c.Flags().Int64("max-body-bytes", server.DefaultMaxBodyBytes, "largest accepted upload in bytes")

	v.BindPFlag("server.address", c.Flags().Lookup("address"))
	v.BindPFlag("server.max-body-bytes", c.Flags().Lookup("max-body-bytes"))

	return c
}
