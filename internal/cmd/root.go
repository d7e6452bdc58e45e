// SPDX-License-Identifier: EPL-2.0

// Package cmd implements the audwave command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "AUDWAVE"

// Execute runs the command line with os.Args and returns the process exit code.
func Execute() int {
	if err := NewRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Flags, environment variables and the
// config file all resolve through v.
func NewRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "audwave",
		Short: "Render audio files as compact waveforms",
		Long: `audwave decodes WAV, AIFF, FLAC, Ogg Vorbis and MP3 files and
summarises them into a fixed number of amplitude values per second.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return initLogging(v.GetString("log-level"))
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./audwave.yaml or $HOME/.audwave/audwave.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newWaveformCmd(v),
		newServeCmd(v),
		newFormatsCmd(),
		newVersionCmd(),
	)

	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("audwave")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.audwave")
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "initConfig",
		"file":     v.ConfigFileUsed(),
	}).Debug("Using config file")

	return nil
}

func initLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return nil
}
