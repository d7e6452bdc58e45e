// SPDX-License-Identifier: EPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/audwave/formats"
	"github.com/ik5/audwave/waveform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWaveformCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "waveform <file>",
		Short: "Print the waveform of an audio file as a JSON array",
		Long: `Print the waveform of an audio file as a JSON array.

Variant 1 averages magnitudes into [0, 1]; variant 2 keeps the signed peak
of every block and scales into [-1, 1]. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWaveform(cmd, v, args[0])
		},
	}

	c.Flags().IntP("rate", "r", waveform.DefaultSamplesPerSecond, "waveform values per second of audio")
	c.Flags().IntP("variant", "V", 1, "1 for mean magnitude, 2 for signed peak")

	v.BindPFlag("waveform.rate", c.Flags().Lookup("rate"))
	v.BindPFlag("waveform.variant", c.Flags().Lookup("variant"))

	return c
}

func runWaveform(cmd *cobra.Command, v *viper.Viper, path string) error {
	rate := v.GetInt("waveform.rate")
	if rate < 0 || rate > math.MaxUint16 {
		return fmt.Errorf("rate %d out of range [0, %d]", rate, math.MaxUint16)
	}

	policy, err := waveform.ParsePolicy(v.GetInt("waveform.variant"))
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	samples, err := waveform.Generate(formats.Default(), data, waveform.Options{
		SamplesPerSecond: uint16(rate),
		Policy:           policy,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return json.NewEncoder(cmd.OutOrStdout()).Encode(samples)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}
