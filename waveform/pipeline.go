// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"

	"github.com/ik5/audwave/audio"
	"github.com/sirupsen/logrus"
)

// Policy pairs a Reducer with a Scale.
type Policy int

const (
	// Magnitude produces mean absolute amplitudes scaled to [0, 1].
	Magnitude Policy = iota
	// SignedPeak produces signed block peaks scaled to [-1, 1].
	SignedPeak
)

// ParsePolicy maps the public variant numbers 1 and 2 to a Policy.
func ParsePolicy(variant int) (Policy, error) {
	switch variant {
	case 1:
		return Magnitude, nil
	case 2:
		return SignedPeak, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownVariant, variant)
	}
}

// Variant is the inverse of ParsePolicy.
func (p Policy) Variant() int {
	if p == SignedPeak {
		return 2
	}
	return 1
}

func (p Policy) Reducer() Reducer {
	if p == SignedPeak {
		return Peak
	}
	return Mean
}

func (p Policy) Scale() Scale {
	if p == SignedPeak {
		return Signed
	}
	return Unsigned
}

// Options control Generate.
type Options struct {
	// SamplesPerSecond of output; 0 means DefaultSamplesPerSecond.
	SamplesPerSecond uint16
	Policy           Policy
}

// Generate decodes data and turns it into a normalised waveform.
func Generate(reg *audio.Registry, data []byte, opts Options) ([]float32, error) {
	pcm, err := Decode(reg, data)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Generate",
			"size":     len(data),
			"error":    err.Error(),
		}).Debug("Decoding failed")
		return nil, err
	}

	reduced := Reduce(pcm.Samples, pcm.Duration, opts.SamplesPerSecond, opts.Policy.Reducer())
	out := Normalize(reduced, opts.Policy.Scale())

	logrus.WithFields(logrus.Fields{
		"function":  "Generate",
		"samples":   len(pcm.Samples),
		"channels":  pcm.Channels,
		"duration":  pcm.Duration,
		"rate":      opts.SamplesPerSecond,
		"reducer":   opts.Policy.Reducer(),
		"scale":     opts.Policy.Scale(),
		"out_count": len(out),
	}).Debug("Waveform generated")

	return out, nil
}
