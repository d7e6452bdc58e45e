// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/chewxy/math32"
)

// Scale selects the output range of Normalize.
type Scale int

const (
	// Unsigned divides by the largest value, mapping non-negative input to [0, 1].
	Unsigned Scale = iota
	// Signed divides by the largest magnitude, mapping input to [-1, 1].
	Signed
)

func (s Scale) String() string {
	switch s {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	default:
		return "unknown"
	}
}

// Normalize returns a rescaled copy of values. When the reference maximum
// is zero the values are copied unchanged.
func Normalize(values []float32, s Scale) []float32 {
	out := make([]float32, len(values))
	if len(values) == 0 {
		return out
	}

	workers := workerCount(len(values))
	ref := peakOf(values, s, workers)

	multiplier := float32(1)
	if ref != 0 {
		multiplier = 1 / ref
	}

	forEachRange(len(values), workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = values[i] * multiplier
		}
	})

	return out
}

// peakOf reduces per-range maxima: max(v) for Unsigned, max(|v|) for Signed.
func peakOf(values []float32, s Scale, workers int) float32 {
	seed := math32.Inf(-1)
	if s == Signed {
		seed = 0
	}

	partials := make([]float32, workers)
	for i := range partials {
		partials[i] = seed
	}

	forEachRange(len(values), workers, func(w, lo, hi int) {
		m := seed
		for _, v := range values[lo:hi] {
			if s == Signed {
				v = math32.Abs(v)
			}
			m = math32.Max(m, v)
		}
		partials[w] = m
	})

	m := seed
	for _, p := range partials {
		m = math32.Max(m, p)
	}

	return m
}
