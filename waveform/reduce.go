// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"runtime"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"
)

// DefaultSamplesPerSecond is used when a caller asks for rate 0.
const DefaultSamplesPerSecond = 100

// Reducer selects how a block of samples becomes one value.
type Reducer int

const (
	// Mean averages the absolute sample values of a block.
	Mean Reducer = iota
	// Peak keeps the sample with the largest magnitude, sign included.
	// The first one wins on ties.
	Peak
)

func (r Reducer) String() string {
	switch r {
	case Mean:
		return "mean"
	case Peak:
		return "peak"
	default:
		return "unknown"
	}
}

// BlockCount is the number of values Reduce produces for duration seconds
// at rate values per second.
func BlockCount(duration float32, rate uint16) int {
	if rate == 0 {
		rate = DefaultSamplesPerSecond
	}

	target := math32.Floor(duration * float32(rate))
	if !(target > 0) {
		return 0
	}

	return int(target)
}

// Reduce splits samples into BlockCount(duration, rate) consecutive blocks
// and summarises each one with r. Blocks hold len(samples)/count values
// (at least one), the last block also takes the remainder, and blocks past
// the end of samples are 0.
func Reduce(samples []float32, duration float32, rate uint16, r Reducer) []float32 {
	target := BlockCount(duration, rate)
	if target == 0 || len(samples) == 0 {
		return []float32{}
	}

	blockSize := max(1, len(samples)/target)
	summarise := meanAbs
	if r == Peak {
		summarise = signedPeak
	}

	out := make([]float32, target)
	forEachRange(target, workerCount(target), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			start := i * blockSize
			if start >= len(samples) {
				continue
			}

			end := start + blockSize
			if i == target-1 || end > len(samples) {
				end = len(samples)
			}

			out[i] = summarise(samples[start:end])
		}
	})

	return out
}

func meanAbs(block []float32) float32 {
	var sum float32
	for _, v := range block {
		sum += math32.Abs(v)
	}

	return sum / float32(len(block))
}

func signedPeak(block []float32) float32 {
	peak := block[0]
	peakAbs := math32.Abs(peak)

	for _, v := range block[1:] {
		if a := math32.Abs(v); a > peakAbs {
			peak, peakAbs = v, a
		}
	}

	return peak
}

// workerCount is the number of ranges forEachRange uses for n items.
func workerCount(n int) int {
	return max(1, min(runtime.GOMAXPROCS(0), n))
}

// forEachRange splits [0, n) into at most workers contiguous ranges and
// runs fn on each concurrently, at most GOMAXPROCS at a time. w is the
// range index. Workers write only inside their own range.
func forEachRange(n, workers int, fn func(w, lo, hi int)) {
	if n <= 0 {
		return
	}

	if workers <= 1 {
		fn(0, 0, n)
		return
	}

	per := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for w := 0; w*per < n; w++ {
		lo := w * per
		hi := min(lo+per, n)
		g.Go(func() error {
			fn(w, lo, hi)
			return nil
		})
	}

	// fn cannot fail
	_ = g.Wait()
}
