// SPDX-License-Identifier: EPL-2.0

// Package waveform turns encoded audio into a fixed-resolution amplitude
// envelope.
//
// Generate runs three stages which are also exported on their own:
//
//   - Decode: probe the container, decode the first decodable track to
//     interleaved float32 PCM and compute its duration.
//   - Reduce: split the PCM into duration × rate blocks and summarise each
//     block with Mean (average magnitude) or Peak (signed extreme).
//   - Normalize: rescale by the largest value (Unsigned) or magnitude
//     (Signed).
//
// Reduce and Normalize split their work across GOMAXPROCS goroutines; each
// goroutine owns a contiguous range of the output, so results do not
// depend on scheduling.
//
//	out, err := waveform.Generate(formats.Default(), data, waveform.Options{
//	    SamplesPerSecond: 50,
//	    Policy:           waveform.SignedPeak,
//	})
package waveform
