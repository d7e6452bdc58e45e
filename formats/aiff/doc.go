// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Samples are big-endian signed integers of 8, 16, 24 or 32 bits and are
// returned as float32 values in the range [-1.0, 1.0].
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Stores 8-bit samples signed (WAV uses unsigned)
//
// # File Extensions
//
// AIFF files typically use:
//   - .aif or .aiff for standard AIFF
//   - .aifc for AIFF-C
//
// AIFF-C files are decoded when uncompressed (NONE, twos, sowt) or 32-bit
// float (fl32). Other compression types give an audio.CodecNull track.
package aiff
