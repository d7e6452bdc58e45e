// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding through github.com/mewkiz/flac.
//
// The decoder hands out one FLAC frame per ReadSamples call. A frame whose
// channel count, sample rate or bit depth differs from the stream so far
// is reported as audio.ErrResetRequired.
package flac
