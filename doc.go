// SPDX-License-Identifier: EPL-2.0

// Package audwave renders audio files as compact waveforms for scrubber and
// preview UIs.
//
// The input is the raw bytes of a file of unknown type; the output is an
// ordered list of float32 values at a chosen temporal resolution.
//
// # Supported Formats
//
// The package decodes:
//   - WAV (integer PCM 8/16/24/32-bit) via formats/wav
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - MP3 via formats/mp3
//
// Matroska and WebM containers are not supported. Inputs with more than two
// channels are rejected rather than downmixed.
//
// # Quick Start
//
//	data, _ := os.ReadFile("audio.mp3")
//
//	// Mean magnitudes in [0, 1], 100 values per second
//	peaks, err := audwave.AudioToWaveform(data, 0)
//
//	// Signed peaks in [-1, 1], 50 values per second
//	signed, err := audwave.AudioToWaveformV2(data, 50)
//
// # Pipeline
//
// Both functions are thin wrappers over the waveform package, which exposes
// each stage (Decode, Reduce, Normalize) for callers that need the
// intermediate results or a custom format registry.
package audwave
