// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode the audio.
// Open inspects only the first Ogg page: a Vorbis identification header
// gives a decodable track, any other logical stream (Opus, Speex) is
// reported with audio.CodecNull.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
package vorbis
