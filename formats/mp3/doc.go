// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MPEG audio probing and MP3 decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode Layer III
// streams. Open skips a leading ID3v2 tag and reads the first frame header
// to describe the track; Layer I and II streams are recognised but report
// audio.CodecNull since no decoder is available for them.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (go-mp3 always produces stereo, mono input is duplicated)
//   - Sample rate: taken from the stream
package mp3
