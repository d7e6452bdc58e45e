// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding.
//
// It uses github.com/go-audio/wav to parse the RIFF structure and reads
// integer PCM at 8, 16, 24 or 32 bits, and 32-bit IEEE float (clipped to
// [-1.0, 1.0]). Files with another format tag (A-law, ADPCM) open fine but
// their track is reported as audio.CodecNull.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedBitDepth: sample width other than 8, 16, 24 or 32 bits
//   - ErrInvalidWavLayout: zero channels or sample rate
package wav
