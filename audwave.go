// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"github.com/ik5/audwave/formats"
	"github.com/ik5/audwave/waveform"
)

// DefaultSamplesPerSecond is the output resolution used when a caller passes 0.
const DefaultSamplesPerSecond = waveform.DefaultSamplesPerSecond

// AudioToWaveform converts an encoded audio file into a waveform of mean
// magnitudes normalised to [0, 1].
//
// The container is detected from the content of data; WAV, AIFF, FLAC,
// Ogg Vorbis and MP3 are supported.
//
// Parameters:
//   - data: The complete encoded file
//   - samplesPerSecond: Output values per second of audio, 0 for DefaultSamplesPerSecond
//
// Returns:
//   - []float32: floor(duration × samplesPerSecond) values; the loudest block is 1.0
//     unless the audio is silent, in which case every value is 0
//   - error: a decoding failure, matchable with errors.Is against the audio
//     package sentinels (audio.ErrUnsupportedFormat, audio.ErrDecode, ...)
//
// Example:
//
//	data, _ := os.ReadFile("track.flac")
//	peaks, err := audwave.AudioToWaveform(data, 0)
func AudioToWaveform(data []byte, samplesPerSecond uint16) ([]float32, error) {
	return waveform.Generate(formats.Default(), data, waveform.Options{
		SamplesPerSecond: samplesPerSecond,
		Policy:           waveform.Magnitude,
	})
}

// AudioToWaveformV2 is like AudioToWaveform but keeps the sign of the
// largest-magnitude sample of every block and normalises to [-1, 1].
func AudioToWaveformV2(data []byte, samplesPerSecond uint16) ([]float32, error) {
	return waveform.Generate(formats.Default(), data, waveform.Options{
		SamplesPerSecond: samplesPerSecond,
		Policy:           waveform.SignedPeak,
	})
}
