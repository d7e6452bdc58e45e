// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audwave/audio"
	"github.com/sirupsen/logrus"
)

const (
	// probeHint names no real format, so probing relies on content sniffing.
	probeHint = "audio"

	minReadSize = 4096

	// maxStalledReads bounds consecutive (0, nil) reads from a decoder.
	maxStalledReads = 64
)

// PCM is a fully decoded track.
type PCM struct {
	// Samples are interleaved float32 values in [-1.0, 1.0].
	Samples    []float32
	Channels   int
	SampleRate int
	// Duration in seconds: decoded frames divided by SampleRate.
	Duration float32
}

// Decode probes data with reg, decodes its first decodable track and
// returns every sample. Running out of input ends decoding; whatever was
// decoded up to that point is kept.
func Decode(reg *audio.Registry, data []byte) (PCM, error) {
	c, err := reg.Probe(probeHint, bytes.NewReader(data))
	if err != nil {
		return PCM{}, err
	}
	defer c.Close()

	track, err := audio.FirstDecodableTrack(c.Tracks())
	if err != nil {
		return PCM{}, err
	}

	src, err := c.NewDecoder(track)
	if err != nil {
		return PCM{}, fmt.Errorf("%w: %w", audio.ErrDecoderConstruction, err)
	}
	defer src.Close()

	sampleRate := track.SampleRate
	if sampleRate <= 0 {
		sampleRate = src.SampleRate()
	}
	if sampleRate <= 0 {
		return PCM{}, fmt.Errorf("%w: %s track has no sample rate", audio.ErrDecoderConstruction, c.Format())
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Decode",
		"format":      c.Format(),
		"codec":       track.Codec,
		"sample_rate": sampleRate,
		"channels":    src.Channels(),
	}).Debug("Decoding track")

	samples, frames, err := readAll(src)
	if err != nil {
		return PCM{}, err
	}

	return PCM{
		Samples:    samples,
		Channels:   src.Channels(),
		SampleRate: sampleRate,
		Duration:   float32(frames) / float32(sampleRate),
	}, nil
}

// readAll drains src and returns the samples and the number of frames.
func readAll(src audio.Source) ([]float32, int, error) {
	channels := max(src.Channels(), 1)
	if channels > 2 {
		return nil, 0, fmt.Errorf("%w: %d channels", audio.ErrUnsupportedChannelLayout, channels)
	}

	size := max(src.BufSize(), minReadSize)
	size -= size % channels
	buf := make([]float32, size)

	var (
		samples []float32
		frames  int
		stalled int
	)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			stalled = 0

			channels = max(src.Channels(), 1)
			if channels > 2 {
				return nil, 0, fmt.Errorf("%w: %d channels", audio.ErrUnsupportedChannelLayout, channels)
			}

			samples = append(samples, buf[:n]...)
			frames += n / channels
		}

		if err != nil {
			if audio.IsEndOfStream(err) {
				return samples, frames, nil
			}
			return nil, 0, classify(err)
		}

		if n == 0 {
			stalled++
			if stalled >= maxStalledReads {
				return nil, 0, fmt.Errorf("%w: decoder returned no samples", audio.ErrDecode)
			}
		}
	}
}

// classify maps a decoder failure onto the error taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, audio.ErrResetRequired),
		errors.Is(err, audio.ErrPacketRead),
		errors.Is(err, audio.ErrDecode),
		errors.Is(err, audio.ErrUnsupportedChannelLayout):
		return err
	default:
		return fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}
}
