// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/internal/pcmbuf"
	"github.com/ik5/audwave/utils"
)

// WAVE format tags
const (
	formatPCM        = 0x0001
	formatIEEEFloat  = 0x0003
	formatExtensible = 0xFFFE
)

type container struct {
	dec   *gowav.Decoder
	track audio.Track
}

func (c *container) Format() string        { return "wav" }
func (c *container) Tracks() []audio.Track { return []audio.Track{c.track} }
func (c *container) Close() error          { return nil }

func (c *container) NewDecoder(t audio.Track) (audio.Source, error) {
	if t.ID != c.track.ID || (t.Codec != audio.CodecPCM && t.Codec != audio.CodecPCMFloat) {
		return nil, ErrNoSuchTrack
	}

	if t.SampleRate <= 0 || t.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidWavLayout, t.SampleRate, t.Channels)
	}

	if t.Codec == audio.CodecPCMFloat {
		if t.BitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, t.BitDepth)
		}
		return pcmbuf.New(c.dec, t.SampleRate, t.Channels, t.BitDepth, pcmbuf.Float32), nil
	}

	if !utils.SupportedBitDepth(t.BitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, t.BitDepth)
	}

	return pcmbuf.New(c.dec, t.SampleRate, t.Channels, t.BitDepth, pcmbuf.Unsigned8), nil
}

// Decoder probes and opens RIFF/WAVE files through github.com/go-audio/wav.
type Decoder struct{}

func (Decoder) Name() string { return "wav" }

func (Decoder) Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[:4], []byte("RIFF")) &&
		bytes.Equal(header[8:12], []byte("WAVE"))
}

func (Decoder) Open(rs io.ReadSeeker) (audio.Container, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	codec := audio.CodecNull
	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
		codec = audio.CodecPCM
	case formatIEEEFloat:
		codec = audio.CodecPCMFloat
	}

	return &container{
		dec: dec,
		track: audio.Track{
			ID:         0,
			Codec:      codec,
			SampleRate: int(dec.SampleRate),
			Channels:   int(dec.NumChans),
			BitDepth:   int(dec.BitDepth),
		},
	}, nil
}

// Decode opens r and returns a Source for its PCM data.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return audio.DecodeFirstTrack(d, r)
}
