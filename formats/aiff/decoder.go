// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/internal/pcmbuf"
	"github.com/ik5/audwave/utils"
)

type container struct {
	dec   *aiff.Decoder
	track audio.Track
}

func (c *container) Format() string        { return "aiff" }
func (c *container) Tracks() []audio.Track { return []audio.Track{c.track} }
func (c *container) Close() error          { return nil }

func (c *container) NewDecoder(t audio.Track) (audio.Source, error) {
	if t.ID != c.track.ID || (t.Codec != audio.CodecPCM && t.Codec != audio.CodecPCMFloat) {
		return nil, ErrNoSuchTrack
	}

	if t.SampleRate <= 0 || t.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrUnsupportedAiffLayout, t.SampleRate, t.Channels)
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

	// AIFF stores signed samples at every depth
	return pcmbuf.New(c.dec, t.SampleRate, t.Channels, t.BitDepth, pcmbuf.Signed), nil
}

// Decoder probes and opens AIFF/AIFF-C files through github.com/go-audio/aiff.
type Decoder struct{}

func (Decoder) Name() string { return "aiff" }

func (Decoder) Sniff(header []byte) bool {
	if len(header) < 12 || !bytes.Equal(header[:4], []byte("FORM")) {
		return false
	}

	form := header[8:12]
	return bytes.Equal(form, []byte("AIFF")) || bytes.Equal(form, []byte("AIFC"))
}

func (Decoder) Open(rs io.ReadSeeker) (audio.Container, error) {
	dec := aiff.NewDecoder(rs)

	// Read file info
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}

	format := dec.Format()
	if format == nil || dec.NumChans < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &container{
		dec: dec,
		track: audio.Track{
			ID:         0,
			Codec:      codecFor(dec.Encoding, int(dec.BitDepth)),
			SampleRate: format.SampleRate,
			Channels:   format.NumChannels,
			BitDepth:   int(dec.BitDepth),
		},
	}, nil
}

// codecFor maps an AIFF-C compression type to a codec. Plain AIFF files
// leave it unset.
func codecFor(encoding [4]byte, bitDepth int) audio.Codec {
	switch string(encoding[:]) {
	case "\x00\x00\x00\x00", "NONE", "twos", "sowt":
		return audio.CodecPCM
	case "fl32", "FL32":
		if bitDepth == 32 {
			return audio.CodecPCMFloat
		}
	}

	return audio.CodecNull
}

// Decode opens r and returns a Source for its PCM data.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return audio.DecodeFirstTrack(d, r)
}
