// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/audwave/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// source decodes one FLAC frame per refill and hands it out as interleaved float32.
type source struct {
	dec        frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int
	blockSize  int

	pending []float32
	frame   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.blockSize * s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if len(s.pending) == 0 {
		if err := s.nextFrame(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if audio.IsEndOfStream(err) {
			return err
		}
		return fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}

	channels := f.Channels.Count()
	if channels != s.channels ||
		(f.SampleRate != 0 && int(f.SampleRate) != s.sampleRate) ||
		(f.BitsPerSample != 0 && int(f.BitsPerSample) != s.bitDepth) {
		return fmt.Errorf("%w: frame switches to %d Hz, %d channels, %d-bit",
			audio.ErrResetRequired, f.SampleRate, channels, f.BitsPerSample)
	}

	if len(f.Subframes) < channels {
		return fmt.Errorf("%w: frame has %d subframes for %d channels",
			audio.ErrDecode, len(f.Subframes), channels)
	}

	frames := int(f.BlockSize)
	if cap(s.frame) < frames*channels {
		s.frame = make([]float32, frames*channels)
	}
	s.frame = s.frame[:frames*channels]

	scale := fullScale(s.bitDepth)
	for ch := range channels {
		samples := f.Subframes[ch].Samples
		for i := 0; i < frames && i < len(samples); i++ {
			s.frame[i*channels+ch] = float32(samples[i]) / scale
		}
	}

	s.pending = s.frame

	return nil
}

// fullScale handles every FLAC sample width (4 to 32 bits).
func fullScale(bitDepth int) float32 {
	return float32(uint64(1) << (bitDepth - 1))
}

type container struct {
	stream *flac.Stream
	track  audio.Track
	// blockSize is the largest block the stream declares.
	blockSize int

	// The container and its decoder share one stream; it is closed once.
	closeOnce sync.Once
	closeErr  error
}

func (c *container) Format() string        { return "flac" }
func (c *container) Tracks() []audio.Track { return []audio.Track{c.track} }

func (c *container) Close() error {
	c.closeOnce.Do(func() {
		if err := c.stream.Close(); err != nil {
			c.closeErr = fmt.Errorf("closing flac stream: %w", err)
		}
	})

	return c.closeErr
}

func (c *container) NewDecoder(t audio.Track) (audio.Source, error) {
	if t.ID != c.track.ID || t.Codec != audio.CodecFLAC {
		return nil, ErrNoSuchTrack
	}

	if t.SampleRate <= 0 || t.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidStreamInfo, t.SampleRate, t.Channels)
	}

	if t.BitDepth < 4 || t.BitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, t.BitDepth)
	}

	return &source{
		dec:        c.stream,
		closer:     c,
		sampleRate: t.SampleRate,
		channels:   t.Channels,
		bitDepth:   t.BitDepth,
		blockSize:  c.blockSize,
	}, nil
}

// Decoder probes and opens native FLAC streams through github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Name() string { return "flac" }

func (Decoder) Sniff(header []byte) bool {
	return bytes.HasPrefix(header, []byte("fLaC"))
}

func (Decoder) Open(rs io.ReadSeeker) (audio.Container, error) {
	stream, err := flac.New(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	blockSize := int(info.BlockSizeMax)
	if blockSize == 0 {
		blockSize = 4096
	}

	return &container{
		stream: stream,
		track: audio.Track{
			ID:         0,
			Codec:      audio.CodecFLAC,
			SampleRate: int(info.SampleRate),
			Channels:   int(info.NChannels),
			BitDepth:   int(info.BitsPerSample),
		},
		blockSize: blockSize,
	}, nil
}

// Decode opens r and returns a Source for its audio frames.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return audio.DecodeFirstTrack(d, r)
}
