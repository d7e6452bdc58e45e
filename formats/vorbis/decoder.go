// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audwave/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32 // buffer for reading frames from decoder
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// oggvorbis fills whole frames only
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	// Read returns the number of interleaved values, not frames
	n, err := s.dec.Read(s.frameBuf)
	if err != nil && !audio.IsEndOfStream(err) {
		return 0, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}

	if n == 0 {
		return 0, err
	}

	copy(dst, s.frameBuf[:n])

	return n, err
}

type container struct {
	rs    io.ReadSeeker
	track audio.Track
}

func (c *container) Format() string        { return "ogg" }
func (c *container) Tracks() []audio.Track { return []audio.Track{c.track} }
func (c *container) Close() error          { return nil }

func (c *container) NewDecoder(t audio.Track) (audio.Source, error) {
	if t.ID != c.track.ID || t.Codec != audio.CodecVorbis {
		return nil, ErrNoSuchTrack
	}

	if _, err := c.rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	dec, err := oggvorbis.NewReader(c.rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecoderConstruction, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}

// Decoder probes Ogg streams and decodes Vorbis through
// github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Name() string { return "ogg" }

func (Decoder) Sniff(header []byte) bool {
	return bytes.HasPrefix(header, []byte(capturePattern))
}

func (Decoder) Open(rs io.ReadSeeker) (audio.Container, error) {
	track, err := firstPacketTrack(rs)
	if err != nil {
		return nil, err
	}

	return &container{rs: rs, track: track}, nil
}

// Decode opens r and returns a Source for its Vorbis stream.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return audio.DecodeFirstTrack(d, r)
}
