// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audwave/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // return sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	// go-mp3 returns 16-bit little-endian PCM bytes (stereo interleaved)
	// Each sample is 2 bytes, so we need len(dst) * 2 bytes
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if err != nil && !audio.IsEndOfStream(err) {
		return 0, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}

	if n == 0 {
		return 0, err
	}

	// Each sample is 2 bytes (int16 little-endian)
	samples := n / 2
	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		val := int16(low | (high << 8))
		dst[i] = float32(val) / 32768.0
	}

	return samples, err
}

type container struct {
	rs    io.ReadSeeker
	track audio.Track
}

func (c *container) Format() string        { return "mp3" }
func (c *container) Tracks() []audio.Track { return []audio.Track{c.track} }
func (c *container) Close() error          { return nil }

func (c *container) NewDecoder(t audio.Track) (audio.Source, error) {
	if t.ID != c.track.ID || t.Codec != audio.CodecMP3 {
		return nil, ErrNoSuchTrack
	}

	if _, err := c.rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding mp3 stream: %w", err)
	}

	dec, err := gomp3.NewDecoder(c.rs)
	if err != nil {
		return nil, fmt.Errorf("creating mp3 decoder: %w", err)
	}

	// go-mp3 outputs stereo (2 channels) for every MP3 file
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   2,
		buf:        make([]byte, 8192),
	}, nil
}

// Decoder probes MPEG audio streams and decodes Layer III through
// github.com/hajimehoshi/go-mp3. Layer I and II streams are recognised
// but carry no decodable track.
type Decoder struct{}

func (Decoder) Name() string { return "mp3" }

func (Decoder) Sniff(header []byte) bool {
	if bytes.HasPrefix(header, []byte("ID3")) {
		return true
	}

	_, ok := parseFrameHeader(header)
	return ok
}

func (Decoder) Open(rs io.ReadSeeker) (audio.Container, error) {
	h, err := findFrameHeader(rs)
	if err != nil {
		return nil, err
	}

	codec := audio.CodecNull
	if h.layer == 3 {
		codec = audio.CodecMP3
	}

	return &container{
		rs: rs,
		track: audio.Track{
			ID:         0,
			Codec:      codec,
			SampleRate: h.sampleRate,
			// decoded output is always stereo
			Channels: 2,
		},
	}, nil
}

// Decode opens r and returns a Source for its Layer III audio.
func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return audio.DecodeFirstTrack(d, r)
}
