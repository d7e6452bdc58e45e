// SPDX-License-Identifier: EPL-2.0

// Package pcmbuf adapts go-audio integer PCM decoders to audio.Source.
package pcmbuf

import (
	"errors"
	"fmt"
	"io"

	"github.com/chewxy/math32"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/utils"
)

// DefaultBufSize is the number of samples requested per ReadSamples when
// the caller has no better estimate.
const DefaultBufSize = 4096

// Encoding says how the integers a Reader yields map to samples.
type Encoding int

const (
	// Signed integers at every bit depth (AIFF).
	Signed Encoding = iota
	// Unsigned8 is Signed except 8-bit data, stored with a 128 offset (WAV).
	Unsigned8
	// Float32 values are IEEE 754 bit patterns read as 32-bit integers.
	Float32
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source wraps a go-audio Reader to implement audio.Source.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	encoding   Encoding
	intBuf     *goaudio.IntBuffer
}

// New returns a Source reading from dec.
func New(dec Reader, sampleRate, channels, bitDepth int, enc Encoding) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		encoding:   enc,
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return DefaultBufSize
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// Whole frames only
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, want),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		if audio.IsEndOfStream(err) {
			return s.convert(dst, n), err
		}
		return 0, fmt.Errorf("%w: %w", audio.ErrPacketRead, err)
	}

	if n == 0 {
		return 0, io.EOF
	}

	converted := s.convert(dst, n)

	// Fewer samples than requested means the data chunk is exhausted
	if n < want || err != nil {
		return converted, io.EOF
	}

	return converted, nil
}

func (s *Source) convert(dst []float32, n int) int {
	data := s.intBuf.Data[:n]

	switch {
	case s.encoding == Float32:
		for i, v := range data {
			dst[i] = clamp(math32.Float32frombits(uint32(v)))
		}
		return n
	case s.encoding == Unsigned8 && s.bitDepth == 8:
		for i, v := range data {
			dst[i] = utils.Uint8ToFloat32(v)
		}
		return n
	}

	for i, v := range data {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	return n
}

// clamp keeps float samples inside [-1, 1]; NaN becomes silence.
func clamp(v float32) float32 {
	switch {
	case math32.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	}

	return v
}
