// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
)

// Codec identifies the encoding of a track.
type Codec string

const (
	// CodecNull marks a track whose codec is not recognised.
	CodecNull Codec = ""
	// CodecPCM is integer PCM.
	CodecPCM Codec = "pcm"
	// CodecPCMFloat is 32-bit IEEE 754 PCM.
	CodecPCMFloat Codec = "pcm_float"
	CodecFLAC     Codec = "flac"
	CodecMP3      Codec = "mp3"
	CodecVorbis   Codec = "vorbis"
)

// Track describes one audio stream inside a container.
type Track struct {
	ID         int
	Codec      Codec
	SampleRate int
	Channels   int
	// BitDepth is zero for codecs without a fixed sample width.
	BitDepth int
}

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels of the most recently decoded frame (1=mono, 2=stereo, ...).
	Channels() int
	// ReadSamples decodes the next frame into dst as interleaved float32 samples.
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Container is an opened, probed media file.
type Container interface {
	// Format is the registry name of the container format.
	Format() string
	Tracks() []Track
	// NewDecoder builds a Source for one of the container's tracks.
	NewDecoder(t Track) (Source, error)
	Close() error
}

// Format recognises and opens one container format.
type Format interface {
	Name() string
	// Sniff reports whether header (the first bytes of the file) looks like this format.
	Sniff(header []byte) bool
	Open(rs io.ReadSeeker) (Container, error)
}

// FirstDecodableTrack returns the first track with a recognised codec.
func FirstDecodableTrack(tracks []Track) (Track, error) {
	for _, t := range tracks {
		if t.Codec != CodecNull {
			return t, nil
		}
	}

	return Track{}, ErrNoDecodableTrack
}
