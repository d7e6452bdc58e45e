// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding primitives shared by every format.
//
// A Format recognises a container from its first bytes (Sniff) and opens
// it into a Container listing its Tracks. A Track with a known Codec can
// be turned into a Source, which yields interleaved float32 samples in
// the range [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Format Registry
//
// A Registry holds formats in registration order and probes unknown input
// against them:
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Decoder{})
//	registry.Register(flac.Decoder{})
//
//	c, err := registry.Probe("audio", bytes.NewReader(data))
//	if err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedFormat)
//	}
//	track, err := audio.FirstDecodableTrack(c.Tracks())
//	src, err := c.NewDecoder(track)
//
// Input that starts with an ID3v2 tag is sniffed past the tag, so a tagged
// FLAC file still opens as FLAC.
//
// # Errors
//
// Decoders report stream exhaustion with io.EOF, io.ErrUnexpectedEOF or an
// error wrapping ErrIO; IsEndOfStream recognises all three. Corrupt data
// wraps ErrDecode, and a mid-stream change of the signal parameters is
// ErrResetRequired.
package audio
