// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	ErrUnsupportedFormat        = errors.New("unsupported format")
	ErrNoDecodableTrack         = errors.New("no supported audio tracks")
	ErrDecoderConstruction      = errors.New("error while creating decoder")
	ErrUnsupportedChannelLayout = errors.New("more than two channels not supported")
	ErrResetRequired            = errors.New("reset required, not implemented")
	ErrDecode                   = errors.New("error decoding packet")
	ErrPacketRead               = errors.New("error reading packet")

	// ErrIO marks failures of the underlying byte stream. Decoders wrap it so
	// callers can treat the condition as end of stream.
	ErrIO = errors.New("i/o error")
)

// IsEndOfStream reports whether err only signals that the stream ran out of data.
func IsEndOfStream(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, ErrIO)
}
