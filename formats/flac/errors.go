package flac

import "errors"

var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	ErrInvalidStreamInfo   = errors.New("invalid FLAC stream info")
	ErrNoSuchTrack         = errors.New("FLAC files carry a single track")
)
