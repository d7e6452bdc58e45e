package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
	ErrInvalidWavLayout    = errors.New("invalid WAV layout")
	ErrNoSuchTrack         = errors.New("WAV files carry a single track")
)
