package mp3

import "errors"

var (
	ErrNotMP3File  = errors.New("not an MPEG audio file")
	ErrNoSuchTrack = errors.New("MPEG audio streams carry a single track")
)
