// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/ik5/audwave/audio"
)

const (
	pageHeaderSize = 27
	capturePattern = "OggS"
)

var vorbisIdentMagic = []byte("\x01vorbis")

// firstPacketTrack reads the first Ogg page and describes the logical
// stream it starts. Streams other than Vorbis (Opus, Speex, FLAC-in-Ogg)
// get CodecNull.
func firstPacketTrack(r io.Reader) (audio.Track, error) {
	header := make([]byte, pageHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return audio.Track{}, ErrNotOggFile
	}

	if !bytes.HasPrefix(header, []byte(capturePattern)) {
		return audio.Track{}, ErrNotOggFile
	}

	segments := make([]byte, header[26])
	if _, err := io.ReadFull(r, segments); err != nil {
		return audio.Track{}, ErrInvalidOggPage
	}

	size := 0
	for _, s := range segments {
		size += int(s)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return audio.Track{}, ErrInvalidOggPage
	}

	track := audio.Track{
		ID:    int(binary.LittleEndian.Uint32(header[14:18])),
		Codec: audio.CodecNull,
	}

	// Identification header: magic, version(4), channels(1), rate(4)
	if len(payload) >= 16 && bytes.HasPrefix(payload, vorbisIdentMagic) {
		track.Codec = audio.CodecVorbis
		track.Channels = int(payload[11])
		track.SampleRate = int(binary.LittleEndian.Uint32(payload[12:16]))
	}

	return track, nil
}
