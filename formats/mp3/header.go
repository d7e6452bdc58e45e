// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"io"

	"github.com/ik5/audwave/audio"
)

// maxSyncScan bounds how far past the ID3 tag Open looks for a frame header.
const maxSyncScan = 64 * 1024

// frameHeader holds the fields of an MPEG audio frame header that matter for probing.
type frameHeader struct {
	version    int // 1, 2 or 25 (MPEG 2.5)
	layer      int // 1, 2 or 3
	sampleRate int
	channels   int
}

var sampleRates = map[int][3]int{
	1:  {44100, 48000, 32000},
	2:  {22050, 24000, 16000},
	25: {11025, 12000, 8000},
}

// parseFrameHeader decodes the 4-byte header at the start of b.
func parseFrameHeader(b []byte) (frameHeader, bool) {
	if len(b) < 4 || b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return frameHeader{}, false
	}

	var h frameHeader

	switch (b[1] >> 3) & 0x03 {
	case 0:
		h.version = 25
	case 2:
		h.version = 2
	case 3:
		h.version = 1
	default:
		return frameHeader{}, false
	}

	switch (b[1] >> 1) & 0x03 {
	case 1:
		h.layer = 3
	case 2:
		h.layer = 2
	case 3:
		h.layer = 1
	default:
		return frameHeader{}, false
	}

	if b[2]>>4 == 0x0F {
		return frameHeader{}, false
	}

	rateIdx := (b[2] >> 2) & 0x03
	if rateIdx == 0x03 {
		return frameHeader{}, false
	}
	h.sampleRate = sampleRates[h.version][rateIdx]

	h.channels = 2
	if b[3]>>6 == 0x03 {
		h.channels = 1
	}

	return h, true
}

// findFrameHeader skips a leading ID3v2 tag and scans for the first frame header.
func findFrameHeader(rs io.ReadSeeker) (frameHeader, error) {
	tag := make([]byte, audio.ID3v2HeaderSize)
	n, err := io.ReadFull(rs, tag)
	if err != nil && n == 0 {
		return frameHeader{}, ErrNotMP3File
	}

	offset := int64(audio.ID3v2Size(tag[:n]))
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return frameHeader{}, ErrNotMP3File
	}

	buf := make([]byte, maxSyncScan)
	n, _ = io.ReadFull(rs, buf)
	buf = buf[:n]

	for i := 0; i+4 <= len(buf); i++ {
		if h, ok := parseFrameHeader(buf[i:]); ok {
			return h, nil
		}
	}

	return frameHeader{}, ErrNotMP3File
}
