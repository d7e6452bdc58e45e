// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
)

// ID3v2HeaderSize is the length of an ID3v2 tag header (and of its footer).
const ID3v2HeaderSize = 10

var errNegativeOffset = errors.New("seek before start of stream")

// ID3v2Size returns the total size of an ID3v2 tag at the start of b, or 0
// when b does not start with one.
func ID3v2Size(b []byte) int {
	if len(b) < ID3v2HeaderSize || !bytes.HasPrefix(b, []byte("ID3")) {
		return 0
	}

	// Sync-safe integer: 7 bits per byte
	size := int(b[6]&0x7F)<<21 | int(b[7]&0x7F)<<14 | int(b[8]&0x7F)<<7 | int(b[9]&0x7F)
	size += ID3v2HeaderSize
	if b[5]&0x10 != 0 {
		size += ID3v2HeaderSize // footer
	}

	return size
}

// offsetReadSeeker presents rs as if it started at base.
type offsetReadSeeker struct {
	rs   io.ReadSeeker
	base int64
}

func newOffsetReadSeeker(rs io.ReadSeeker, base int64) (*offsetReadSeeker, error) {
	if _, err := rs.Seek(base, io.SeekStart); err != nil {
		return nil, err
	}

	return &offsetReadSeeker{rs: rs, base: base}, nil
}

func (o *offsetReadSeeker) Read(p []byte) (int, error) {
	return o.rs.Read(p)
}

func (o *offsetReadSeeker) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekStart {
		if offset < 0 {
			return 0, errNegativeOffset
		}
		offset += o.base
	}

	pos, err := o.rs.Seek(offset, whence)
	if err != nil {
		return 0, err
	}

	if pos < o.base {
		// Stay inside the stream.
		if _, err := o.rs.Seek(o.base, io.SeekStart); err != nil {
			return 0, err
		}
		return 0, errNegativeOffset
	}

	return pos - o.base, nil
}
